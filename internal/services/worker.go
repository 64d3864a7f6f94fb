package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"talentsift/screening/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueApplication(appID uuid.UUID)
}

type worker struct {
	appRepo      repositories.ApplicationRepository
	screener     ScreenerService
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	appRepo repositories.ApplicationRepository,
	screener ScreenerService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		appRepo:      appRepo,
		screener:     screener,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	// Start worker goroutines
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processApplications(ctx, i+1)
	}

	// Start polling for queued applications
	w.wg.Add(1)
	go w.pollQueuedApplications(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueApplication implements Worker.
func (w *worker) EnqueueApplication(appID uuid.UUID) {
	select {
	case w.jobQueue <- appID:
		log.Printf("📥 Application %s enqueued\n", appID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue application %s\n", appID)
	}
}

func (w *worker) processApplications(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing applications\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case appID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing application %s\n", workerID, appID)
			if err := w.screener.ScreenApplication(ctx, appID); err != nil {
				log.Printf("❌ Worker #%d failed to process application %s: %v\n", workerID, appID, err)
			} else {
				log.Printf("✅ Worker #%d completed application %s\n", workerID, appID)
			}
		}
	}
}

func (w *worker) pollQueuedApplications(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting queued applications poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Queued applications poller stopped")
			return
		case <-ticker.C:
			// Pick up applications that never made it into the queue,
			// e.g. after a restart
			pending, err := w.appRepo.FindPending(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch queued applications: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d queued applications\n", len(pending))
			}

			for _, app := range pending {
				w.EnqueueApplication(app.ID)
			}
		}
	}
}
