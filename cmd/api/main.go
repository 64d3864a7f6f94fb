package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentsift/screening/internal/config"
	"talentsift/screening/internal/handlers"
	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParser()
	cvParser := services.NewCVParser()
	jdParser := services.NewJDParser()
	matcher := services.NewMatcher()
	engine := services.NewQuestionEngine(rand.New(rand.NewSource(cfg.Interview.Seed)))
	scorer := services.NewQuestionScorer()
	reportGenerator := services.NewReportGenerator(services.NewRandomScoreProvider(cfg.Interview.Seed))
	log.Println("✅ Services initialized successfully")

	// Initialize embeddings
	embedder, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding service: %v", err)
	}
	log.Println("✅ Embedding service initialized successfully")

	// Initialize semantic index
	semanticIndex, err := services.NewSemanticIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		embedder,
		services.NewTextChunker(),
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize semantic index: %v", err)
	}

	if err := semanticIndex.Init(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Semantic index initialized successfully")

	// Initialize screener
	screener := services.NewScreenerService(
		appRepo,
		docRepo,
		resumeParser,
		cvParser,
		jdParser,
		matcher,
		semanticIndex,
	)
	log.Println("✅ Screener service initialized")

	// Initialize worker
	worker := services.NewWorker(
		appRepo,
		screener,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	applyHandler := handlers.NewApplyHandler(
		jobRepo,
		candidateRepo,
		docRepo,
		appRepo,
		storageService,
		worker,
		cfg.Storage.MaxFileSize,
	)
	applicationHandler := handlers.NewApplicationHandler(appRepo, candidateRepo)
	jobHandler := handlers.NewJobHandler(jobRepo, jdParser, semanticIndex)
	matchHandler := handlers.NewMatchHandler(cvParser, jdParser, matcher)
	questionHandler := handlers.NewQuestionHandler(scorer)
	interviewHandler := handlers.NewInterviewHandler(
		sessionRepo,
		appRepo,
		jobRepo,
		jdParser,
		engine,
		cfg.Interview.QuestionCount,
		cfg.Interview.AdaptiveFlow,
	)
	reportHandler := handlers.NewReportHandler(
		appRepo,
		jobRepo,
		candidateRepo,
		sessionRepo,
		reportGenerator,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentSift Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Jobs
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Get("/jobs/:id/similar", jobHandler.HandleSimilarCandidates)

	// Applications
	api.Post("/apply", applyHandler.HandleApply)
	api.Get("/applications", applicationHandler.HandleListApplications)
	api.Get("/applications/:id", applicationHandler.HandleGetApplication)
	api.Get("/applicants", applicationHandler.HandleListApplicants)

	// Ad-hoc matching and screening-form scoring
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/questions/score", questionHandler.HandleScoreAnswer)

	// Interviews
	api.Post("/interviews", interviewHandler.HandleStartInterview)
	api.Get("/interviews/:id", interviewHandler.HandleGetInterview)
	api.Post("/interviews/:id/responses", interviewHandler.HandleSubmitResponse)

	// Reports
	api.Get("/reports/candidates/:applicationID", reportHandler.HandleCandidateReport)
	api.Get("/reports/jobs/:jobID", reportHandler.HandleJobReport)
	api.Get("/reports/metrics", reportHandler.HandleMetrics)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentSift Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"GET /api/v1/jobs/:id",
				"GET /api/v1/jobs/:id/similar",
				"POST /api/v1/apply",
				"GET /api/v1/applications",
				"GET /api/v1/applications/:id",
				"GET /api/v1/applicants",
				"POST /api/v1/match",
				"POST /api/v1/questions/score",
				"POST /api/v1/interviews",
				"GET /api/v1/interviews/:id",
				"POST /api/v1/interviews/:id/responses",
				"GET /api/v1/reports/candidates/:applicationID",
				"GET /api/v1/reports/jobs/:jobID",
				"GET /api/v1/reports/metrics",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
