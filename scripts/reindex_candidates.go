package main

import (
	"context"
	"log"
	"os"

	"talentsift/screening/internal/config"
	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

// Rebuilds the semantic candidate index from the stored résumé
// documents. Run after wiping the Qdrant collection or changing the
// embedding model.
func main() {
	log.Println("🚀 Starting candidate reindex...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	docRepo := repositories.NewDocumentRepository(db)

	// Initialize services
	embedder, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding service: %v", err)
	}

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
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	resumeParser := services.NewResumeParser()
	cvParser := services.NewCVParser()

	documents, err := docRepo.FindAll()
	if err != nil {
		log.Fatalf("❌ Failed to list documents: %v", err)
	}

	log.Printf("📋 Found %d résumé documents\n", len(documents))

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, doc := range documents {
		log.Printf("\n📄 Processing: %s (candidate %s)", doc.OriginalFileName, doc.CandidateID)

		if _, err := os.Stat(doc.FilePath); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		log.Printf("   📖 Extracting text...")
		rawText, err := resumeParser.ExtractText(doc.FilePath)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		parsed := cvParser.ParseCV(services.CleanText(rawText))

		log.Printf("   🔄 Embedding and indexing profile...")
		if err := semanticIndex.IndexCandidate(ctx, doc.CandidateID, parsed.PersonalInfo.Name, rawText); err != nil {
			log.Printf("   ❌ Failed to index candidate: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Indexed as %s", parsed.PersonalInfo.Name)
		successCount++
	}

	log.Printf("\n📊 Reindex finished: %d succeeded, %d failed\n", successCount, failCount)

	if failCount > 0 {
		os.Exit(1)
	}
}
