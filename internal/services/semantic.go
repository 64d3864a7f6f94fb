package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// SemanticIndex stores candidate profiles as embeddings so jobs can be
// matched against the whole candidate pool, not just their applicants.
type SemanticIndex interface {
	Init() error
	IndexCandidate(ctx context.Context, candidateID uuid.UUID, name string, profileText string) error
	SimilarCandidates(ctx context.Context, jdText string, limit int) ([]CandidateMatch, error)
	RemoveCandidate(ctx context.Context, candidateID uuid.UUID) error
}

type CandidateMatch struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Score       float32 `json:"score"`
}

type semanticIndex struct {
	client         *qdrant.Client
	embedder       EmbeddingService
	chunker        TextChunker
	collectionName string
	vectorSize     uint64
}

const (
	profileChunkSize    = 1000
	profileChunkOverlap = 200
)

func NewSemanticIndex(urlStr, apiKey, collectionName string, embedder EmbeddingService, chunker TextChunker) (SemanticIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &semanticIndex{
		client:         client,
		embedder:       embedder,
		chunker:        chunker,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// Init implements SemanticIndex.
func (s *semanticIndex) Init() error {
	ctx := context.Background()

	// Check if collection exists
	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IndexCandidate implements SemanticIndex. Long profiles are chunked
// so each embedding stays within the model's useful range; every chunk
// carries the candidate ID so search can be deduplicated.
func (s *semanticIndex) IndexCandidate(ctx context.Context, candidateID uuid.UUID, name string, profileText string) error {
	// Re-indexing replaces the old profile
	if err := s.RemoveCandidate(ctx, candidateID); err != nil {
		return err
	}

	chunks := s.chunker.ChunkText(profileText, profileChunkSize, profileChunkOverlap)
	if len(chunks) == 0 {
		return fmt.Errorf("empty candidate profile")
	}

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, chunk := range chunks {
		embedding, err := s.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed profile chunk: %w", err)
		}

		pointID := uuid.New()
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(pointID.ID())),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"candidate_id": candidateID.String(),
				"name":         name,
				"text":         chunk,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

// SimilarCandidates implements SemanticIndex.
func (s *semanticIndex) SimilarCandidates(ctx context.Context, jdText string, limit int) ([]CandidateMatch, error) {
	queryEmbedding, err := s.embedder.GenerateEmbedding(ctx, jdText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	// Over-fetch so deduplication across chunks still fills the limit
	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit * 4)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	// Keep the best-scoring chunk per candidate
	best := make(map[string]CandidateMatch)
	for _, point := range searchResult {
		payload := point.Payload

		match := CandidateMatch{Score: point.Score}
		if id, ok := payload["candidate_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				match.CandidateID = val.StringValue
			}
		}
		if name, ok := payload["name"]; ok {
			if val, ok := name.GetKind().(*qdrant.Value_StringValue); ok {
				match.Name = val.StringValue
			}
		}

		if match.CandidateID == "" {
			continue
		}
		if existing, ok := best[match.CandidateID]; !ok || match.Score > existing.Score {
			best[match.CandidateID] = match
		}
	}

	results := make([]CandidateMatch, 0, len(best))
	for _, match := range best {
		results = append(results, match)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// RemoveCandidate implements SemanticIndex.
func (s *semanticIndex) RemoveCandidate(ctx context.Context, candidateID uuid.UUID) error {
	// Delete by filter
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("candidate_id", candidateID.String()),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to remove candidate: %w", err)
	}

	return nil
}
