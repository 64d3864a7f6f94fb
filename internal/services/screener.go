package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/repositories"
)

type ScreenerService interface {
	ScreenApplication(ctx context.Context, appID uuid.UUID) error
}

type screenerService struct {
	appRepo       repositories.ApplicationRepository
	docRepo       repositories.DocumentRepository
	resumeParser  ResumeParser
	cvParser      CVParser
	jdParser      JDParser
	matcher       Matcher
	semanticIndex SemanticIndex
}

func NewScreenerService(
	appRepo repositories.ApplicationRepository,
	docRepo repositories.DocumentRepository,
	resumeParser ResumeParser,
	cvParser CVParser,
	jdParser JDParser,
	matcher Matcher,
	semanticIndex SemanticIndex,
) ScreenerService {
	return &screenerService{
		appRepo:       appRepo,
		docRepo:       docRepo,
		resumeParser:  resumeParser,
		cvParser:      cvParser,
		jdParser:      jdParser,
		matcher:       matcher,
		semanticIndex: semanticIndex,
	}
}

func (s *screenerService) ScreenApplication(ctx context.Context, appID uuid.UUID) error {
	// Update status to processing
	if err := s.appRepo.UpdateStatus(appID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening for application ID: %s\n", appID)

	// Get application details
	application, err := s.appRepo.FindByID(appID)
	if err != nil {
		s.appRepo.UpdateError(appID, err.Error())
		return fmt.Errorf("failed to get application: %w", err)
	}

	resumeDoc, err := s.docRepo.FindByID(application.ResumeDocumentID)
	if err != nil {
		s.appRepo.UpdateError(appID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// Step 1: Extract resume text
	log.Println("📄 Extracting resume text...")
	rawText, err := s.resumeParser.ExtractText(resumeDoc.FilePath)
	if err != nil {
		s.appRepo.UpdateError(appID, fmt.Sprintf("Failed to extract resume text: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	// Step 2: Parse CV and job description
	log.Println("🔍 Parsing resume...")
	parsedCV := s.cvParser.ParseCV(CleanText(rawText))

	log.Println("🔍 Parsing job description...")
	parsedJD := s.jdParser.ParseJD(application.Job.RawDescription)

	// Step 3: Match CV against job description
	log.Println("⚖️  Matching resume against job description...")
	result := s.matcher.Match(parsedCV, parsedJD)

	// Step 4: Index the candidate profile for semantic search.
	// Search is a sidecar feature; a down index must not fail screening.
	log.Println("🧭 Indexing candidate profile...")
	profileText := buildProfileText(parsedCV)
	if err := s.semanticIndex.IndexCandidate(ctx, application.CandidateID, parsedCV.PersonalInfo.Name, profileText); err != nil {
		log.Printf("⚠️  Warning: Failed to index candidate profile: %v\n", err)
	}

	// Step 5: Save results
	log.Println("💾 Saving screening results...")
	updateData := &repositories.ScreeningUpdateData{
		OverallMatch:    result.OverallMatch,
		SkillsMatch:     result.SkillsMatch,
		ExperienceMatch: result.ExperienceMatch,
		EducationMatch:  result.EducationMatch,
		MatchDetails:    &result.Details,
		ParsedResume:    &parsedCV,
	}

	if err := s.appRepo.UpdateMatchResult(appID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Screening completed successfully for application ID: %s\n", appID)
	return nil
}

// buildProfileText flattens a parsed CV into the text that gets embedded.
func buildProfileText(cv models.ParsedCV) string {
	var sb strings.Builder

	sb.WriteString(cv.PersonalInfo.Name)
	sb.WriteString("\n\n")

	if cv.Summary != "" {
		sb.WriteString(cv.Summary)
		sb.WriteString("\n\n")
	}

	if len(cv.Skills) > 0 {
		sb.WriteString("Skills: ")
		sb.WriteString(strings.Join(cv.Skills, ", "))
		sb.WriteString("\n\n")
	}

	for _, exp := range cv.Experience {
		sb.WriteString(fmt.Sprintf("%s at %s (%s)\n", exp.Position, exp.Company, exp.Duration))
		if exp.Description != "" {
			sb.WriteString(exp.Description)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	for _, edu := range cv.Education {
		sb.WriteString(fmt.Sprintf("%s in %s, %s (%s)\n", edu.Degree, edu.Field, edu.Institution, edu.Year))
	}

	return strings.TrimSpace(sb.String())
}
