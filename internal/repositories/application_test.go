package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/testhelpers"
)

func createFixtures(t *testing.T, jobRepo JobRepository, candidateRepo CandidateRepository, docRepo DocumentRepository) (*models.Job, *models.Candidate, *models.Document) {
	t.Helper()

	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer", RawDescription: "Go services"}
	require.NoError(t, jobRepo.Create(job))

	candidate := &models.Candidate{ID: uuid.New(), Name: "Jane Doe", Email: uuid.New().String() + "@example.com"}
	require.NoError(t, candidateRepo.Create(candidate))

	doc := &models.Document{ID: uuid.New(), CandidateID: candidate.ID, Filename: "resume.pdf", FilePath: "/tmp/resume.pdf"}
	require.NoError(t, docRepo.Create(doc))

	return job, candidate, doc
}

func TestApplicationRepository_Lifecycle(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	jobRepo := NewJobRepository(db)
	candidateRepo := NewCandidateRepository(db)
	docRepo := NewDocumentRepository(db)
	appRepo := NewApplicationRepository(db)

	job, candidate, doc := createFixtures(t, jobRepo, candidateRepo, docRepo)

	app := &models.Application{
		ID:               uuid.New(),
		JobID:            job.ID,
		CandidateID:      candidate.ID,
		ResumeDocumentID: doc.ID,
		Status:           models.StatusQueued,
	}
	require.NoError(t, appRepo.Create(app))

	found, err := appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusQueued, found.Status)
	assert.Equal(t, "Jane Doe", found.Candidate.Name)
	assert.Equal(t, "Backend Engineer", found.Job.Title)

	require.NoError(t, appRepo.UpdateStatus(app.ID, models.StatusProcessing))
	found, err = appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, found.Status)
}

func TestApplicationRepository_UpdateMatchResult(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	jobRepo := NewJobRepository(db)
	candidateRepo := NewCandidateRepository(db)
	docRepo := NewDocumentRepository(db)
	appRepo := NewApplicationRepository(db)

	job, candidate, doc := createFixtures(t, jobRepo, candidateRepo, docRepo)

	app := &models.Application{
		ID:               uuid.New(),
		JobID:            job.ID,
		CandidateID:      candidate.ID,
		ResumeDocumentID: doc.ID,
		Status:           models.StatusProcessing,
	}
	require.NoError(t, appRepo.Create(app))

	data := &ScreeningUpdateData{
		OverallMatch:    78,
		SkillsMatch:     80,
		ExperienceMatch: 70,
		EducationMatch:  90,
		MatchDetails: &models.MatchDetails{
			MatchedSkills: []string{"Go"},
			MissingSkills: []string{"Kubernetes"},
		},
		ParsedResume: &models.ParsedCV{
			PersonalInfo: models.PersonalInfo{Name: "Jane Doe"},
			Skills:       []string{"Go"},
		},
	}
	require.NoError(t, appRepo.UpdateMatchResult(app.ID, data))

	found, err := appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, found.Status)
	require.NotNil(t, found.OverallMatch)
	assert.Equal(t, 78, *found.OverallMatch)
	require.NotNil(t, found.MatchDetails)
	assert.Equal(t, []string{"Go"}, found.MatchDetails.MatchedSkills)
	require.NotNil(t, found.ParsedResume)
	assert.Equal(t, "Jane Doe", found.ParsedResume.PersonalInfo.Name)
}

func TestApplicationRepository_UpdateError(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	jobRepo := NewJobRepository(db)
	candidateRepo := NewCandidateRepository(db)
	docRepo := NewDocumentRepository(db)
	appRepo := NewApplicationRepository(db)

	job, candidate, doc := createFixtures(t, jobRepo, candidateRepo, docRepo)

	app := &models.Application{
		ID:               uuid.New(),
		JobID:            job.ID,
		CandidateID:      candidate.ID,
		ResumeDocumentID: doc.ID,
		Status:           models.StatusProcessing,
	}
	require.NoError(t, appRepo.Create(app))

	require.NoError(t, appRepo.UpdateError(app.ID, "resume unreadable"))

	found, err := appRepo.FindByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, found.Status)
	assert.Equal(t, "resume unreadable", found.ErrorMessage)
}

func TestApplicationRepository_UpdateStatusMissing(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	appRepo := NewApplicationRepository(db)

	err := appRepo.UpdateStatus(uuid.New(), models.StatusProcessing)
	assert.Error(t, err)
}

func TestApplicationRepository_FindPending(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	jobRepo := NewJobRepository(db)
	candidateRepo := NewCandidateRepository(db)
	docRepo := NewDocumentRepository(db)
	appRepo := NewApplicationRepository(db)

	job, candidate, doc := createFixtures(t, jobRepo, candidateRepo, docRepo)

	statuses := []models.ApplicationStatus{
		models.StatusQueued,
		models.StatusQueued,
		models.StatusCompleted,
		models.StatusFailed,
	}
	for _, status := range statuses {
		app := &models.Application{
			ID:               uuid.New(),
			JobID:            job.ID,
			CandidateID:      candidate.ID,
			ResumeDocumentID: doc.ID,
			Status:           status,
		}
		require.NoError(t, appRepo.Create(app))
	}

	pending, err := appRepo.FindPending(10)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, app := range pending {
		assert.Equal(t, models.StatusQueued, app.Status)
	}
}

func TestCandidateRepository_FindApplicants(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	jobRepo := NewJobRepository(db)
	candidateRepo := NewCandidateRepository(db)
	docRepo := NewDocumentRepository(db)
	appRepo := NewApplicationRepository(db)

	job, applicant, doc := createFixtures(t, jobRepo, candidateRepo, docRepo)

	// A candidate without applications must not show up.
	bystander := &models.Candidate{ID: uuid.New(), Name: "No Apps", Email: uuid.New().String() + "@example.com"}
	require.NoError(t, candidateRepo.Create(bystander))

	// Two applications from the same candidate count once.
	for i := 0; i < 2; i++ {
		app := &models.Application{
			ID:               uuid.New(),
			JobID:            job.ID,
			CandidateID:      applicant.ID,
			ResumeDocumentID: doc.ID,
			Status:           models.StatusQueued,
		}
		require.NoError(t, appRepo.Create(app))
	}

	applicants, err := candidateRepo.FindApplicants()
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, applicant.ID, applicants[0].ID)
}

func TestCandidateRepository_FindByEmailNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	candidateRepo := NewCandidateRepository(db)

	_, err := candidateRepo.FindByEmail("missing@example.com")
	assert.Error(t, err)
}
