package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/screening/internal/models"
)

// fixedScores pins every dimension to one value so recommendation
// thresholds can be tested deterministically.
type fixedScores struct{ value int }

func (f fixedScores) Score(baseline, spread int) int { return f.value }

func reportFixtures() (*models.Application, *models.Job, *models.Candidate) {
	match := 82
	app := &models.Application{
		ID:           uuid.New(),
		Status:       models.StatusCompleted,
		OverallMatch: &match,
	}
	job := &models.Job{ID: uuid.New(), Title: "Senior Backend Engineer"}
	candidate := &models.Candidate{ID: uuid.New(), Name: "Jane Doe"}
	return app, job, candidate
}

func TestCandidateReport_Recommendations(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  models.Recommendation
	}{
		{"high mean proceeds", 80, models.RecommendProceed},
		{"boundary proceeds", 75, models.RecommendProceed},
		{"middling needs improvement", 65, models.RecommendImprove},
		{"boundary improvement", 60, models.RecommendImprove},
		{"low rejects", 40, models.RecommendReject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, job, candidate := reportFixtures()
			gen := NewReportGenerator(fixedScores{tt.score})

			report := gen.CandidateReport(app, job, candidate, nil)

			assert.Equal(t, tt.want, report.Recommendation)
			assert.Equal(t, tt.score, report.AverageScore)
		})
	}
}

func TestCandidateReport_NextRoundOnlyOnProceed(t *testing.T) {
	app, job, candidate := reportFixtures()

	proceed := NewReportGenerator(fixedScores{90}).CandidateReport(app, job, candidate, nil)
	assert.NotEmpty(t, proceed.NextRoundQuestions)
	// Senior title pulls in the leadership prompt.
	assert.Contains(t, proceed.NextRoundQuestions, nextRoundLeadership)

	reject := NewReportGenerator(fixedScores{40}).CandidateReport(app, job, candidate, nil)
	assert.Empty(t, reject.NextRoundQuestions)
}

func TestCandidateReport_InterviewScore(t *testing.T) {
	app, job, candidate := reportFixtures()
	gen := NewReportGenerator(fixedScores{70})

	t.Run("no session", func(t *testing.T) {
		report := gen.CandidateReport(app, job, candidate, nil)
		assert.Nil(t, report.InterviewScore)
	})

	t.Run("session without responses", func(t *testing.T) {
		session := &models.InterviewSession{OverallScore: 88}
		report := gen.CandidateReport(app, job, candidate, session)
		assert.Nil(t, report.InterviewScore)
	})

	t.Run("session with responses", func(t *testing.T) {
		session := &models.InterviewSession{
			OverallScore: 88,
			Responses:    []models.AIResponse{{Score: 88}},
		}
		report := gen.CandidateReport(app, job, candidate, session)
		require.NotNil(t, report.InterviewScore)
		assert.Equal(t, 88, *report.InterviewScore)
	})
}

func TestCandidateReport_MatchScorePassthrough(t *testing.T) {
	app, job, candidate := reportFixtures()
	report := NewReportGenerator(fixedScores{70}).CandidateReport(app, job, candidate, nil)

	require.NotNil(t, report.MatchScore)
	assert.Equal(t, 82, *report.MatchScore)
	assert.Equal(t, "Jane Doe", report.CandidateName)
	assert.Equal(t, "Senior Backend Engineer", report.JobTitle)
}

func TestJobReport(t *testing.T) {
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer"}

	scores := []int{91, 55, 78, 62, 84, 70, 49}
	apps := make([]models.Application, 0, len(scores)+1)
	for i := range scores {
		apps = append(apps, models.Application{
			ID:           uuid.New(),
			Status:       models.StatusCompleted,
			OverallMatch: &scores[i],
			Candidate:    models.Candidate{Name: "Candidate"},
		})
	}
	apps = append(apps, models.Application{ID: uuid.New(), Status: models.StatusQueued})

	report := NewReportGenerator(fixedScores{70}).JobReport(job, apps)

	assert.Equal(t, 8, report.TotalApplications)
	assert.Equal(t, 7, report.StatusBreakdown["completed"])
	assert.Equal(t, 1, report.StatusBreakdown["queued"])
	assert.Equal(t, 70, report.AverageMatch)

	// Top candidates: best five, sorted descending.
	require.Len(t, report.TopCandidates, 5)
	assert.Equal(t, 91, report.TopCandidates[0].OverallMatch)
	assert.Equal(t, 84, report.TopCandidates[1].OverallMatch)
	assert.Equal(t, 62, report.TopCandidates[4].OverallMatch)
}

func TestJobReport_NoApplications(t *testing.T) {
	job := &models.Job{ID: uuid.New(), Title: "Backend Engineer"}
	report := NewReportGenerator(fixedScores{70}).JobReport(job, nil)

	assert.Equal(t, 0, report.TotalApplications)
	assert.Equal(t, 0, report.AverageMatch)
	assert.Empty(t, report.TopCandidates)
	assert.NotNil(t, report.TopCandidates)
}

func TestOverallMetrics(t *testing.T) {
	jobA := models.Job{ID: uuid.New(), Title: "Backend Engineer"}
	jobB := models.Job{ID: uuid.New(), Title: "Data Engineer"}

	match := 80
	apps := []models.Application{
		{ID: uuid.New(), JobID: jobA.ID, Status: models.StatusCompleted, OverallMatch: &match},
		{ID: uuid.New(), JobID: jobA.ID, Status: models.StatusFailed},
		{ID: uuid.New(), JobID: jobB.ID, Status: models.StatusQueued},
	}

	metrics := NewReportGenerator(fixedScores{70}).OverallMetrics(apps, []models.Job{jobA, jobB})

	assert.Equal(t, 3, metrics.TotalApplications)
	assert.Equal(t, 2, metrics.TotalJobs)
	assert.Equal(t, 80, metrics.AverageMatch)
	assert.Equal(t, 2, metrics.ApplicationsPerJob["Backend Engineer"])
	assert.Equal(t, 1, metrics.ApplicationsPerJob["Data Engineer"])
	assert.Equal(t, 1, metrics.StatusBreakdown["completed"])
	assert.Equal(t, 1, metrics.StatusBreakdown["failed"])
	assert.Equal(t, 1, metrics.StatusBreakdown["queued"])
}

func TestRandomScoreProvider_Deterministic(t *testing.T) {
	a := NewRandomScoreProvider(7)
	b := NewRandomScoreProvider(7)

	for i := 0; i < 10; i++ {
		got := a.Score(50, 40)
		assert.Equal(t, got, b.Score(50, 40))
		assert.GreaterOrEqual(t, got, 50)
		assert.LessOrEqual(t, got, 90)
	}
}
