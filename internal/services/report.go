package services

import (
	"math"
	"math/rand"
	"sort"

	"talentsift/screening/internal/models"
)

// ScoreProvider supplies the per-dimension report scores. The default
// implementation is seeded-random demo data; a real scoring model can
// be plugged in without touching the report assembly. This makes the
// mock-data gap explicit instead of baking randomness into the
// generator itself.
type ScoreProvider interface {
	Score(baseline, spread int) int
}

type randomScoreProvider struct {
	rng *rand.Rand
}

func NewRandomScoreProvider(seed int64) ScoreProvider {
	return &randomScoreProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomScoreProvider) Score(baseline, spread int) int {
	if spread <= 0 {
		return baseline
	}
	return baseline + p.rng.Intn(spread+1)
}

type ReportGenerator interface {
	CandidateReport(app *models.Application, job *models.Job, candidate *models.Candidate, session *models.InterviewSession) models.CandidateReport
	JobReport(job *models.Job, apps []models.Application) models.JobReport
	OverallMetrics(apps []models.Application, jobs []models.Job) models.ReportMetrics
}

type reportGenerator struct {
	scores ScoreProvider
}

func NewReportGenerator(scores ScoreProvider) ReportGenerator {
	return &reportGenerator{scores: scores}
}

var nextRoundTechnical = []string{
	"Live coding: implement a rate limiter with tests",
	"System design: sketch the architecture for a URL shortener at scale",
	"Code review: walk through a flawed pull request and identify issues",
}

var nextRoundBehavioral = []string{
	"Deep dive on a past project: decisions, trade-offs, and outcomes",
	"Conflict resolution: a cross-team disagreement scenario",
}

const nextRoundLeadership = "Leadership: how would you grow and structure this team over a year?"

// CandidateReport implements ReportGenerator. The five dimension
// scores come from the ScoreProvider; the match and interview scores
// are the real values computed upstream, surfaced alongside.
func (g *reportGenerator) CandidateReport(app *models.Application, job *models.Job, candidate *models.Candidate, session *models.InterviewSession) models.CandidateReport {
	breakdown := models.ScoreBreakdown{
		Technical:      g.scores.Score(55, 40),
		Communication:  g.scores.Score(60, 35),
		ProblemSolving: g.scores.Score(55, 40),
		Experience:     g.scores.Score(50, 45),
		CulturalFit:    g.scores.Score(60, 35),
	}

	mean := (breakdown.Technical + breakdown.Communication + breakdown.ProblemSolving +
		breakdown.Experience + breakdown.CulturalFit) / 5

	report := models.CandidateReport{
		ApplicationID:  app.ID.String(),
		CandidateName:  candidate.Name,
		JobTitle:       job.Title,
		Scores:         breakdown,
		AverageScore:   mean,
		MatchScore:     app.OverallMatch,
		Recommendation: recommendFor(mean),
	}

	if session != nil && len(session.Responses) > 0 {
		score := session.OverallScore
		report.InterviewScore = &score
	}

	if report.Recommendation == models.RecommendProceed {
		report.NextRoundQuestions = nextRoundQuestions(job.Title)
	}

	return report
}

// recommendFor is a threshold classifier over the dimension mean.
func recommendFor(mean int) models.Recommendation {
	switch {
	case mean >= 75:
		return models.RecommendProceed
	case mean >= 60:
		return models.RecommendImprove
	default:
		return models.RecommendReject
	}
}

func nextRoundQuestions(jobTitle string) []string {
	questions := append([]string{}, nextRoundTechnical...)
	questions = append(questions, nextRoundBehavioral...)
	if isSeniorTitle(jobTitle) {
		questions = append(questions, nextRoundLeadership)
	}
	return questions
}

// JobReport implements ReportGenerator.
func (g *reportGenerator) JobReport(job *models.Job, apps []models.Application) models.JobReport {
	report := models.JobReport{
		JobID:             job.ID.String(),
		JobTitle:          job.Title,
		TotalApplications: len(apps),
		StatusBreakdown:   map[string]int{},
		TopCandidates:     []models.RankedCandidate{},
	}

	sum, scored := 0, 0
	for _, app := range apps {
		report.StatusBreakdown[string(app.Status)]++
		if app.OverallMatch != nil {
			sum += *app.OverallMatch
			scored++
			report.TopCandidates = append(report.TopCandidates, models.RankedCandidate{
				ApplicationID: app.ID.String(),
				CandidateName: app.Candidate.Name,
				OverallMatch:  *app.OverallMatch,
			})
		}
	}

	if scored > 0 {
		report.AverageMatch = int(math.Round(float64(sum) / float64(scored)))
	}

	sort.SliceStable(report.TopCandidates, func(i, j int) bool {
		return report.TopCandidates[i].OverallMatch > report.TopCandidates[j].OverallMatch
	})
	if len(report.TopCandidates) > 5 {
		report.TopCandidates = report.TopCandidates[:5]
	}

	return report
}

// OverallMetrics implements ReportGenerator.
func (g *reportGenerator) OverallMetrics(apps []models.Application, jobs []models.Job) models.ReportMetrics {
	metrics := models.ReportMetrics{
		TotalApplications:  len(apps),
		TotalJobs:          len(jobs),
		StatusBreakdown:    map[string]int{},
		ApplicationsPerJob: map[string]int{},
	}

	titles := map[string]string{}
	for _, job := range jobs {
		titles[job.ID.String()] = job.Title
		metrics.ApplicationsPerJob[job.Title] = 0
	}

	sum, scored := 0, 0
	for _, app := range apps {
		metrics.StatusBreakdown[string(app.Status)]++
		if title, ok := titles[app.JobID.String()]; ok {
			metrics.ApplicationsPerJob[title]++
		}
		if app.OverallMatch != nil {
			sum += *app.OverallMatch
			scored++
		}
	}

	if scored > 0 {
		metrics.AverageMatch = int(math.Round(float64(sum) / float64(scored)))
	}

	return metrics
}
