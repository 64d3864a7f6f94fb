package models

type Recommendation string

const (
	RecommendProceed Recommendation = "Proceed to Next Round"
	RecommendImprove Recommendation = "Needs Improvement"
	RecommendReject  Recommendation = "Reject"
)

// ScoreBreakdown holds the five per-dimension report scores. Unless a
// real ScoreProvider is plugged in these are demo values, not derived
// from response content.
type ScoreBreakdown struct {
	Technical      int `json:"technical"`
	Communication  int `json:"communication"`
	ProblemSolving int `json:"problem_solving"`
	Experience     int `json:"experience"`
	CulturalFit    int `json:"cultural_fit"`
}

type CandidateReport struct {
	ApplicationID      string         `json:"application_id"`
	CandidateName      string         `json:"candidate_name"`
	JobTitle           string         `json:"job_title"`
	Scores             ScoreBreakdown `json:"scores"`
	AverageScore       int            `json:"average_score"`
	MatchScore         *int           `json:"match_score,omitempty"`
	InterviewScore     *int           `json:"interview_score,omitempty"`
	Recommendation     Recommendation `json:"recommendation"`
	NextRoundQuestions []string       `json:"next_round_questions,omitempty"`
}

type RankedCandidate struct {
	ApplicationID string `json:"application_id"`
	CandidateName string `json:"candidate_name"`
	OverallMatch  int    `json:"overall_match"`
}

type JobReport struct {
	JobID             string            `json:"job_id"`
	JobTitle          string            `json:"job_title"`
	TotalApplications int               `json:"total_applications"`
	StatusBreakdown   map[string]int    `json:"status_breakdown"`
	AverageMatch      int               `json:"average_match"`
	TopCandidates     []RankedCandidate `json:"top_candidates"`
}

type ReportMetrics struct {
	TotalApplications  int            `json:"total_applications"`
	TotalJobs          int            `json:"total_jobs"`
	AverageMatch       int            `json:"average_match"`
	StatusBreakdown    map[string]int `json:"status_breakdown"`
	ApplicationsPerJob map[string]int `json:"applications_per_job"`
}
