package models

type ApplyResponse struct {
	ApplicationID string `json:"application_id"`
	CandidateID   string `json:"candidate_id"`
	Status        string `json:"status"`
}

type ApplicationResult struct {
	OverallMatch    int           `json:"overall_match"`
	SkillsMatch     int           `json:"skills_match"`
	ExperienceMatch int           `json:"experience_match"`
	EducationMatch  int           `json:"education_match"`
	Details         *MatchDetails `json:"details,omitempty"`
}

type ApplicationResponse struct {
	ID            string             `json:"id"`
	JobID         string             `json:"job_id"`
	CandidateID   string             `json:"candidate_id"`
	Status        string             `json:"status"`
	Result        *ApplicationResult `json:"result,omitempty"`
	ErrorMessage  *string            `json:"error_message,omitempty"`
	CandidateName string             `json:"candidate_name,omitempty"`
}

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description" validate:"required"`
}

type MatchRequest struct {
	CVText string `json:"cv_text" validate:"required"`
	JDText string `json:"jd_text" validate:"required"`
}

type StartInterviewRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
	QuestionCount int    `json:"question_count"`
	AdaptiveFlow  *bool  `json:"adaptive_flow"`
}

type SubmitResponseRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type SubmitResponseResult struct {
	Response     AIResponse  `json:"response"`
	NextQuestion *AIQuestion `json:"next_question,omitempty"`
	OverallScore int         `json:"overall_score"`
	IsCompleted  bool        `json:"is_completed"`
}

type ScoreAnswerRequest struct {
	Question Question `json:"question" validate:"required"`
	Answer   string   `json:"answer"`
}

type SimilarCandidateResponse struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Score       float32 `json:"score"`
}
