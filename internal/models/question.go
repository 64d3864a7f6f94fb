package models

// Two question families coexist on purpose: AIQuestion is what the
// question engine generates and scores with weighted criteria, while
// Question is the recruiter-authored builder model with per-option
// scoring. They have overlapping but not identical semantics and are
// deliberately not unified.

type QuestionType string

const (
	QuestionTechnical       QuestionType = "technical"
	QuestionBehavioral      QuestionType = "behavioral"
	QuestionExperience      QuestionType = "experience"
	QuestionSituational     QuestionType = "situational"
	QuestionCompanySpecific QuestionType = "company_specific"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ScoringCriteria weights are design constants baked into each
// generation template; they should sum to ~1.0 but this is not
// enforced anywhere except the final min-clamp on the score.
type ScoringCriteria struct {
	Technical      float64 `json:"technical"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problem_solving"`
	Experience     float64 `json:"experience"`
}

type AIQuestion struct {
	ID               string          `json:"id"`
	Text             string          `json:"text"`
	Type             QuestionType    `json:"type"`
	Difficulty       Difficulty      `json:"difficulty"`
	Category         string          `json:"category"`
	FollowUpTriggers []string        `json:"follow_up_triggers,omitempty"`
	ExpectedKeywords []string        `json:"expected_keywords,omitempty"`
	ScoringCriteria  ScoringCriteria `json:"scoring_criteria"`
}

// AIResponse references its question by id only; it is created once
// per submitted answer and never mutated afterwards.
type AIResponse struct {
	QuestionID   string   `json:"question_id"`
	Answer       string   `json:"answer"`
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Builder (recruiter-authored) question variant.

type BuilderQuestionType string

const (
	BuilderText            BuilderQuestionType = "text"
	BuilderMultipleChoice  BuilderQuestionType = "multiple_choice"
	BuilderRating          BuilderQuestionType = "rating"
	BuilderYesNo           BuilderQuestionType = "yes_no"
	BuilderSkillAssessment BuilderQuestionType = "skill_assessment"
	BuilderScenario        BuilderQuestionType = "scenario"
	BuilderExperienceLevel BuilderQuestionType = "experience_level"
)

type ChoiceOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type ExperienceLevel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is a tagged union keyed on Type; only the fields belonging
// to the active variant are populated.
type Question struct {
	ID   string              `json:"id"`
	Type BuilderQuestionType `json:"type"`
	Text string              `json:"text"`

	// multiple_choice
	Options []ChoiceOption `json:"options,omitempty"`

	// rating
	Scale       int      `json:"scale,omitempty"`
	ScaleLabels []string `json:"scale_labels,omitempty"`

	// yes_no
	PositiveWeight int `json:"positive_weight,omitempty"`

	// skill_assessment
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// scenario
	Scenario           string   `json:"scenario,omitempty"`
	EvaluationCriteria []string `json:"evaluation_criteria,omitempty"`

	// experience_level
	Levels []ExperienceLevel `json:"levels,omitempty"`
}
