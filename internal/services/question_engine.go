package services

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"talentsift/screening/internal/models"
)

type QuestionConfig struct {
	QuestionCount int
	AdaptiveFlow  bool
}

type QuestionEngine interface {
	// GenerateQuestions synthesizes at most cfg.QuestionCount
	// pre-screening questions from a parsed JD and optional parsed CV.
	// Adaptive follow-ups are appended only when cfg.AdaptiveFlow is
	// set and previous responses exist.
	GenerateQuestions(jd models.ParsedJD, cv *models.ParsedCV, previous []models.AIResponse, cfg QuestionConfig) []models.AIQuestion

	// ScoreResponse heuristically scores a free-text answer against a
	// question's type and scoring criteria. Always returns a valid
	// response with a score in [0, 100].
	ScoreResponse(question models.AIQuestion, answer string, cv *models.ParsedCV) models.AIResponse

	// FollowUpFor builds the adaptive follow-up a response earns, or
	// nil: a clarifying question below 60, an advanced one above 80.
	FollowUpFor(question models.AIQuestion, response models.AIResponse) *models.AIQuestion
}

type questionEngine struct {
	rng *rand.Rand
}

// NewQuestionEngine builds an engine whose only nondeterminism — the
// behavioral template choice — is driven by the caller-provided
// source. Pass a fixed seed for reproducible generation.
func NewQuestionEngine(rng *rand.Rand) QuestionEngine {
	return &questionEngine{rng: rng}
}

// Per-category scoring criteria. Design constants baked into the
// generation templates, not derived from data.
var criteriaByType = map[models.QuestionType]models.ScoringCriteria{
	models.QuestionTechnical:       {Technical: 0.5, Communication: 0.2, ProblemSolving: 0.2, Experience: 0.1},
	models.QuestionBehavioral:      {Technical: 0.1, Communication: 0.4, ProblemSolving: 0.3, Experience: 0.2},
	models.QuestionExperience:      {Technical: 0.2, Communication: 0.3, ProblemSolving: 0.2, Experience: 0.3},
	models.QuestionSituational:     {Technical: 0.2, Communication: 0.3, ProblemSolving: 0.4, Experience: 0.1},
	models.QuestionCompanySpecific: {Technical: 0.1, Communication: 0.5, ProblemSolving: 0.2, Experience: 0.2},
}

var technicalTemplates = []string{
	"Explain %s in the context of %s. How have you applied it in a real project?",
	"Walk us through how you would handle %s when working with %s.",
	"What challenges have you faced with %s, particularly around %s?",
}

var experienceTemplates = []string{
	"Describe your most relevant experience for a %s role. What was your biggest contribution?",
	"Which of your past projects best prepared you for working as a %s, and why?",
}

var leadershipTemplates = []string{
	"Tell us about a time you led a team through a difficult technical decision. What was the outcome?",
	"Describe a situation where you had to mentor a struggling teammate. How did you approach it?",
	"How do you balance delivery pressure against code quality when leading a project?",
}

var collaborationTemplates = []string{
	"Tell us about a time you disagreed with a teammate about a technical approach. How was it resolved?",
	"Describe a project where close collaboration was essential. What was your role?",
	"How do you handle receiving critical feedback on your work?",
}

// Small per-skill lookup tables with a generic fallback for anything
// outside them.
var skillConcepts = map[string]string{
	"javascript": "closures and the event loop",
	"react":      "component lifecycle and state management",
	"python":     "generators and memory management",
	"go":         "goroutines and channel semantics",
	"sql":        "query planning and indexing",
	"docker":     "image layering and container isolation",
}

var skillScenarios = map[string]string{
	"javascript": "a page that freezes under heavy user interaction",
	"react":      "a component tree re-rendering far too often",
	"python":     "a batch job that runs out of memory",
	"go":         "a service leaking goroutines under load",
	"sql":        "a query that got slow as the table grew",
	"docker":     "a container that works locally but fails in production",
}

const (
	genericConcept  = "its core concepts"
	genericScenario = "a production incident involving it"

	categoryClarification = "clarification"
	categoryDeepDive      = "deep-dive"

	// MaxAdaptiveQuestions caps how many follow-ups a session can earn.
	MaxAdaptiveQuestions = 2

	lowScoreThreshold  = 60
	highScoreThreshold = 80
)

func conceptFor(skill string) string {
	if c, ok := skillConcepts[strings.ToLower(skill)]; ok {
		return c
	}
	return genericConcept
}

func scenarioFor(skill string) string {
	if s, ok := skillScenarios[strings.ToLower(skill)]; ok {
		return s
	}
	return genericScenario
}

// GenerateQuestions implements QuestionEngine. Composition order is
// fixed: up to 2 technical, 1 experience, 1 behavioral, 1
// company-specific, then up to 2 adaptive follow-ups.
func (e *questionEngine) GenerateQuestions(jd models.ParsedJD, cv *models.ParsedCV, previous []models.AIResponse, cfg QuestionConfig) []models.AIQuestion {
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = 5
	}

	var questions []models.AIQuestion

	// Up to 2 technical questions, one per top-3 required skill.
	topSkills := jd.Skills.Required
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	technical := 0
	for i, skill := range topSkills {
		if technical >= 2 {
			break
		}
		questions = append(questions, e.technicalQuestion(skill, i, cv))
		technical++
	}

	questions = append(questions, e.experienceQuestion(jd, len(questions)))
	questions = append(questions, e.behavioralQuestion(jd))
	questions = append(questions, e.companyQuestion(jd))

	if cfg.AdaptiveFlow && len(previous) > 0 {
		questions = append(questions, e.adaptiveQuestions(previous)...)
	}

	if len(questions) > cfg.QuestionCount {
		questions = questions[:cfg.QuestionCount]
	}
	return questions
}

func (e *questionEngine) technicalQuestion(skill string, index int, cv *models.ParsedCV) models.AIQuestion {
	// Escalate difficulty when the candidate's CV lacks the skill.
	difficulty := models.DifficultyMedium
	if cv != nil && !cvHasSkill(cv.Skills, skill) {
		difficulty = models.DifficultyHard
	}

	// Round-robin over the template pool keyed by skill position.
	template := technicalTemplates[index%len(technicalTemplates)]
	subject := conceptFor(skill)
	if strings.Contains(template, "handle") {
		subject = scenarioFor(skill)
	}
	text := fmt.Sprintf(template, subject, skill)

	return models.AIQuestion{
		ID:               uuid.New().String(),
		Text:             text,
		Type:             models.QuestionTechnical,
		Difficulty:       difficulty,
		Category:         skill,
		ExpectedKeywords: []string{skill, conceptFor(skill)},
		ScoringCriteria:  criteriaByType[models.QuestionTechnical],
	}
}

func (e *questionEngine) experienceQuestion(jd models.ParsedJD, index int) models.AIQuestion {
	template := experienceTemplates[index%len(experienceTemplates)]
	return models.AIQuestion{
		ID:              uuid.New().String(),
		Text:            fmt.Sprintf(template, jd.BasicInfo.Title),
		Type:            models.QuestionExperience,
		Difficulty:      models.DifficultyMedium,
		Category:        "experience",
		ScoringCriteria: criteriaByType[models.QuestionExperience],
	}
}

// behavioralQuestion is the one random choice in the pipeline; the
// pool depends on role seniority inferred from the title.
func (e *questionEngine) behavioralQuestion(jd models.ParsedJD) models.AIQuestion {
	pool := collaborationTemplates
	category := "collaboration"
	if isSeniorTitle(jd.BasicInfo.Title) {
		pool = leadershipTemplates
		category = "leadership"
	}

	return models.AIQuestion{
		ID:              uuid.New().String(),
		Text:            pool[e.rng.Intn(len(pool))],
		Type:            models.QuestionBehavioral,
		Difficulty:      models.DifficultyMedium,
		Category:        category,
		ScoringCriteria: criteriaByType[models.QuestionBehavioral],
	}
}

func (e *questionEngine) companyQuestion(jd models.ParsedJD) models.AIQuestion {
	return models.AIQuestion{
		ID:              uuid.New().String(),
		Text:            fmt.Sprintf("What interests you about working at %s, and what would you want to achieve in your first six months?", jd.BasicInfo.Company),
		Type:            models.QuestionCompanySpecific,
		Difficulty:      models.DifficultyEasy,
		Category:        "motivation",
		ScoringCriteria: criteriaByType[models.QuestionCompanySpecific],
	}
}

func (e *questionEngine) adaptiveQuestions(previous []models.AIResponse) []models.AIQuestion {
	var follow []models.AIQuestion
	for i, resp := range previous {
		if len(follow) >= MaxAdaptiveQuestions {
			break
		}
		if resp.Score < lowScoreThreshold {
			follow = append(follow, e.clarifyingQuestion(resp))
			continue
		}
		if resp.Score > highScoreThreshold && i < len(previous)-1 {
			follow = append(follow, e.advancedQuestion(resp))
		}
	}
	return follow
}

func (e *questionEngine) clarifyingQuestion(resp models.AIResponse) models.AIQuestion {
	focus := "the reasoning behind your answer"
	if len(resp.Improvements) > 0 {
		focus = strings.TrimRight(resp.Improvements[0], ".")
	}
	return models.AIQuestion{
		ID:              uuid.New().String(),
		Text:            fmt.Sprintf("Let's revisit your earlier answer. Could you expand on the following: %s?", focus),
		Type:            models.QuestionSituational,
		Difficulty:      models.DifficultyEasy,
		Category:        categoryClarification,
		ScoringCriteria: criteriaByType[models.QuestionSituational],
	}
}

func (e *questionEngine) advancedQuestion(resp models.AIResponse) models.AIQuestion {
	return models.AIQuestion{
		ID:              uuid.New().String(),
		Text:            "That was a strong answer. Going deeper: what trade-offs did you consider, and what would you do differently at ten times the scale?",
		Type:            models.QuestionSituational,
		Difficulty:      models.DifficultyHard,
		Category:        categoryDeepDive,
		ScoringCriteria: criteriaByType[models.QuestionSituational],
	}
}

// FollowUpFor implements QuestionEngine. Used by the interview session
// flow to grow the question list after a scored submission.
func (e *questionEngine) FollowUpFor(question models.AIQuestion, resp models.AIResponse) *models.AIQuestion {
	if resp.Score < lowScoreThreshold {
		q := e.clarifyingQuestion(resp)
		return &q
	}
	if resp.Score > highScoreThreshold {
		q := e.advancedQuestion(resp)
		return &q
	}
	return nil
}

// IsFollowUp reports whether a question was generated adaptively
// rather than in the initial composition.
func IsFollowUp(q models.AIQuestion) bool {
	return q.Category == categoryClarification || q.Category == categoryDeepDive
}

func isSeniorTitle(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "senior") || strings.Contains(lower, "lead") ||
		strings.Contains(lower, "principal") || strings.Contains(lower, "staff")
}

// Response scoring.

var (
	exampleRe    = regexp.MustCompile(`(?i)example|instance|time when|situation|project`)
	structureRe  = regexp.MustCompile(`(?i)\b(first|second|then|next|finally|additionally)\b`)
	positiveWord = []string{"achieved", "improved", "success", "delivered", "led", "optimized", "solved", "learned", "growth", "effective"}
	negativeWord = []string{"failed", "problem", "difficult", "couldn't", "never", "blame", "hate", "impossible", "worst"}
)

type responseFeatures struct {
	wordCount   int
	hasExamples bool
	keywordHit  bool
	structured  bool
	sentiment   float64
	complexity  float64
}

func extractFeatures(question models.AIQuestion, answer string) responseFeatures {
	words := strings.Fields(answer)
	lower := strings.ToLower(answer)

	f := responseFeatures{
		wordCount:   len(words),
		hasExamples: exampleRe.MatchString(answer),
		structured:  structureRe.MatchString(answer),
	}

	for _, kw := range question.ExpectedKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			f.keywordHit = true
			break
		}
	}

	pos, neg := 0, 0
	for _, w := range positiveWord {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWord {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	f.sentiment = clampFloat(float64(pos-neg+5)/10, 0, 1)

	long := 0
	for _, w := range words {
		if len(w) > 6 {
			long++
		}
	}
	if len(words) > 0 {
		f.complexity = float64(long) / float64(len(words))
	}

	return f
}

// ScoreResponse implements QuestionEngine.
func (e *questionEngine) ScoreResponse(question models.AIQuestion, answer string, cv *models.ParsedCV) models.AIResponse {
	f := extractFeatures(question, answer)
	c := question.ScoringCriteria

	technical := 70.0
	if question.Type == models.QuestionTechnical {
		if f.keywordHit {
			technical = 100
		} else {
			technical = 30
		}
	}

	// Communication saturates at 300 words.
	communication := math.Min(100, float64(f.wordCount)/300*100)

	problemSolving := 40.0
	if f.structured {
		problemSolving = 80
	}
	if f.hasExamples {
		problemSolving += 20
	}

	experience := 50.0
	if f.hasExamples {
		experience = 90
	}

	// The min-clamp is the only bound enforcement: the weighted sum may
	// exceed 100 when criteria weights do not sum to exactly 1.
	weighted := technical*c.Technical +
		communication*c.Communication +
		problemSolving*c.ProblemSolving +
		experience*c.Experience
	score := int(math.Round(math.Min(100, weighted)))

	return models.AIResponse{
		QuestionID:   question.ID,
		Answer:       answer,
		Score:        score,
		Feedback:     feedbackFor(score),
		Strengths:    strengthsFor(f),
		Improvements: improvementsFor(question, f),
	}
}

func feedbackFor(score int) string {
	switch {
	case score >= 80:
		return "Excellent response — thorough, specific, and well grounded in real experience."
	case score >= 60:
		return "Good response. Some areas could be developed further with more detail."
	default:
		return "This response needs more depth. Consider concrete examples and a clearer structure."
	}
}

func strengthsFor(f responseFeatures) []string {
	strengths := []string{}
	if f.keywordHit {
		strengths = append(strengths, "Uses relevant terminology for the topic")
	}
	if f.hasExamples {
		strengths = append(strengths, "Backs claims with concrete examples")
	}
	if f.structured {
		strengths = append(strengths, "Presents a clear, ordered structure")
	}
	if f.wordCount >= 150 {
		strengths = append(strengths, "Thorough and detailed coverage")
	}
	if f.complexity > 0.3 {
		strengths = append(strengths, "Precise technical vocabulary")
	}
	return strengths
}

func improvementsFor(question models.AIQuestion, f responseFeatures) []string {
	improvements := []string{}
	if !f.hasExamples {
		improvements = append(improvements, "Add a concrete example from your own experience")
	}
	if f.wordCount < 50 {
		improvements = append(improvements, "Expand your answer with more detail")
	}
	if question.Type == models.QuestionTechnical && !f.keywordHit {
		improvements = append(improvements, fmt.Sprintf("Address %s directly in your answer", question.Category))
	}
	if question.Type == models.QuestionBehavioral && !f.structured {
		improvements = append(improvements, "Structure the story: situation, action, result")
	}
	if f.sentiment < 0.4 {
		improvements = append(improvements, "Frame challenges in terms of what you learned or improved")
	}
	return improvements
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
