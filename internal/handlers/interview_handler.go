package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentsift/screening/internal/models"
	"talentsift/screening/internal/repositories"
	"talentsift/screening/internal/services"
)

type InterviewHandler struct {
	sessionRepo     repositories.SessionRepository
	appRepo         repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	jdParser        services.JDParser
	engine          services.QuestionEngine
	defaultCount    int
	defaultAdaptive bool
}

func NewInterviewHandler(
	sessionRepo repositories.SessionRepository,
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	jdParser services.JDParser,
	engine services.QuestionEngine,
	defaultCount int,
	defaultAdaptive bool,
) *InterviewHandler {
	return &InterviewHandler{
		sessionRepo:     sessionRepo,
		appRepo:         appRepo,
		jobRepo:         jobRepo,
		jdParser:        jdParser,
		engine:          engine,
		defaultCount:    defaultCount,
		defaultAdaptive: defaultAdaptive,
	}
}

// HandleStartInterview handles POST /interviews
func (h *InterviewHandler) HandleStartInterview(c *fiber.Ctx) error {
	var req models.StartInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ApplicationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "application_id is required",
		})
	}

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application_id format",
		})
	}

	application, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	job, err := h.jobRepo.FindByID(application.JobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	questionCount := req.QuestionCount
	if questionCount <= 0 {
		questionCount = h.defaultCount
	}

	adaptiveFlow := h.defaultAdaptive
	if req.AdaptiveFlow != nil {
		adaptiveFlow = *req.AdaptiveFlow
	}

	// Question generation uses the parsed résumé when screening has
	// already produced one; otherwise questions default to medium
	// difficulty.
	jd := h.jdParser.ParseJD(job.RawDescription)
	questions := h.engine.GenerateQuestions(jd, application.ParsedResume, nil, services.QuestionConfig{
		QuestionCount: questionCount,
		AdaptiveFlow:  adaptiveFlow,
	})

	session := &models.InterviewSession{
		ID:                   uuid.New(),
		ApplicationID:        application.ID,
		JobID:                job.ID,
		CandidateID:          application.CandidateID,
		Questions:            questions,
		Responses:            []models.AIResponse{},
		CurrentQuestionIndex: 0,
		OverallScore:         0,
		IsCompleted:          false,
		AdaptiveFlow:         adaptiveFlow,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := h.sessionRepo.Create(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create interview session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleGetInterview handles GET /interviews/:id
func (h *InterviewHandler) HandleGetInterview(c *fiber.Ctx) error {
	idParam := c.Params("id")
	sessionID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview session not found",
		})
	}

	return c.JSON(session)
}

// HandleSubmitResponse handles POST /interviews/:id/responses. It
// scores the answer to the current question, advances the session and,
// when adaptive flow is on, may grow the question list with follow-ups.
func (h *InterviewHandler) HandleSubmitResponse(c *fiber.Ctx) error {
	idParam := c.Params("id")
	sessionID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview session not found",
		})
	}

	if session.IsCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Interview session is already completed",
		})
	}

	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	application, err := h.appRepo.FindByID(session.ApplicationID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	question := session.Questions[session.CurrentQuestionIndex]
	response := h.engine.ScoreResponse(question, req.Answer, application.ParsedResume)

	// Responses are append-only
	session.Responses = append(session.Responses, response)

	// Running mean, rounded
	total := 0
	for _, r := range session.Responses {
		total += r.Score
	}
	session.OverallScore = int(math.Round(float64(total) / float64(len(session.Responses))))

	// Adaptive sessions may earn follow-ups for notably weak or strong
	// answers, capped so an interview cannot grow without bound
	if session.AdaptiveFlow && adaptiveCount(session) < services.MaxAdaptiveQuestions {
		if followUp := h.engine.FollowUpFor(question, response); followUp != nil {
			session.Questions = append(session.Questions, *followUp)
		}
	}

	session.CurrentQuestionIndex++
	session.IsCompleted = session.CurrentQuestionIndex >= len(session.Questions)
	session.UpdatedAt = time.Now()

	if err := h.sessionRepo.Save(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save interview session",
		})
	}

	result := models.SubmitResponseResult{
		Response:     response,
		OverallScore: session.OverallScore,
		IsCompleted:  session.IsCompleted,
	}
	if !session.IsCompleted {
		next := session.Questions[session.CurrentQuestionIndex]
		result.NextQuestion = &next
	}

	return c.JSON(result)
}

// adaptiveCount counts follow-ups already added to the session, so the
// cap holds across submissions.
func adaptiveCount(session *models.InterviewSession) int {
	count := 0
	for _, q := range session.Questions {
		if services.IsFollowUp(q) {
			count++
		}
	}
	return count
}
