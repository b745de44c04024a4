package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/dto"
	"github.com/examdesk/examdesk-api/internal/service"
	"github.com/examdesk/examdesk-api/internal/utils"
)

// QuestionPaperHandler serves the publish form, publish endpoint and the
// stored paper listing.
type QuestionPaperHandler struct {
	service service.QuestionPaperService
	logger  zerolog.Logger
}

// NewQuestionPaperHandler constructs a question paper handler.
func NewQuestionPaperHandler(service service.QuestionPaperService, logger zerolog.Logger) *QuestionPaperHandler {
	return &QuestionPaperHandler{
		service: service,
		logger:  logger.With().Str("component", "question_paper_handler").Logger(),
	}
}

// Register wires the question paper routes.
func (h *QuestionPaperHandler) Register(router fiber.Router) {
	router.Get("/post-question-paper", h.form)
	router.Post("/post-question-paper", h.publish)
	router.Get("/view-question-papers", h.list)
}

// form returns the distinct department and class choices for the publish form.
func (h *QuestionPaperHandler) form(c *fiber.Ctx) error {
	logger := requestLogger(h.logger, c)

	options, err := h.service.CohortOptions(c.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to load cohort options")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load form choices")
	}

	return utils.SendSuccess(c, "post question paper form", options)
}

// publish associates the uploaded paper with every student of the submitted
// cohort and redirects back to the form on success.
func (h *QuestionPaperHandler) publish(c *fiber.Ctx) error {
	logger := requestLogger(h.logger, c)

	var payload dto.QuestionPaperPublishRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid form payload")
	}

	paper, err := c.FormFile("questionPaperFile")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "questionPaperFile file is required")
	}

	if _, err := h.service.Publish(c.Context(), payload, paper); err != nil {
		return sendWorkflowError(c, logger, err)
	}

	return c.Redirect("/post-question-paper", fiber.StatusSeeOther)
}

// list returns every stored question paper row.
func (h *QuestionPaperHandler) list(c *fiber.Ctx) error {
	logger := requestLogger(h.logger, c)

	papers, err := h.service.List(c.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list question papers")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list question papers")
	}

	return utils.SendSuccess(c, "question papers", papers)
}
