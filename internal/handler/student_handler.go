package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/dto"
	"github.com/examdesk/examdesk-api/internal/service"
	"github.com/examdesk/examdesk-api/internal/utils"
)

// StudentHandler serves the add-student form and registration endpoint.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register wires the add-student routes.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/add-student", h.form)
	router.Post("/add-student", h.create)
}

// form describes the registration form for clients rendering it.
func (h *StudentHandler) form(c *fiber.Ctx) error {
	payload := fiber.Map{
		"fields":     []string{"department", "class", "studentName", "rollNumber"},
		"file_field": "idCardImage",
		"action":     "/add-student",
	}

	return utils.SendSuccess(c, "add student form", payload)
}

// create registers one student and redirects back to the form on success,
// matching the submit-again flow of the original pages.
func (h *StudentHandler) create(c *fiber.Ctx) error {
	logger := requestLogger(h.logger, c)

	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid form payload")
	}

	idCard, err := c.FormFile("idCardImage")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "idCardImage file is required")
	}

	if _, err := h.service.Register(c.Context(), payload, idCard); err != nil {
		return sendWorkflowError(c, logger, err)
	}

	return c.Redirect("/add-student", fiber.StatusSeeOther)
}
