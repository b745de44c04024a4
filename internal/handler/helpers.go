package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/middleware"
	"github.com/examdesk/examdesk-api/internal/service"
	"github.com/examdesk/examdesk-api/internal/utils"
)

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// sendWorkflowError maps service errors onto HTTP statuses shared by the
// add-student and publish endpoints.
func sendWorkflowError(c *fiber.Ctx, logger *zerolog.Logger, err error) error {
	var assocErr *service.AssociationError

	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "missing required form fields")
	case errors.Is(err, service.ErrFileRequired):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUploadTooLarge):
		return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &assocErr):
		logger.Error().Err(err).Int("created", assocErr.Created).Int("matched", assocErr.Matched).Msg("partial association")
		return utils.SendError(c, fiber.StatusInternalServerError, assocErr.Error())
	case errors.Is(err, service.ErrFileStorage):
		logger.Error().Err(err).Msg("file storage failed")
		return utils.SendError(c, fiber.StatusInternalServerError, service.ErrFileStorage.Error())
	default:
		logger.Error().Err(err).Msg("request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal error")
	}
}
