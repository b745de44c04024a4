package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/examdesk/examdesk-api/internal/config"
	"github.com/examdesk/examdesk-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DB                   *gorm.DB
	Cache                *redis.Client
	StudentHandler       *handler.StudentHandler
	QuestionPaperHandler *handler.QuestionPaperHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(cfg, deps.DB, deps.Cache))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Stored uploads are fetched back by the filename recorded on each row.
	app.Static("/uploads", cfg.UploadDir)

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(app)
	}

	if deps.QuestionPaperHandler != nil {
		deps.QuestionPaperHandler.Register(app)
	}
}
