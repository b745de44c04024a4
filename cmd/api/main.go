package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examdesk/examdesk-api/internal/config"
	"github.com/examdesk/examdesk-api/internal/database"
	"github.com/examdesk/examdesk-api/internal/handler"
	"github.com/examdesk/examdesk-api/internal/middleware"
	"github.com/examdesk/examdesk-api/internal/models"
	"github.com/examdesk/examdesk-api/internal/repository"
	"github.com/examdesk/examdesk-api/internal/router"
	"github.com/examdesk/examdesk-api/internal/service"
	"github.com/examdesk/examdesk-api/pkg/localstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Student{}, &models.QuestionPaper{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL, logger)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer cache.Close()
	}

	store, err := localstore.New(cfg.UploadDir, logger)
	if err != nil {
		log.Fatalf("failed to prepare content directory: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	paperRepo := repository.NewQuestionPaperRepository(db)

	intake := service.NewFileIntake(store, cfg.MaxUploadMB, logger)
	studentService := service.NewStudentService(studentRepo, intake, validate, cache, logger)
	paperService := service.NewQuestionPaperService(paperRepo, studentRepo, intake, validate, cache, cfg.CohortCacheTTL, logger)

	studentHandler := handler.NewStudentHandler(studentService, logger)
	paperHandler := handler.NewQuestionPaperHandler(paperService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		// One mebibyte of headroom so oversized uploads reach the intake's
		// own limit check instead of fiber's.
		BodyLimit: int(cfg.MaxUploadBytes()) + 1024*1024,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		DB:                   db,
		Cache:                cache,
		StudentHandler:       studentHandler,
		QuestionPaperHandler: paperHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
