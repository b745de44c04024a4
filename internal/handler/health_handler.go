package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/examdesk/examdesk-api/internal/config"
	"github.com/examdesk/examdesk-api/internal/utils"
)

// HealthResponse reports service liveness plus the reachability of the exam
// records database and the cohort options cache.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
	Cache       string    `json:"cache"`
}

// HealthCheck probes the stores behind the registration and publish flows.
// The cache is optional, so a missing client reports as disabled without
// degrading the service.
func HealthCheck(cfg config.Config, db *gorm.DB, cache *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Database:    databaseStatus(ctx, db),
			Cache:       cacheStatus(ctx, cache),
		}

		if payload.Database != "up" || payload.Cache == "down" {
			payload.Status = "degraded"
		}

		return utils.SendSuccess(c, "service health", payload)
	}
}

func databaseStatus(ctx context.Context, db *gorm.DB) string {
	if db == nil {
		return "down"
	}

	sqlDB, err := db.DB()
	if err != nil {
		return "down"
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return "down"
	}

	return "up"
}

func cacheStatus(ctx context.Context, cache *redis.Client) string {
	if cache == nil {
		return "disabled"
	}

	if err := cache.Ping(ctx).Err(); err != nil {
		return "down"
	}

	return "up"
}
