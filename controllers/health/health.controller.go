package controllers

import (
	"cdax/config"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness probes
type HealthController struct {
	cfg *config.Config
	db  pinger
}

func NewHealthController(cfg *config.Config, db pinger) *HealthController {
	return &HealthController{cfg: cfg, db: db}
}

func (hc *HealthController) Health(c *fiber.Ctx) error {
	database := "up"
	if hc.db == nil || hc.db.Ping(c.UserContext()) != nil {
		database = "down"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   hc.cfg.ServiceName,
		"timestamp": time.Now().UnixMilli(),
		"version":   hc.cfg.ServiceVersion,
		"database":  database,
	})
}
