package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc reports store reachability.
type PingFunc func(ctx context.Context) error

type HealthController struct {
	ping PingFunc
}

func NewHealthController(ping PingFunc) *HealthController {
	return &HealthController{ping: ping}
}

func (h *HealthController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "SSAAM Backend is running!",
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Health godoc
// @Summary Liveness and store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /apis/health [get]
func (h *HealthController) Health(c *fiber.Ctx) error {
	database := "connected"
	if h.ping == nil || h.ping(c.UserContext()) != nil {
		database = "disconnected"
	}
	return c.JSON(fiber.Map{
		"message":   "SSAAM API Health Check",
		"status":    "operational",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
