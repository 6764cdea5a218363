package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger lo implementan *pgxpool.Pool y memory.EnterpriseRepo.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler GET /health: 200 si el almacenamiento responde, 503 si no.
func HealthHandler(service string, store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":  "unavailable",
					"service": service,
					"error":   err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
