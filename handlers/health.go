package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/volodymyr-curly/university-sub001/database"
)

// HealthCheck reports whether the API and its database connection are alive
func HealthCheck(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
