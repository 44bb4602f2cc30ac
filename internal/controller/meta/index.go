package meta

import (
	"github.com/gofiber/fiber/v2"

	"pasaydan.org/backend/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Pasaydan API v1",
			"version": bininfo.Version,
		})
	})
}
