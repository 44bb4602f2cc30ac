package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasaydan.org/backend/internal/pkg/pserr"
)

// AdminKey guards the admin endpoint group with a static bearer key.
// An empty configured key disables the whole group rather than leaving it open.
func AdminKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return pserr.ErrUnauthorized.Msg("admin API is disabled")
		}

		presented := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			return pserr.ErrUnauthorized
		}

		return c.Next()
	}
}
