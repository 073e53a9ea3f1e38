package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "quizku_backend/internals/helpers"
)

// ErrorExposureMiddleware menandai apakah teks error mentah boleh dikirim ke client.
func ErrorExposureMiddleware(expose bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocExposeErrors, expose)
		return c.Next()
	}
}
