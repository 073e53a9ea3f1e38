package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan: recover → request ctx → log → cors → limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(ErrorExposureMiddleware(cfg.ExposeErrors))
	app.Use(GlobalRateLimiter())
}
