package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	questionRoute "quizku_backend/internals/features/quizzes/questions/route"
	quizRoute "quizku_backend/internals/features/quizzes/quizzes/route"
	authRepo "quizku_backend/internals/features/users/auth/repository"
	authRoute "quizku_backend/internals/features/users/auth/route"
	userRoute "quizku_backend/internals/features/users/user/route"
	"quizku_backend/internals/helpers/password"
	"quizku_backend/internals/middlewares"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, sealer password.Sealer, blacklist authRepo.BlacklistStore) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// PRIVATE → semua endpoint /api wajib JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:    cfg.JWTSecret,
			Blacklist: blacklist,
		}),
		middlewares.WriteRateLimiter(),
	)

	log.Println("[INFO] Mounting Question routes...")
	questionRoute.QuestionRoutes(api, db)

	log.Println("[INFO] Mounting Quiz routes...")
	quizRoute.QuizRoutes(api, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(api, db, sealer)

	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, blacklist, time.Duration(cfg.BlacklistTTLDays)*24*time.Hour)
}
