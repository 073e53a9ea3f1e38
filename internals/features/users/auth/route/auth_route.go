package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	authController "quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/features/users/auth/repository"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

// Dipasang di group /api yang sudah lewat AuthJWT.
func AuthRoutes(r fiber.Router, store repository.BlacklistStore, fallbackTTL time.Duration) {
	MountAuthRoutes(r, authController.NewLogoutController(store, fallbackTTL))
}

func MountAuthRoutes(r fiber.Router, ctrl *authController.LogoutController) {
	auth := r.Group("/auth")
	auth.Post("/logout", authMiddleware.RequireUser(), ctrl.Logout) // POST /api/auth/logout
}
