package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "quizku_backend/internals/features/users/user/controller"
	"quizku_backend/internals/features/users/user/repository"
	"quizku_backend/internals/helpers/password"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

// UserRoutes dipasang di group /api yang sudah lewat AuthJWT.
func UserRoutes(r fiber.Router, db *gorm.DB, sealer password.Sealer) {
	ctrl := userController.NewUserController(repository.NewUserRepository(db), sealer)
	MountUserRoutes(r, ctrl)
}

func MountUserRoutes(r fiber.Router, ctrl *userController.UserController) {
	users := r.Group("/user")

	users.Get("/:id", authMiddleware.RequireCoordinator("user lookup"), ctrl.GetUser)
	users.Put("/:id", authMiddleware.RequireUser(), ctrl.UpdateUser)
	users.Delete("/:id", authMiddleware.RequireCoordinator("user deletion"), ctrl.DeleteUser)
}
