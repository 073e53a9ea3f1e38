package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qcontroller "quizku_backend/internals/features/quizzes/questions/controller"
	"quizku_backend/internals/features/quizzes/questions/repository"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

/*
Catatan:
- Dipasang di group /api yang sudah lewat AuthJWT.
- Create hanya coordinator/admin; update & delete dicek kepemilikan di controller.
*/
func QuestionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := qcontroller.NewQuestionController(repository.NewQuestionRepository(db))
	MountQuestionRoutes(r, ctrl)
}

func MountQuestionRoutes(r fiber.Router, ctrl *qcontroller.QuestionController) {
	q := r.Group("/questions")

	q.Post("/", authMiddleware.RequireCoordinator("question authoring"), ctrl.Create) // POST   /api/questions
	q.Get("/", authMiddleware.RequireUser(), ctrl.List)                                // GET    /api/questions?difficulty=&category=&status=&page=&limit=
	q.Get("/:id", authMiddleware.RequireUser(), ctrl.GetByID)                          // GET    /api/questions/:id
	q.Put("/:id", authMiddleware.RequireUser(), ctrl.Update)                           // PUT    /api/questions/:id
	q.Delete("/:id", authMiddleware.RequireUser(), ctrl.Delete)                        // DELETE /api/questions/:id
}
