package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qzcontroller "quizku_backend/internals/features/quizzes/quizzes/controller"
	"quizku_backend/internals/features/quizzes/quizzes/repository"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func QuizRoutes(r fiber.Router, db *gorm.DB) {
	MountQuizRoutes(r, qzcontroller.NewQuizController(repository.NewQuizLookupRepository(db)))
}

func MountQuizRoutes(r fiber.Router, ctrl *qzcontroller.QuizController) {
	r.Post("/start-quiz", authMiddleware.RequireUser(), ctrl.StartQuiz) // POST /api/start-quiz
	r.Get("/programmes", authMiddleware.RequireUser(), ctrl.ListProgrammes)
	r.Get("/sessions", authMiddleware.RequireUser(), ctrl.ListSessions)
}
