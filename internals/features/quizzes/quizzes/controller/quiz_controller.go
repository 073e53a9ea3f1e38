package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qzdto "quizku_backend/internals/features/quizzes/quizzes/dto"
	"quizku_backend/internals/features/quizzes/quizzes/repository"
	helper "quizku_backend/internals/helpers"
)

type QuizController struct {
	Repo      repository.QuizLookupRepository
	Validator *validator.Validate
}

func NewQuizController(repo repository.QuizLookupRepository) *QuizController {
	return &QuizController{
		Repo:      repo,
		Validator: validator.New(),
	}
}

// POST /api/start-quiz
// Urutan lookup: programme → session → quiz. Berhenti di yang pertama tidak ketemu.
func (ctl *QuizController) StartQuiz(c *fiber.Ctx) error {
	var req qzdto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, "Validation error", helper.ValidationErrors(err))
	}

	ctx := c.UserContext()

	programme, err := ctl.Repo.FindProgrammeByName(ctx, req.Programme)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Programme not found.")
		}
		return helper.JsonStoreError(c, "Error starting quiz", err)
	}

	session, err := ctl.Repo.FindSessionByName(ctx, req.Session)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found.")
		}
		return helper.JsonStoreError(c, "Error starting quiz", err)
	}

	quiz, err := ctl.Repo.FindQuiz(ctx, programme.ID, req.Semester, session.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found for selected options.")
		}
		return helper.JsonStoreError(c, "Error starting quiz", err)
	}

	return helper.JsonOK(c, "Quiz fetched successfully", qzdto.FromModelQuiz(quiz, programme, session))
}

// GET /api/programmes
func (ctl *QuizController) ListProgrammes(c *fiber.Ctx) error {
	rows, err := ctl.Repo.ListProgrammes(c.UserContext())
	if err != nil {
		return helper.JsonStoreError(c, "Error fetching programmes", err)
	}
	return helper.JsonOK(c, "Programmes fetched successfully", qzdto.FromProgrammes(rows))
}

// GET /api/sessions
func (ctl *QuizController) ListSessions(c *fiber.Ctx) error {
	rows, err := ctl.Repo.ListSessions(c.UserContext())
	if err != nil {
		return helper.JsonStoreError(c, "Error fetching sessions", err)
	}
	return helper.JsonOK(c, "Sessions fetched successfully", qzdto.FromSessions(rows))
}
