package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qdto "quizku_backend/internals/features/quizzes/questions/dto"
	qmodel "quizku_backend/internals/features/quizzes/questions/model"
	"quizku_backend/internals/features/quizzes/questions/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

/* =========================================================
   Controller
========================================================= */

type QuestionController struct {
	Repo      repository.QuestionRepository
	Validator *validator.Validate
}

func NewQuestionController(repo repository.QuestionRepository) *QuestionController {
	return &QuestionController{
		Repo:      repo,
		Validator: validator.New(),
	}
}

func parseQuestionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}
	return id, nil
}

// loadOwned: 404 kalau tidak ada, 403 kalau caller bukan pembuat.
func (ctl *QuestionController) loadOwned(c *fiber.Ctx, action string) (*qmodel.QuestionModel, error) {
	id, err := parseQuestionID(c)
	if err != nil {
		return nil, err
	}
	caller, err := helperAuth.GetIdentity(c)
	if err != nil {
		return nil, err
	}

	m, err := ctl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Question not found")
		}
		return nil, err
	}
	if !m.IsOwnedBy(caller.UserID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized to "+action+" this question")
	}
	return m, nil
}

/* =========================================================
   WRITE
========================================================= */

// POST /api/questions (coordinator)
func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	caller, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromError(c, "Error creating question", err)
	}

	var req qdto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := req.OptionsError(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, "Validation error", helper.ValidationErrors(err))
	}

	m := req.ToModel(caller.UserID)
	if err := ctl.Repo.Create(c.UserContext(), m); err != nil {
		return helper.FromError(c, "Error creating question", err)
	}

	log.Printf("[SUCCESS] Question created id=%s by=%s", m.ID, caller.UserID)
	return helper.JsonCreated(c, "Question created successfully", qdto.FromModelQuestion(m))
}

// PUT /api/questions/:id (owner)
func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	m, err := ctl.loadOwned(c, "update")
	if err != nil {
		return helper.FromError(c, "Error updating question", err)
	}

	var req qdto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := req.OptionsError(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, "Validation error", helper.ValidationErrors(err))
	}

	req.ApplyToModel(m)
	if err := ctl.Repo.Update(c.UserContext(), m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.FromError(c, "Error updating question", err)
	}

	// reload supaya timestamps & creator ikut terbaru
	updated, err := ctl.Repo.FindByID(c.UserContext(), m.ID)
	if err != nil {
		return helper.FromError(c, "Error updating question", err)
	}
	return helper.JsonUpdated(c, "Question updated successfully", qdto.FromModelQuestion(updated))
}

// DELETE /api/questions/:id (owner) — hard delete
func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	m, err := ctl.loadOwned(c, "delete")
	if err != nil {
		return helper.FromError(c, "Error deleting question", err)
	}

	if err := ctl.Repo.Delete(c.UserContext(), m.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonStoreError(c, "Error deleting question", err)
	}
	return helper.JsonDeleted(c, "Question deleted successfully", fiber.Map{"id": m.ID})
}

/* =========================================================
   READ
========================================================= */

// GET /api/questions?difficulty=&category=&status=&page=&limit=
func (ctl *QuestionController) List(c *fiber.Ctx) error {
	var q qdto.ListQuestionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, helper.DefaultOpts)

	rows, total, err := ctl.Repo.List(c.UserContext(), repository.QuestionFilter{
		Difficulty: q.Difficulty,
		Category:   q.Category,
		Status:     q.Status,
	}, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonStoreError(c, "Error fetching questions", err)
	}

	return helper.JsonList(c, "Questions fetched successfully", qdto.FromModelsQuestions(rows), helper.BuildPagination(total, paging))
}

// GET /api/questions/:id
func (ctl *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := parseQuestionID(c)
	if err != nil {
		return helper.FromError(c, "Error fetching question", err)
	}

	m, err := ctl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonStoreError(c, "Error fetching question", err)
	}
	return helper.JsonOK(c, "Question fetched successfully", qdto.FromModelQuestion(m))
}
