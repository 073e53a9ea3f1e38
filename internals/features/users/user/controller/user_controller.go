package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/users/user/dto"
	"quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
	"quizku_backend/internals/helpers/password"
)

type UserController struct {
	Repo      repository.UserRepository
	Sealer    password.Sealer
	Validator *validator.Validate
}

func NewUserController(repo repository.UserRepository, sealer password.Sealer) *UserController {
	return &UserController{
		Repo:      repo,
		Sealer:    sealer,
		Validator: validator.New(),
	}
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	return id, nil
}

// GET /api/user/:id (coordinator)
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromError(c, "Server error while fetching user", err)
	}

	user, err := uc.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonStoreError(c, "Server error while fetching user", err)
	}
	return helper.JsonOK(c, "User fetched successfully", dto.FromModel(user))
}

// PUT /api/user/:id — self atau coordinator; role/is_active hanya coordinator.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromError(c, "Server error while updating user", err)
	}
	caller, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromError(c, "Server error while updating user", err)
	}
	isCoordinator := constants.HasAtLeast(caller.Role, constants.RoleCoordinator)
	if caller.UserID != id && !isCoordinator {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, "Validation error", helper.ValidationErrors(err))
	}
	if req.TouchesPrivileged() && !isCoordinator {
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorCoordinator("role and status changes"))
	}

	var sealed string
	if req.Password != nil {
		sealed, err = uc.Sealer.Seal(*req.Password)
		if err != nil {
			log.Println("[ERROR] seal password:", err)
			return helper.JsonStoreError(c, "Server error while updating user", err)
		}
	}

	user, err := uc.Repo.Update(c.UserContext(), id, req.ToUpdates(sealed))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.FromError(c, "Server error while updating user", err)
	}

	log.Printf("[SUCCESS] Updated user ID: %v\n", user.ID)
	return helper.JsonUpdated(c, "User updated successfully", dto.FromModel(user))
}

// DELETE /api/user/:id (coordinator) — hard delete
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.FromError(c, "Server error while deleting user", err)
	}

	if err := uc.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonStoreError(c, "Server error while deleting user", err)
	}

	log.Printf("[SUCCESS] Deleted user ID: %s\n", id)
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{
		"userId": id.String(),
	})
}
