package auth

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/constants"
	helperAuth "quizku_backend/internals/helpers/auth"
)

// RequireRole meloloskan request kalau role identity >= minRole (user < coordinator < admin).
// Harus dipasang setelah AuthJWT.
func RequireRole(minRole string, customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		id, err := helperAuth.GetIdentity(c)
		if err != nil {
			return err
		}
		if !constants.HasAtLeast(id.Role, minRole) {
			return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
		}
		return c.Next()
	}
}

// Shortcut biar lebih clean pemakaian
func RequireUser() fiber.Handler {
	return RequireRole(constants.RoleUser, "")
}

func RequireCoordinator(feature string) fiber.Handler {
	return RequireRole(constants.RoleCoordinator, constants.RoleErrorCoordinator(feature))
}
