package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys yang diisi middleware auth.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocRawToken = "raw_token"
)

// Identity adalah hasil verifikasi token: satu user + satu role.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

func SetIdentity(c *fiber.Ctx, id Identity, rawToken string) {
	c.Locals(LocUserID, id.UserID.String())
	c.Locals(LocUserRole, id.Role)
	if strings.TrimSpace(rawToken) != "" {
		c.Locals(LocRawToken, rawToken)
	}
}

// GetIdentity membaca identity dari Locals.
// Return 401 kalau belum login, 400 kalau format user_id tidak valid.
func GetIdentity(c *fiber.Ctx) (Identity, error) {
	userID, err := GetUserIDFromToken(c)
	if err != nil {
		return Identity{}, err
	}
	role, _ := c.Locals(LocUserRole).(string)
	return Identity{UserID: userID, Role: role}, nil
}

// Ambil user_id dari c.Locals("user_id")
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User is not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id in token")
	}
}

func GetRawToken(c *fiber.Ctx) string {
	v, _ := c.Locals(LocRawToken).(string)
	return v
}
