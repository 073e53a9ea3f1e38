package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/features/users/auth/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

type LogoutController struct {
	Store repository.BlacklistStore
	// FallbackTTL dipakai kalau token tidak punya exp yang bisa dibaca.
	FallbackTTL time.Duration
}

func NewLogoutController(store repository.BlacklistStore, fallbackTTL time.Duration) *LogoutController {
	if fallbackTTL <= 0 {
		fallbackTTL = 24 * time.Hour
	}
	return &LogoutController{Store: store, FallbackTTL: fallbackTTL}
}

// POST /api/auth/logout
func (ctl *LogoutController) Logout(c *fiber.Ctx) error {
	raw := helperAuth.GetRawToken(c)
	if raw == "" {
		log.Println("[INFO] Logout tanpa access token; tidak ada yang di-blacklist")
		return helper.JsonOK(c, "Logout successful", nil)
	}

	if err := ctl.Store.Add(c.UserContext(), raw, ctl.expiryOf(raw)); err != nil {
		return helper.JsonStoreError(c, "Error logging out", err)
	}

	if id, err := helperAuth.GetIdentity(c); err == nil {
		log.Printf("[SUCCESS] Token blacklisted for user=%s", id.UserID)
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// Token sudah diverifikasi AuthJWT; di sini cukup baca exp tanpa verifikasi ulang.
func (ctl *LogoutController) expiryOf(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			if t := time.Unix(int64(exp), 0); t.After(time.Now()) {
				return t.Add(time.Minute)
			}
		}
	}
	return time.Now().Add(ctl.FallbackTTL)
}
