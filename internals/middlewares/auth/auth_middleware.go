// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "quizku_backend/internals/helpers/auth"
)

// TokenBlacklist dicek sekali per request setelah token diambil dari header/cookie.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, rawToken string) (bool, error)
}

type AuthJWTOpts struct {
	Secret              string
	Blacklist           TokenBlacklist // boleh nil
	AllowCookieFallback bool
	ExpirySkew          time.Duration
}

// AuthJWT memverifikasi bearer token lalu menyimpan Identity{UserID, Role} ke Locals.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	if opts.ExpirySkew == 0 {
		opts.ExpirySkew = 30 * time.Second
	}

	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c, opts.AllowCookieFallback)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if opts.Secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		if opts.Blacklist != nil {
			bl, err := opts.Blacklist.IsBlacklisted(c.UserContext(), tokenString)
			if err != nil {
				log.Println("[ERROR] blacklist check:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			if bl {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			}
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(opts.Secret), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, opts.ExpirySkew); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		helperAuth.SetIdentity(c, helperAuth.Identity{
			UserID: userID,
			Role:   extractRole(claims),
		}, tokenString)
		return c.Next()
	}
}
