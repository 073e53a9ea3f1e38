package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizku_backend/internals/constants"
	helperAuth "quizku_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

type setBlacklist map[string]bool

func (s setBlacklist) IsBlacklisted(_ context.Context, raw string) (bool, error) {
	return s[raw], nil
}

func mint(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// errorHandler minimal supaya status dari fiber.Error tetap terbaca di test
func newGateApp(bl TokenBlacklist, gates ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).SendString(err.Error())
		},
	})
	handlers := append([]fiber.Handler{AuthJWT(AuthJWTOpts{Secret: testSecret, Blacklist: bl})}, gates...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, err := helperAuth.GetIdentity(c)
		if err != nil {
			return err
		}
		return c.SendString(id.UserID.String() + "|" + id.Role)
	})
	app.Get("/protected", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestAuthJWT(t *testing.T) {
	uid := uuid.New()
	future := time.Now().Add(time.Hour).Unix()

	valid := mint(t, testSecret, jwt.MapClaims{"id": uid.String(), "role": "coordinator", "exp": future})
	revoked := mint(t, testSecret, jwt.MapClaims{"id": uid.String(), "exp": future, "jti": "x"})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"no header", "", http.StatusUnauthorized, "No token provided"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid token format"},
		{"bad signature", "Bearer " + mint(t, "other", jwt.MapClaims{"id": uid.String(), "exp": future}), http.StatusUnauthorized, "Token parse error"},
		{"expired", "Bearer " + mint(t, testSecret, jwt.MapClaims{"id": uid.String(), "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized, "Token expired"},
		{"no exp", "Bearer " + mint(t, testSecret, jwt.MapClaims{"id": uid.String()}), http.StatusUnauthorized, "Token expired"},
		{"no user id", "Bearer " + mint(t, testSecret, jwt.MapClaims{"exp": future}), http.StatusUnauthorized, "user ID"},
		{"blacklisted", "Bearer " + revoked, http.StatusUnauthorized, "blacklisted"},
		{"valid", "Bearer " + valid, http.StatusOK, uid.String() + "|coordinator"},
		{"sub claim, unknown role", "bearer  " + mint(t, testSecret, jwt.MapClaims{"sub": uid.String(), "role": "root", "exp": future}), http.StatusOK, uid.String() + "|user"},
	}

	app := newGateApp(setBlacklist{revoked: true})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, app, tt.header)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", code, tt.wantCode, body)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	app := newGateApp(nil, RequireCoordinator("question authoring"))

	tests := []struct {
		role string
		want int
	}{
		{constants.RoleUser, http.StatusForbidden},
		{constants.RoleCoordinator, http.StatusOK},
		{constants.RoleAdmin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			tok := mint(t, testSecret, jwt.MapClaims{"id": uuid.NewString(), "role": tt.role, "exp": future})
			code, body := get(t, app, "Bearer "+tok)
			if code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", code, tt.want, body)
			}
			if tt.want == http.StatusForbidden && body != constants.RoleErrorCoordinator("question authoring") {
				t.Errorf("body = %q", body)
			}
		})
	}
}

func TestAuthJWT_MissingSecret(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", AuthJWT(AuthJWTOpts{}), func(c *fiber.Ctx) error { return c.SendStatus(200) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}
