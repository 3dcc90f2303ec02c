package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/utils/auth"
)

func newGuardedApp(t *testing.T) (*fiber.App, *auth.SessionManager, *auth.JWTManager) {
	t.Helper()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "test",
	})
	sessions := auth.NewSessionManager()
	guard := NewAuthMiddleware(jwtManager, sessions)

	app := fiber.New()
	app.Get("/protected", guard.Required(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", guard.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app, sessions, jwtManager
}

func tokenFor(t *testing.T, jwtManager *auth.JWTManager, sessionID string, user model.User) string {
	t.Helper()
	token, err := jwtManager.GenerateToken(sessionID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func request(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequiredRejectsAnonymous(t *testing.T) {
	app, _, _ := newGuardedApp(t)

	if got := request(t, app, "/protected", ""); got != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestRequiredAcceptsLiveSession(t *testing.T) {
	app, sessions, jwtManager := newGuardedApp(t)

	id, user := sessions.Login("s@example.com", model.RoleStudent)
	token := tokenFor(t, jwtManager, id, user)

	if got := request(t, app, "/protected", token); got != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
}

func TestRequiredRejectsLoggedOutToken(t *testing.T) {
	app, sessions, jwtManager := newGuardedApp(t)

	id, user := sessions.Login("s@example.com", model.RoleStudent)
	token := tokenFor(t, jwtManager, id, user)
	sessions.Logout(id)

	// The token itself is still valid; the dead session is what locks it out.
	if got := request(t, app, "/protected", token); got != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestRequireAdminAllowsAdminSession(t *testing.T) {
	app, sessions, jwtManager := newGuardedApp(t)

	id, user := sessions.AdminLogin("a@b.com")
	token := tokenFor(t, jwtManager, id, user)

	if got := request(t, app, "/admin", token); got != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
}

func TestRequireAdminDeniesStudentSession(t *testing.T) {
	app, sessions, jwtManager := newGuardedApp(t)

	id, user := sessions.Login("a@b.com", model.RoleStudent)
	token := tokenFor(t, jwtManager, id, user)

	// Authenticated but not admin: 403, not 401.
	if got := request(t, app, "/admin", token); got != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}

func TestRequireAdminDeniesAnonymous(t *testing.T) {
	app, _, _ := newGuardedApp(t)

	if got := request(t, app, "/admin", ""); got != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestGuardsRejectGarbageTokens(t *testing.T) {
	app, _, _ := newGuardedApp(t)

	for _, token := range []string{"not-a-jwt", ""} {
		if got := request(t, app, "/protected", token); got != fiber.StatusUnauthorized {
			t.Fatalf("token %q: expected 401, got %d", token, got)
		}
	}
}
