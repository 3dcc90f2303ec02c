package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/utils/auth"
	"github.com/uniinone/uniinone-api/utils/response"
)

// AuthMiddleware gates routes on the current session state. Both guards are
// synchronous, in-memory checks: a token only passes while its session is
// still in the registry, so logout and a server restart both close the door
// even for tokens that have not expired yet.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	sessions   *auth.SessionManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, sessions *auth.SessionManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// Required is middleware that rejects requests without a live session.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, sessionID, ok := m.resolve(c)
		if !ok {
			return response.Unauthorized(c, "Not signed in")
		}

		c.Locals("user", user)
		c.Locals("session_id", sessionID)
		return c.Next()
	}
}

// RequireAdmin rejects unauthenticated requests with 401 and authenticated
// non-admin requests with 403.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, sessionID, ok := m.resolve(c)
		if !ok {
			return response.Unauthorized(c, "Not signed in")
		}
		if !user.IsAdmin() {
			return response.Forbidden(c, "Administrator access required")
		}

		c.Locals("user", user)
		c.Locals("session_id", sessionID)
		return c.Next()
	}
}

// resolve extracts the bearer token, validates it, and looks the session up
// in the registry. The registry entry is the authoritative identity; the
// token claims only locate it.
func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*model.User, string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "", false
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, "", false
	}

	user, ok := m.sessions.Get(claims.ID)
	if !ok {
		return nil, "", false
	}
	return &user, claims.ID, true
}

// GetUser retrieves the signed-in user placed on the context by a guard.
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals("user").(*model.User)
	return user, ok
}

// GetSessionID retrieves the session id placed on the context by a guard.
func GetSessionID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("session_id").(string)
	return id, ok
}
