package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/uniinone/uniinone-api/model"
	"github.com/uniinone/uniinone-api/utils/auth"
	"github.com/uniinone/uniinone-api/utils/middleware"
	"github.com/uniinone/uniinone-api/utils/response"
	"github.com/uniinone/uniinone-api/utils/validation"
)

// AuthHandler handles the demo sign-in flow. There are no stored credentials
// and no password check: any email signs in with the role it asks for. The
// handler validates the request shape only; who you claim to be is accepted
// as-is.
type AuthHandler struct {
	sessions   *auth.SessionManager
	jwtManager *auth.JWTManager
	validator  *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *auth.SessionManager, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtManager: jwtManager,
		validator:  validation.NewValidator(),
	}
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=student admin"`
}

// AdminLoginRequest represents an admin sign-in request. AccessCode is
// accepted for form compatibility and never checked; the admin login screen
// always carried the field without validating it.
type AdminLoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AccessCode string `json:"accessCode"`
}

// LoginResponse represents a successful sign-in response
type LoginResponse struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expires_in"` // in seconds
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID, user := h.sessions.Login(validation.SanitizeString(req.Email), req.Role)
	return h.issueToken(c, sessionID, user)
}

// AdminLogin handles POST /api/v1/auth/admin-login
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	sessionID, user := h.sessions.AdminLogin(validation.SanitizeString(req.Email))
	return h.issueToken(c, sessionID, user)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, "Not signed in")
	}

	h.sessions.Logout(sessionID)
	return response.SuccessWithMessage(c, "Signed out", nil)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "Not signed in")
	}

	return response.Success(c, user)
}

func (h *AuthHandler) issueToken(c *fiber.Ctx, sessionID string, user model.User) error {
	token, err := h.jwtManager.GenerateToken(sessionID, user.Email, user.Role)
	if err != nil {
		h.sessions.Logout(sessionID)
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.Success(c, LoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: 24 * 60 * 60,
	})
}
