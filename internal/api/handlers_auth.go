package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/services"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Every account starts with its own Inbox.
	if _, err := handler.projectService.EnsureInbox(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create inbox project")
	}

	return c.JSON(user)
}

// Login accepts form-encoded credentials (OAuth2 password-flow field names)
// and answers with an access/refresh token pair.
func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := clientKey(c)
	now := time.Now()
	if handler.loginLimiter.blocked(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	email := c.FormValue("username")
	password := c.FormValue("password")

	user, err := handler.authService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.recordFailure(limiterKey, now, loginAttemptWindow)
		}
		return respondServiceError(c, err)
	}
	handler.loginLimiter.clear(limiterKey)

	accessToken, err := handler.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refreshToken, err := handler.tokenService.IssueRefreshToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	})
}

// Refresh reissues an access token for the already-authenticated caller.
// The presented token is validated by AuthRequired; no rotation or revocation
// tracking exists.
func (handler *Handler) Refresh(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	accessToken, err := handler.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var update services.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.authService.UpdateProfile(user.ID, update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(updated)
}
