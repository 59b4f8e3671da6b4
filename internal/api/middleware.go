package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/models"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired runs the token gate and the account gate: a verified bearer
// token must resolve to an existing, active user before the request proceeds.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	userID, err := handler.tokenService.Parse(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	if !user.IsActive {
		return apiError(c, fiber.StatusBadRequest, "inactive user")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// SuperuserRequired is the privilege gate for administrative routes.
func (handler *Handler) SuperuserRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}
	if !user.IsSuperuser {
		return apiError(c, fiber.StatusForbidden, "not enough privileges")
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
