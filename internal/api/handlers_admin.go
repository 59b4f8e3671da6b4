package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	users, err := handler.authService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}
	return c.JSON(users)
}

type adminUserInput struct {
	IsActive *bool `json:"is_active"`
}

// AdminSetUserActive toggles the account gate for one user. Deactivation
// blocks authentication but leaves the user's projects and tasks in place.
func (handler *Handler) AdminSetUserActive(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var input adminUserInput
	if err := c.BodyParser(&input); err != nil || input.IsActive == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.SetUserActive(userID, *input.IsActive)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
