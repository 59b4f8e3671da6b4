package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses:
// not-found 404, ownership 403, bad credentials 401, everything the caller
// could have avoided 400, the rest 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return apiError(c, fiber.StatusNotFound, "project not found")
	case errors.Is(err, services.ErrTaskNotFound):
		return apiError(c, fiber.StatusNotFound, "task not found")
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, services.ErrNotProjectOwner):
		return apiError(c, fiber.StatusForbidden, "not enough permissions")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "incorrect email or password")
	case errors.Is(err, services.ErrInactiveUser):
		return apiError(c, fiber.StatusBadRequest, "inactive user")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, "the user with this email already exists in the system")
	case errors.Is(err, services.ErrInboxUndeletable):
		return apiError(c, fiber.StatusBadRequest, "inbox project cannot be deleted")
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid email or password format")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	case errors.Is(err, services.ErrInvalidProjectName):
		return apiError(c, fiber.StatusBadRequest, "project name is required")
	case errors.Is(err, services.ErrInvalidTaskTitle):
		return apiError(c, fiber.StatusBadRequest, "task title is required")
	case errors.Is(err, services.ErrInvalidStatus):
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	case errors.Is(err, services.ErrProjectParentInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid parent project")
	case errors.Is(err, services.ErrProjectParentCycle):
		return apiError(c, fiber.StatusBadRequest, "parent project would form a cycle")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := c.ParamsInt(name)
	if err != nil || value <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
