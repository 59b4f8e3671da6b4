package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/services"
)

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input services.ProjectCreateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	project, err := handler.projectService.Create(user.ID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projects, err := handler.projectService.List(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(projects)
}

func (handler *Handler) GetProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	project, err := handler.projectService.Get(user.ID, projectID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var update services.ProjectUpdate
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	project, err := handler.projectService.Update(user.ID, projectID, update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	if err := handler.projectService.Delete(user.ID, projectID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
