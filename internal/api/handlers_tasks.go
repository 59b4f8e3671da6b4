package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minifocus/minifocus/internal/services"
)

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	var input services.TaskCreateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.Create(user.ID, projectID, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid project id")
	}

	tasks, err := handler.taskService.List(user.ID, projectID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, taskID, err := taskPathIDs(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	task, err := handler.taskService.Get(user.ID, projectID, taskID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, taskID, err := taskPathIDs(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var update services.TaskUpdate
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.Update(user.ID, projectID, taskID, update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projectID, taskID, err := taskPathIDs(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.taskService.Delete(user.ID, projectID, taskID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

func taskPathIDs(c *fiber.Ctx) (uint, uint, error) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return 0, 0, err
	}
	taskID, err := parseIDParam(c, "taskId")
	if err != nil {
		return 0, 0, err
	}
	return projectID, taskID, nil
}
