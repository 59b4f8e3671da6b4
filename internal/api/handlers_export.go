package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportJSON returns a full snapshot of the caller's projects and tasks.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	projects, err := handler.projectService.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch projects")
	}
	tasks, err := handler.repositories.Tasks.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}

	now := time.Now()
	payload := fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"user":        user,
		"projects":    projects,
		"tasks":       tasks,
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

// ExportCSV returns the caller's tasks as a flat CSV, one row per task.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	tasks, err := handler.repositories.Tasks.ListByOwner(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}

	projectNames := make(map[uint]string)
	projects, err := handler.projectService.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch projects")
	}
	for _, project := range projects {
		projectNames[project.ID] = project.Name
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write([]string{"id", "title", "description", "status", "flagged", "due_date", "priority", "project"}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, task := range tasks {
		dueDate := ""
		if task.DueDate != nil {
			dueDate = task.DueDate.Format("2006-01-02")
		}
		if err := writer.Write([]string{
			strconv.FormatUint(uint64(task.ID), 10),
			task.Title,
			task.Description,
			task.Status,
			strconv.FormatBool(task.IsFlagged),
			dueDate,
			strconv.Itoa(task.Priority),
			projectNames[task.ProjectID],
		}); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now()
	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("minifocus-export-%s.%s", now.Format("2006-01-02"), extension)
}
