package services

import (
	"errors"
	"strings"
	"time"

	"github.com/minifocus/minifocus/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskTitle = errors.New("invalid task title")
)

type TaskStore interface {
	FindByID(taskID uint) (models.Task, error)
	ListByProject(projectID uint) ([]models.Task, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	Delete(task *models.Task) error
}

type TaskProjectStore interface {
	FindByID(projectID uint) (models.Project, error)
}

type TaskService struct {
	tasks    TaskStore
	projects TaskProjectStore
}

func NewTaskService(tasks TaskStore, projects TaskProjectStore) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

type TaskCreateInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	IsFlagged   bool       `json:"is_flagged"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `json:"priority"`
}

// TaskUpdate applies patch semantics: absent fields stay untouched. DueDate
// uses Optional so an explicit null clears the due date instead of being
// mistaken for an omitted key.
type TaskUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Status      *string             `json:"status"`
	IsFlagged   *bool               `json:"is_flagged"`
	DueDate     Optional[time.Time] `json:"due_date"`
	Priority    *int                `json:"priority"`
}

func (service *TaskService) Create(ownerID uint, projectID uint, input TaskCreateInput) (models.Task, error) {
	if _, err := service.requireOwnedProject(ownerID, projectID); err != nil {
		return models.Task{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, ErrInvalidTaskTitle
	}

	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !models.ValidStatus(status) {
		return models.Task{}, ErrInvalidStatus
	}

	task := models.Task{
		Title:       title,
		Description: input.Description,
		Status:      status,
		IsFlagged:   input.IsFlagged,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		ProjectID:   projectID,
		OwnerID:     ownerID,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) List(ownerID uint, projectID uint) ([]models.Task, error) {
	if _, err := service.requireOwnedProject(ownerID, projectID); err != nil {
		return nil, err
	}
	return service.tasks.ListByProject(projectID)
}

// Get hides foreign resources entirely: a missing project, a project owned by
// someone else, and a missing task all come back as ErrTaskNotFound.
// Infrastructure failures are passed through untouched.
func (service *TaskService) Get(ownerID uint, projectID uint, taskID uint) (models.Task, error) {
	if _, err := service.requireOwnedProject(ownerID, projectID); err != nil {
		if errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrNotProjectOwner) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	task, err := service.tasks.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	if task.ProjectID != projectID {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

func (service *TaskService) Update(ownerID uint, projectID uint, taskID uint, update TaskUpdate) (models.Task, error) {
	task, err := service.Get(ownerID, projectID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.Task{}, ErrInvalidTaskTitle
		}
		task.Title = title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		if !models.ValidStatus(*update.Status) {
			return models.Task{}, ErrInvalidStatus
		}
		task.Status = *update.Status
	}
	if update.IsFlagged != nil {
		task.IsFlagged = *update.IsFlagged
	}
	if update.DueDate.Set {
		task.DueDate = update.DueDate.Value
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}

	if err := service.tasks.Save(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) Delete(ownerID uint, projectID uint, taskID uint) error {
	task, err := service.Get(ownerID, projectID, taskID)
	if err != nil {
		return err
	}
	return service.tasks.Delete(&task)
}

func (service *TaskService) requireOwnedProject(ownerID uint, projectID uint) (models.Project, error) {
	project, err := service.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}
	if project.OwnerID != ownerID {
		return models.Project{}, ErrNotProjectOwner
	}
	return project, nil
}
