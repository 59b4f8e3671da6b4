package services

import (
	"errors"
	"strings"

	"github.com/minifocus/minifocus/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotProjectOwner      = errors.New("not the project owner")
	ErrInboxUndeletable     = errors.New("inbox project cannot be deleted")
	ErrInvalidProjectName   = errors.New("invalid project name")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrProjectParentInvalid = errors.New("invalid parent project")
	ErrProjectParentCycle   = errors.New("parent project would form a cycle")
)

type ProjectStore interface {
	FindByID(projectID uint) (models.Project, error)
	ListByOwner(ownerID uint) ([]models.Project, error)
	FindInboxByOwner(ownerID uint) (models.Project, error)
	Create(project *models.Project) error
	Save(project *models.Project) error
	DeleteWithTasks(projectID uint) error
}

type ProjectUserStore interface {
	List() ([]models.User, error)
}

type ProjectService struct {
	projects ProjectStore
	users    ProjectUserStore
}

func NewProjectService(projects ProjectStore, users ProjectUserStore) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

type ProjectCreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	IsFlagged   bool   `json:"is_flagged"`
	ParentID    *uint  `json:"parent_id"`
}

// ProjectUpdate applies patch semantics: absent fields stay untouched.
// ParentID uses Optional so an explicit null detaches the project from its
// parent instead of being mistaken for an omitted key.
type ProjectUpdate struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	IsFlagged   *bool          `json:"is_flagged"`
	ParentID    Optional[uint] `json:"parent_id"`
}

func (service *ProjectService) Create(ownerID uint, input ProjectCreateInput) (models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Project{}, ErrInvalidProjectName
	}

	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !models.ValidStatus(status) {
		return models.Project{}, ErrInvalidStatus
	}

	if input.ParentID != nil {
		if err := service.validateParent(ownerID, 0, *input.ParentID); err != nil {
			return models.Project{}, err
		}
	}

	project := models.Project{
		Name:        name,
		Description: input.Description,
		Status:      status,
		IsFlagged:   input.IsFlagged,
		IsInbox:     false,
		ParentID:    input.ParentID,
		OwnerID:     ownerID,
	}
	if err := service.projects.Create(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (service *ProjectService) List(ownerID uint) ([]models.Project, error) {
	return service.projects.ListByOwner(ownerID)
}

// Get checks existence before ownership, so a foreign project id yields
// ErrNotProjectOwner rather than ErrProjectNotFound.
func (service *ProjectService) Get(ownerID uint, projectID uint) (models.Project, error) {
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

func (service *ProjectService) Update(ownerID uint, projectID uint, update ProjectUpdate) (models.Project, error) {
	project, err := service.Get(ownerID, projectID)
	if err != nil {
		return models.Project{}, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.Project{}, ErrInvalidProjectName
		}
		project.Name = name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Status != nil {
		if !models.ValidStatus(*update.Status) {
			return models.Project{}, ErrInvalidStatus
		}
		project.Status = *update.Status
	}
	if update.IsFlagged != nil {
		project.IsFlagged = *update.IsFlagged
	}
	if update.ParentID.Set {
		if update.ParentID.Value != nil {
			if err := service.validateParent(ownerID, project.ID, *update.ParentID.Value); err != nil {
				return models.Project{}, err
			}
		}
		project.ParentID = update.ParentID.Value
	}

	if err := service.projects.Save(&project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (service *ProjectService) Delete(ownerID uint, projectID uint) error {
	project, err := service.Get(ownerID, projectID)
	if err != nil {
		return err
	}
	if project.IsInbox {
		return ErrInboxUndeletable
	}
	return service.projects.DeleteWithTasks(project.ID)
}

// EnsureInbox creates the owner's Inbox project if it is missing. Safe to call
// any number of times; there is never more than one Inbox per user.
func (service *ProjectService) EnsureInbox(ownerID uint) (models.Project, error) {
	inbox, err := service.projects.FindInboxByOwner(ownerID)
	if err == nil {
		return inbox, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, err
	}

	inbox = models.Project{
		Name:        models.InboxName,
		Description: "Default inbox project for unassigned tasks",
		Status:      models.StatusTodo,
		IsInbox:     true,
		OwnerID:     ownerID,
	}
	if err := service.projects.Create(&inbox); err != nil {
		return models.Project{}, err
	}
	return inbox, nil
}

// EnsureInboxForAllUsers backfills missing Inbox projects at startup.
func (service *ProjectService) EnsureInboxForAllUsers() error {
	users, err := service.users.List()
	if err != nil {
		return err
	}
	for _, user := range users {
		if _, err := service.EnsureInbox(user.ID); err != nil {
			return err
		}
	}
	return nil
}

// validateParent requires the parent to exist, belong to the same owner, and
// not close a loop back to the project being edited.
func (service *ProjectService) validateParent(ownerID uint, projectID uint, parentID uint) error {
	if projectID != 0 && parentID == projectID {
		return ErrProjectParentCycle
	}

	current := parentID
	for current != 0 {
		parent, err := service.projects.FindByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectParentInvalid
			}
			return err
		}
		if parent.OwnerID != ownerID {
			return ErrProjectParentInvalid
		}
		if projectID != 0 && parent.ID == projectID {
			return ErrProjectParentCycle
		}
		if parent.ParentID == nil {
			break
		}
		current = *parent.ParentID
	}
	return nil
}
