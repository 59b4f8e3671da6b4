package db

import (
	"github.com/minifocus/minifocus/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) FindByID(projectID uint) (models.Project, error) {
	var project models.Project
	if err := repo.database.First(&project, projectID).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (repo *ProjectRepository) ListByOwner(ownerID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.Where("owner_id = ?", ownerID).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) FindInboxByOwner(ownerID uint) (models.Project, error) {
	var project models.Project
	if err := repo.database.
		Where("owner_id = ? AND is_inbox = ?", ownerID, true).
		First(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) Save(project *models.Project) error {
	return repo.database.Save(project).Error
}

// DeleteWithTasks removes a project and every task filed under it in one
// transaction, so a half-applied delete never leaves orphan tasks behind.
func (repo *ProjectRepository) DeleteWithTasks(projectID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{}).
			Where("parent_id = ?", projectID).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, projectID).Error
	})
}
