package db

import (
	"github.com/minifocus/minifocus/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) ListByProject(projectID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Where("project_id = ?", projectID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByOwner(ownerID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Where("owner_id = ?", ownerID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Save(task).Error
}

func (repo *TaskRepository) Delete(task *models.Task) error {
	return repo.database.Delete(task).Error
}
