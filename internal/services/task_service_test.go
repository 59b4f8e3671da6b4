package services

import (
	"errors"
	"testing"
	"time"

	"github.com/minifocus/minifocus/internal/models"
	"gorm.io/gorm"
)

type fakeTaskStore struct {
	nextID uint
	tasks  map[uint]models.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, tasks: make(map[uint]models.Task)}
}

func (store *fakeTaskStore) FindByID(taskID uint) (models.Task, error) {
	task, ok := store.tasks[taskID]
	if !ok {
		return models.Task{}, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (store *fakeTaskStore) ListByProject(projectID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	for id := uint(1); id < store.nextID; id++ {
		if task, ok := store.tasks[id]; ok && task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (store *fakeTaskStore) Create(task *models.Task) error {
	task.ID = store.nextID
	store.nextID++
	store.tasks[task.ID] = *task
	return nil
}

func (store *fakeTaskStore) Save(task *models.Task) error {
	store.tasks[task.ID] = *task
	return nil
}

func (store *fakeTaskStore) Delete(task *models.Task) error {
	delete(store.tasks, task.ID)
	return nil
}

func newTaskServiceForTest(t *testing.T) (*TaskService, models.Project, models.Project) {
	t.Helper()

	projects := newFakeProjectStore()
	alice := models.Project{Name: "Alice's", OwnerID: 1}
	if err := projects.Create(&alice); err != nil {
		t.Fatalf("create alice's project: %v", err)
	}
	bob := models.Project{Name: "Bob's", OwnerID: 2}
	if err := projects.Create(&bob); err != nil {
		t.Fatalf("create bob's project: %v", err)
	}

	return NewTaskService(newFakeTaskStore(), projects), alice, bob
}

func TestTaskCreateChecksProjectOwnership(t *testing.T) {
	service, alice, bob := newTaskServiceForTest(t)

	task, err := service.Create(1, alice.ID, TaskCreateInput{Title: "Write report"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.OwnerID != 1 || task.ProjectID != alice.ID {
		t.Fatalf("unexpected task scoping: %+v", task)
	}

	if _, err := service.Create(1, 9999, TaskCreateInput{Title: "Lost"}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if _, err := service.Create(1, bob.ID, TaskCreateInput{Title: "Sneaky"}); !errors.Is(err, ErrNotProjectOwner) {
		t.Fatalf("expected ErrNotProjectOwner, got %v", err)
	}
}

func TestTaskGetMasksForeignResources(t *testing.T) {
	service, alice, bob := newTaskServiceForTest(t)

	task, err := service.Create(1, alice.ID, TaskCreateInput{Title: "Secret"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// Foreign caller, missing project and mismatched project all read the same.
	if _, err := service.Get(2, alice.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign caller, got %v", err)
	}
	if _, err := service.Get(1, 9999, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for missing project, got %v", err)
	}
	if _, err := service.Get(2, bob.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for task under another project, got %v", err)
	}
}

func TestTaskUpdatePatchSemantics(t *testing.T) {
	service, alice, _ := newTaskServiceForTest(t)

	task, err := service.Create(1, alice.ID, TaskCreateInput{
		Title:       "Write report",
		Description: "original",
		Priority:    2,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	status := models.StatusDone
	updated, err := service.Update(1, alice.ID, task.ID, TaskUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Status != models.StatusDone {
		t.Fatalf("expected status done, got %q", updated.Status)
	}
	if updated.Title != "Write report" || updated.Description != "original" || updated.Priority != 2 {
		t.Fatalf("patch update touched unrelated fields: %+v", updated)
	}

	badStatus := "someday"
	if _, err := service.Update(1, alice.ID, task.ID, TaskUpdate{Status: &badStatus}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

type failingProjectStore struct {
	err error
}

func (store failingProjectStore) FindByID(projectID uint) (models.Project, error) {
	return models.Project{}, store.err
}

func TestTaskGetSurfacesStoreFailures(t *testing.T) {
	storeErr := errors.New("disk I/O error")
	service := NewTaskService(newFakeTaskStore(), failingProjectStore{err: storeErr})

	if _, err := service.Get(1, 1, 1); !errors.Is(err, storeErr) {
		t.Fatalf("expected store failure to pass through, got %v", err)
	}
	if _, err := service.Get(1, 1, 1); errors.Is(err, ErrTaskNotFound) {
		t.Fatal("store failure must not read as a missing task")
	}
}

func TestTaskUpdateClearsDueDateOnExplicitNull(t *testing.T) {
	service, alice, _ := newTaskServiceForTest(t)

	due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	task, err := service.Create(1, alice.ID, TaskCreateInput{Title: "Dated", DueDate: &due})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// An update that never mentions due_date leaves it alone.
	flagged := true
	updated, err := service.Update(1, alice.ID, task.ID, TaskUpdate{IsFlagged: &flagged})
	if err != nil {
		t.Fatalf("update task flag: %v", err)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("expected due date to survive unrelated update, got %v", updated.DueDate)
	}

	cleared, err := service.Update(1, alice.ID, task.ID, TaskUpdate{DueDate: Optional[time.Time]{Set: true}})
	if err != nil {
		t.Fatalf("clear due date: %v", err)
	}
	if cleared.DueDate != nil {
		t.Fatalf("expected explicit null to clear due date, got %v", cleared.DueDate)
	}
}

func TestTaskDeleteIsUnconditional(t *testing.T) {
	service, alice, _ := newTaskServiceForTest(t)

	task, err := service.Create(1, alice.ID, TaskCreateInput{Title: "Ephemeral"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := service.Delete(1, alice.ID, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := service.Get(1, alice.ID, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}
