package api

import (
	"github.com/minifocus/minifocus/internal/config"
	"github.com/minifocus/minifocus/internal/db"
	"github.com/minifocus/minifocus/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	config         config.Config
	repositories   *db.Repositories
	tokenService   *services.TokenService
	authService    *services.AuthService
	projectService *services.ProjectService
	taskService    *services.TaskService
	loginLimiter   *attemptLimiter
}

func NewHandler(database *gorm.DB, cfg config.Config) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		config:         cfg,
		repositories:   repositories,
		tokenService:   services.NewTokenService([]byte(cfg.SecretKey), cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		authService:    services.NewAuthService(repositories.Users),
		projectService: services.NewProjectService(repositories.Projects, repositories.Users),
		taskService:    services.NewTaskService(repositories.Tasks, repositories.Projects),
		loginLimiter:   newAttemptLimiter(),
	}
}

// EnsureInboxes backfills Inbox projects for users created before the
// per-registration bootstrap existed. Called once at startup.
func (handler *Handler) EnsureInboxes() error {
	return handler.projectService.EnsureInboxForAllUsers()
}
