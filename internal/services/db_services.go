package services

import (
	"context"

	"gorm.io/gorm"

	"sceneloom/internal/repositories"
	"sceneloom/internal/settings"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	Settings  SettingsService
	Projects  ProjectService
	Templates TemplateService
}

// NewDbServices constructs the service container using repositories backed
// by db. The remote client may be nil when no sync endpoint is configured.
func NewDbServices(db *gorm.DB, remote RemoteSettingsClient) *DbServices {
	settingsRepo := repositories.NewSettingsRepository(db, settings.SlotName)
	projectRepo := repositories.NewProjectRepository(db)
	sceneRepo := repositories.NewSceneRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)

	return &DbServices{
		Settings:  NewSettingsService(settingsRepo, remote),
		Projects:  NewProjectService(projectRepo, sceneRepo),
		Templates: NewTemplateService(templateRepo),
	}
}

// StartDbServices runs each service's startup hook with the runtime context.
func (s *DbServices) StartDbServices(ctx context.Context) {
	s.Settings.Startup(ctx)
	s.Projects.Startup(ctx)
	s.Templates.Startup(ctx)
}
