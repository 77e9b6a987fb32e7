package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sceneloom/internal/models"
)

type SceneRepository interface {
	ListByProject(ctx context.Context, projectID uint) ([]models.Scene, error)
	ReplaceForProject(ctx context.Context, projectID uint, scenes []models.Scene) error
	UpdateStatus(ctx context.Context, sceneID uint, status string, mediaFiles map[string]string) error
}

type sceneRepository struct {
	db *gorm.DB
}

func NewSceneRepository(db *gorm.DB) SceneRepository {
	return &sceneRepository{db: db}
}

func (r *sceneRepository) ListByProject(ctx context.Context, projectID uint) ([]models.Scene, error) {
	var scenes []models.Scene
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("scene_number asc").Find(&scenes).Error
	if err != nil {
		return nil, fmt.Errorf("listing scenes for project %d: %w", projectID, err)
	}
	return scenes, nil
}

// ReplaceForProject swaps a project's storyboard wholesale. Re-splitting the
// source text regenerates every scene, so partial updates are not supported.
func (r *sceneRepository) ReplaceForProject(ctx context.Context, projectID uint, scenes []models.Scene) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Scene{}).Error; err != nil {
			return fmt.Errorf("clearing scenes for project %d: %w", projectID, err)
		}
		for i := range scenes {
			scenes[i].ID = 0
			scenes[i].ProjectID = projectID
		}
		if len(scenes) == 0 {
			return nil
		}
		if err := tx.Create(&scenes).Error; err != nil {
			return fmt.Errorf("creating scenes for project %d: %w", projectID, err)
		}
		return nil
	})
}

func (r *sceneRepository) UpdateStatus(ctx context.Context, sceneID uint, status string, mediaFiles map[string]string) error {
	updates := map[string]any{"status": status}
	for column, path := range mediaFiles {
		updates[column] = path
	}
	err := r.db.WithContext(ctx).Model(&models.Scene{}).Where("id = ?", sceneID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("updating scene %d: %w", sceneID, err)
	}
	return nil
}
