package mocks

import (
	"context"

	"sceneloom/internal/models"
)

type SceneRepositoryMock struct {
	ListByProjectFunc     func(ctx context.Context, projectID uint) ([]models.Scene, error)
	ReplaceForProjectFunc func(ctx context.Context, projectID uint, scenes []models.Scene) error
	UpdateStatusFunc      func(ctx context.Context, sceneID uint, status string, mediaFiles map[string]string) error
}

func (m *SceneRepositoryMock) ListByProject(ctx context.Context, projectID uint) ([]models.Scene, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *SceneRepositoryMock) ReplaceForProject(ctx context.Context, projectID uint, scenes []models.Scene) error {
	if m.ReplaceForProjectFunc != nil {
		return m.ReplaceForProjectFunc(ctx, projectID, scenes)
	}
	return nil
}

func (m *SceneRepositoryMock) UpdateStatus(ctx context.Context, sceneID uint, status string, mediaFiles map[string]string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, sceneID, status, mediaFiles)
	}
	return nil
}
