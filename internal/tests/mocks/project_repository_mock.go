package mocks

import (
	"context"

	"sceneloom/internal/models"
)

type ProjectRepositoryMock struct {
	CreateFunc           func(ctx context.Context, project *models.Project) error
	FindByIDFunc         func(ctx context.Context, id uint) (*models.Project, error)
	FindByExternalIDFunc func(ctx context.Context, externalID string) (*models.Project, error)
	ListFunc             func(ctx context.Context, limit, offset int) ([]models.Project, error)
	UpdateFunc           func(ctx context.Context, project *models.Project) error
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *ProjectRepositoryMock) Create(ctx context.Context, project *models.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *ProjectRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.Project{ID: id, Title: "project"}, nil
}

func (m *ProjectRepositoryMock) FindByExternalID(ctx context.Context, externalID string) (*models.Project, error) {
	if m.FindByExternalIDFunc != nil {
		return m.FindByExternalIDFunc(ctx, externalID)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) List(ctx context.Context, limit, offset int) ([]models.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) Update(ctx context.Context, project *models.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *ProjectRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
