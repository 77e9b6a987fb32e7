package mocks

import (
	"context"

	"sceneloom/internal/models"
)

type TemplateRepositoryMock struct {
	GetFunc       func(ctx context.Context, id uint) (*models.PromptTemplate, error)
	GetAllFunc    func(ctx context.Context) ([]*models.PromptTemplate, error)
	GetByKindFunc func(ctx context.Context, kind string) ([]*models.PromptTemplate, error)
	CreateFunc    func(ctx context.Context, template *models.PromptTemplate) error
	UpdateFunc    func(ctx context.Context, template *models.PromptTemplate) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *TemplateRepositoryMock) Get(ctx context.Context, id uint) (*models.PromptTemplate, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &models.PromptTemplate{ID: id, Name: "template", Kind: "storyboard", Content: "{{text}}"}, nil
}

func (m *TemplateRepositoryMock) GetAll(ctx context.Context) ([]*models.PromptTemplate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *TemplateRepositoryMock) GetByKind(ctx context.Context, kind string) ([]*models.PromptTemplate, error) {
	if m.GetByKindFunc != nil {
		return m.GetByKindFunc(ctx, kind)
	}
	return nil, nil
}

func (m *TemplateRepositoryMock) Create(ctx context.Context, template *models.PromptTemplate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	return nil
}

func (m *TemplateRepositoryMock) Update(ctx context.Context, template *models.PromptTemplate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, template)
	}
	return nil
}

func (m *TemplateRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
