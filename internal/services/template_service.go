package services

import (
	"context"
	"errors"
	"fmt"

	"sceneloom/internal/models"
	"sceneloom/internal/repositories"
)

// Template kinds.
const (
	TemplateKindStoryboard = "storyboard"
	TemplateKindImage      = "image"
)

type TemplateService interface {
	GetTemplate(id uint) (*models.PromptTemplate, error)
	ListTemplates() ([]*models.PromptTemplate, error)
	ListTemplatesByKind(kind string) ([]*models.PromptTemplate, error)
	CreateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error)
	UpdateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error)
	DeleteTemplate(id uint) error
	Startup(ctx context.Context)
}

type templateService struct {
	repo repositories.TemplateRepository
	ctx  context.Context
}

func (s *templateService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func NewTemplateService(repo repositories.TemplateRepository) TemplateService {
	return &templateService{repo: repo}
}

func (s *templateService) GetTemplate(id uint) (*models.PromptTemplate, error) {
	tmpl, err := s.repo.Get(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get template %d: %w", id, err)
	}
	return tmpl, nil
}

func (s *templateService) ListTemplates() ([]*models.PromptTemplate, error) {
	list, err := s.repo.GetAll(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list templates: %w", err)
	}
	return list, nil
}

func (s *templateService) ListTemplatesByKind(kind string) ([]*models.PromptTemplate, error) {
	if kind != TemplateKindStoryboard && kind != TemplateKindImage {
		return nil, errors.New("kind must be 'storyboard' or 'image'")
	}
	list, err := s.repo.GetByKind(s.ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("service: list %s templates: %w", kind, err)
	}
	return list, nil
}

func (s *templateService) CreateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error) {
	if t.Kind == "" {
		t.Kind = TemplateKindStoryboard
	}
	if err := s.repo.Create(s.ctx, t); err != nil {
		return nil, fmt.Errorf("service: create template: %w", err)
	}
	return t, nil
}

func (s *templateService) UpdateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error) {
	if err := s.repo.Update(s.ctx, t); err != nil {
		return nil, fmt.Errorf("service: update template %d: %w", t.ID, err)
	}
	return t, nil
}

func (s *templateService) DeleteTemplate(id uint) error {
	if err := s.repo.Delete(s.ctx, id); err != nil {
		return fmt.Errorf("service: delete template %d: %w", id, err)
	}
	return nil
}
