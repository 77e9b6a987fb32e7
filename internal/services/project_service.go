package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/yargevad/filepathx"

	"sceneloom/internal/models"
	"sceneloom/internal/repositories"
	"sceneloom/internal/utils"
)

// ProjectService manages storyboard projects and their scenes.
type ProjectService interface {
	Startup(ctx context.Context)
	CreateProject(title, description, sourceText string) (*models.Project, error)
	GetProject(id uint) (*models.Project, error)
	ListProjects(limit, offset int) ([]models.Project, error)
	UpdateProject(project *models.Project) (*models.Project, error)
	DeleteProject(id uint) error
	ReplaceScenes(projectID uint, scenes []models.Scene) ([]models.Scene, error)
	MarkSceneRendered(sceneID uint, imageFile, videoFile, audioFile string) error
	ListGeneratedMedia(projectID uint) ([]string, error)
}

type projectService struct {
	projects repositories.ProjectRepository
	scenes   repositories.SceneRepository
	ctx      context.Context
}

func NewProjectService(projects repositories.ProjectRepository, scenes repositories.SceneRepository) ProjectService {
	return &projectService{projects: projects, scenes: scenes}
}

func (s *projectService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *projectService) CreateProject(title, description, sourceText string) (*models.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}

	project := &models.Project{
		ExternalID:  uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: description,
		SourceText:  sourceText,
	}
	if err := s.projects.Create(s.ctx, project); err != nil {
		return nil, fmt.Errorf("service: create project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.projects.FindByID(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get project %d: %w", id, err)
	}
	return project, nil
}

func (s *projectService) ListProjects(limit, offset int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := s.projects.List(s.ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: list projects: %w", err)
	}
	return list, nil
}

func (s *projectService) UpdateProject(project *models.Project) (*models.Project, error) {
	if project == nil || project.ID == 0 {
		return nil, errors.New("project id is required")
	}
	if err := s.projects.Update(s.ctx, project); err != nil {
		return nil, fmt.Errorf("service: update project %d: %w", project.ID, err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(id uint) error {
	if err := s.projects.Delete(s.ctx, id); err != nil {
		return fmt.Errorf("service: delete project %d: %w", id, err)
	}
	return nil
}

// ReplaceScenes installs a freshly split storyboard, renumbering scenes in
// the order given.
func (s *projectService) ReplaceScenes(projectID uint, scenes []models.Scene) ([]models.Scene, error) {
	if projectID == 0 {
		return nil, errors.New("project id is required")
	}
	for i := range scenes {
		scenes[i].SceneNumber = i + 1
		if scenes[i].Status == "" {
			scenes[i].Status = models.SceneStatusPending
		}
	}
	if err := s.scenes.ReplaceForProject(s.ctx, projectID, scenes); err != nil {
		return nil, fmt.Errorf("service: replace scenes for project %d: %w", projectID, err)
	}
	return s.scenes.ListByProject(s.ctx, projectID)
}

func (s *projectService) MarkSceneRendered(sceneID uint, imageFile, videoFile, audioFile string) error {
	if sceneID == 0 {
		return errors.New("scene id is required")
	}

	media := make(map[string]string)
	if imageFile != "" {
		media["image_file"] = imageFile
	}
	if videoFile != "" {
		media["video_file"] = videoFile
	}
	if audioFile != "" {
		media["audio_file"] = audioFile
	}

	if err := s.scenes.UpdateStatus(s.ctx, sceneID, models.SceneStatusDone, media); err != nil {
		return fmt.Errorf("service: mark scene %d rendered: %w", sceneID, err)
	}
	return nil
}

// ListGeneratedMedia walks the project's output directory for rendered
// assets. Local backends (ComfyUI, SD WebUI) drop files into nested
// per-batch folders, hence the recursive glob.
func (s *projectService) ListGeneratedMedia(projectID uint) ([]string, error) {
	project, err := s.projects.FindByID(s.ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: list media for project %d: %w", projectID, err)
	}
	if project.OutputDir == "" || !utils.DirectoryExists(project.OutputDir) {
		return nil, nil
	}

	var files []string
	for _, pattern := range []string{"**/*.png", "**/*.jpg", "**/*.mp4", "**/*.mp3", "**/*.wav"} {
		matches, err := filepathx.Glob(filepath.Join(project.OutputDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("service: scanning %s: %w", project.OutputDir, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}
