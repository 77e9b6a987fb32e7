package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"sceneloom/internal/llm/client"
	"sceneloom/internal/models"
	"sceneloom/internal/services"
	"sceneloom/internal/utils"
)

// App struct
type App struct {
	ctx       context.Context
	Settings  services.SettingsService
	Projects  services.ProjectService
	Templates services.TemplateService
	Presets   services.PresetService
	dbClose   func() error
	flush     func()
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Pending settings pushes are
// flushed before the database closes.
func (a *App) shutdown(ctx context.Context) {
	var result *multierror.Error

	if a.flush != nil {
		a.flush()
	}

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			result = multierror.Append(result, fmt.Errorf("closing database: %w", err))
		}
		a.dbClose = nil
	}

	if err := result.ErrorOrNil(); err != nil {
		runtime.LogError(ctx, "shutdown: "+err.Error())
	} else {
		runtime.LogInfo(ctx, "shutdown complete")
	}
}

// SelectDirectory opens a native directory picker dialog
func (a *App) SelectDirectory() (string, error) {
	return runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select output directory",
	})
}

// ImportSceneList reads a plain text file with one scene description per
// line and installs it as the project's storyboard, skipping the LLM split.
func (a *App) ImportSceneList(projectID uint, path string) ([]models.Scene, error) {
	lines, err := utils.ReadNonEmptyLines(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene list: %w", err)
	}

	scenes := make([]models.Scene, 0, len(lines))
	for _, line := range lines {
		scenes = append(scenes, models.Scene{Description: line, Prompt: line})
	}
	return a.Projects.ReplaceScenes(projectID, scenes)
}

// GenerateStoryboard splits a project's source text into scenes with the
// currently configured LLM and the given prompt template.
func (a *App) GenerateStoryboard(projectID, templateID uint) ([]models.Scene, error) {
	project, err := a.Projects.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(project.SourceText) == "" {
		return nil, fmt.Errorf("project %d has no source text", projectID)
	}

	tmpl, err := a.Templates.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}

	chatModel, err := client.NewChatModel(a.ctx, a.Settings.Get().LLM)
	if err != nil {
		return nil, err
	}

	scenes, err := client.SplitScenes(a.ctx, chatModel, tmpl.Content, project.SourceText)
	if err != nil {
		return nil, err
	}
	return a.Projects.ReplaceScenes(projectID, scenes)
}
