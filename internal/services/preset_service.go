package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"sceneloom/internal/assets"
	"sceneloom/internal/models"
)

// Capability names presets are cataloged under.
const (
	CapabilityLLM   = "llm"
	CapabilityImage = "image"
	CapabilityVideo = "video"
)

// PresetService exposes the static provider-preset catalogs. Presets are UI
// affordances, not schema: changing the catalog never touches persisted user
// data.
type PresetService interface {
	Startup(ctx context.Context) error
	ListPresets(capability string) ([]models.ProviderPreset, error)
	FindPreset(capability, id string) (*models.ProviderPreset, error)
}

type presetService struct {
	ctx context.Context

	mu       sync.RWMutex
	catalogs map[string][]models.ProviderPreset
}

func NewPresetService() PresetService {
	return &presetService{catalogs: make(map[string][]models.ProviderPreset)}
}

func (s *presetService) Startup(ctx context.Context) error {
	s.ctx = ctx

	var parsed map[string][]models.ProviderPreset
	if err := json.Unmarshal(assets.PresetsData, &parsed); err != nil {
		return fmt.Errorf("parse presets asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs = parsed
	return nil
}

func (s *presetService) ListPresets(capability string) ([]models.ProviderPreset, error) {
	capability = strings.TrimSpace(capability)

	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog, ok := s.catalogs[capability]
	if !ok {
		return nil, fmt.Errorf("unknown capability %q", capability)
	}

	// Copies keep the embedded catalog immutable.
	out := make([]models.ProviderPreset, len(catalog))
	for i, preset := range catalog {
		out[i] = preset
		out[i].Models = append([]string(nil), preset.Models...)
	}
	return out, nil
}

func (s *presetService) FindPreset(capability, id string) (*models.ProviderPreset, error) {
	presets, err := s.ListPresets(capability)
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].ID == id {
			return &presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset %s/%s not found", capability, id)
}
