package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"sceneloom/internal/events"
	"sceneloom/internal/models"
	"sceneloom/internal/repositories"
	"sceneloom/internal/settings"
)

// RemoteSettingsClient is the transport used to reach the settings sync
// service. Fetch returns nil when the service has no configuration yet.
type RemoteSettingsClient interface {
	Enabled() bool
	Fetch(ctx context.Context) (map[string]any, error)
	Push(ctx context.Context, settings models.Settings) error
}

// SettingsService owns the single in-memory settings aggregate and keeps it
// consistent across the local slot and the remote service.
//
// Configuration problems never surface as fatal errors here: corrupt or
// missing persisted data degrades to defaults, and remote failures are
// logged and absorbed so the rest of the app keeps working on sane
// fallbacks.
type SettingsService interface {
	Startup(ctx context.Context)
	Get() models.Settings
	IsLoaded() bool

	// LoadFromBackend fetches remote settings once at startup (safe to call
	// again). A structurally valid remote payload is authoritative and is
	// written back to the local slot; regardless of outcome, the service
	// ends up load-complete.
	LoadFromBackend()

	// SyncToBackend pushes the whole current aggregate to the remote
	// service, fire-and-forget.
	SyncToBackend()

	// Flush waits for pending remote pushes. Called once at shutdown.
	Flush()

	UpdateLLM(patch map[string]any) (models.ModelConfig, error)
	UpdateImage(patch map[string]any) (models.ModelConfig, error)
	UpdateStoryboard(patch map[string]any) (models.ModelConfig, error)
	UpdateVideo(patch map[string]any) (models.ModelConfig, error)
	UpdateLocal(patch map[string]any) (models.LocalDeploymentConfig, error)
	UpdateTTSProvider(provider string) (models.TTSConfig, error)
	UpdateVolcTTS(patch map[string]any) (models.VolcTTSSettings, error)
	UpdateFishTTS(patch map[string]any) (models.FishTTSSettings, error)
	UpdateBailianTTS(patch map[string]any) (models.BailianTTSSettings, error)
	UpdateCustomTTS(patch map[string]any) (models.CustomTTSSettings, error)
}

type settingsService struct {
	repo   repositories.SettingsRepository
	remote RemoteSettingsClient
	ctx    context.Context

	mu      sync.RWMutex
	current models.Settings
	loaded  bool

	pending sync.WaitGroup
}

func NewSettingsService(repo repositories.SettingsRepository, remote RemoteSettingsClient) SettingsService {
	return &settingsService{
		repo:    repo,
		remote:  remote,
		ctx:     context.Background(),
		current: settings.Defaults(),
	}
}

// Startup loads and migrates the local slot, installs the result as current
// state and writes the re-stamped envelope back so the next cold start skips
// migration.
func (s *settingsService) Startup(ctx context.Context) {
	s.ctx = ctx

	payload, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("settings: loading local slot failed, falling back to defaults", "error", err)
		payload = nil
	}

	migrated := settings.Migrate(payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = migrated
	if err := s.persistLocked(); err != nil {
		slog.Error("settings: persisting migrated settings failed", "error", err)
	}
}

func (s *settingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *settingsService) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *settingsService) LoadFromBackend() {
	// Load-complete is reached no matter what happens below; the app must
	// never block on remote availability.
	defer s.markLoaded()

	if s.remote == nil || !s.remote.Enabled() {
		return
	}

	payload, err := s.remote.Fetch(s.ctx)
	if err != nil {
		slog.Error("settings: remote fetch failed, keeping local state", "error", err)
		return
	}

	// A payload without llm means the service holds no configuration yet.
	if v, ok := payload["llm"]; !ok || v == nil {
		return
	}

	// Remote is authoritative. Every section is merged against defaults so
	// a payload written by an older release still yields a complete object.
	reconciled := settings.Reconcile(payload)

	s.mu.Lock()
	s.current = reconciled
	s.loaded = true
	if err := s.persistLocked(); err != nil {
		slog.Error("settings: caching remote settings failed", "error", err)
	}
	s.mu.Unlock()

	events.Emit(s.ctx, events.SettingsLoaded,
		events.NewSettingsEvent(events.EventSuccess, "", "settings loaded from backend"))
}

func (s *settingsService) SyncToBackend() {
	s.mu.RLock()
	snapshot := s.current
	s.mu.RUnlock()
	s.pushAsync(snapshot)
}

func (s *settingsService) Flush() {
	s.pending.Wait()
}

func (s *settingsService) UpdateLLM(patch map[string]any) (models.ModelConfig, error) {
	return mutate(s, "llm", patch,
		func(st *models.Settings) *models.ModelConfig { return &st.LLM })
}

func (s *settingsService) UpdateImage(patch map[string]any) (models.ModelConfig, error) {
	return mutate(s, "image", patch,
		func(st *models.Settings) *models.ModelConfig { return &st.Image })
}

func (s *settingsService) UpdateStoryboard(patch map[string]any) (models.ModelConfig, error) {
	return mutate(s, "storyboard", patch,
		func(st *models.Settings) *models.ModelConfig { return &st.Storyboard })
}

func (s *settingsService) UpdateVideo(patch map[string]any) (models.ModelConfig, error) {
	return mutate(s, "video", patch,
		func(st *models.Settings) *models.ModelConfig { return &st.Video })
}

func (s *settingsService) UpdateLocal(patch map[string]any) (models.LocalDeploymentConfig, error) {
	return mutate(s, "local", patch,
		func(st *models.Settings) *models.LocalDeploymentConfig { return &st.Local })
}

func (s *settingsService) UpdateTTSProvider(provider string) (models.TTSConfig, error) {
	return mutate(s, "tts", map[string]any{"provider": provider},
		func(st *models.Settings) *models.TTSConfig { return &st.TTS })
}

func (s *settingsService) UpdateVolcTTS(patch map[string]any) (models.VolcTTSSettings, error) {
	return mutate(s, "tts.volc", patch,
		func(st *models.Settings) *models.VolcTTSSettings { return &st.TTS.Volc })
}

func (s *settingsService) UpdateFishTTS(patch map[string]any) (models.FishTTSSettings, error) {
	return mutate(s, "tts.fish", patch,
		func(st *models.Settings) *models.FishTTSSettings { return &st.TTS.Fish })
}

func (s *settingsService) UpdateBailianTTS(patch map[string]any) (models.BailianTTSSettings, error) {
	return mutate(s, "tts.bailian", patch,
		func(st *models.Settings) *models.BailianTTSSettings { return &st.TTS.Bailian })
}

func (s *settingsService) UpdateCustomTTS(patch map[string]any) (models.CustomTTSSettings, error) {
	return mutate(s, "tts.custom", patch,
		func(st *models.Settings) *models.CustomTTSSettings { return &st.TTS.Custom })
}

// mutate applies a shallow patch strictly within one sub-object, persists
// the whole aggregate synchronously, then fires an async remote push.
// Sibling sections are never rebuilt, so untouched sections compare equal
// before and after.
func mutate[T any](s *settingsService, name string, patch map[string]any, field func(*models.Settings) *T) (T, error) {
	s.mu.Lock()

	target := field(&s.current)
	merged, err := mergeSection(*target, patch)
	if err != nil {
		s.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("updating %s: %w", name, err)
	}
	*target = merged

	// Local persistence completes before this call returns; the cache is
	// never more than one mutation behind memory.
	if err := s.persistLocked(); err != nil {
		snapshot := s.current
		s.mu.Unlock()
		s.pushAsync(snapshot)
		return merged, fmt.Errorf("updating %s: %w", name, err)
	}
	snapshot := s.current
	s.mu.Unlock()

	s.pushAsync(snapshot)
	events.Emit(s.ctx, events.SettingsChanged,
		events.NewSettingsEvent(events.EventSuccess, name, name+" settings updated"))
	return merged, nil
}

// mergeSection merges a patch onto a typed section: patch keys win
// (including empty strings), absent keys keep the current value.
func mergeSection[T any](current T, patch map[string]any) (T, error) {
	var zero T

	raw, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return zero, err
	}

	out, err := json.Marshal(settings.Apply(asMap, patch))
	if err != nil {
		return zero, err
	}
	var merged T
	if err := json.Unmarshal(out, &merged); err != nil {
		return zero, fmt.Errorf("invalid patch: %w", err)
	}
	return merged, nil
}

// persistLocked writes the current aggregate into the local slot under the
// current schema version. Callers hold s.mu.
func (s *settingsService) persistLocked() error {
	envelope := settings.Envelope(s.current, s.loaded)
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encoding settings envelope: %w", err)
	}
	return s.repo.Save(s.ctx, payload, settings.CurrentVersion)
}

// pushAsync sends the snapshot to the remote service without blocking the
// caller. Failures are logged and otherwise ignored; each push carries the
// entire aggregate, so interleaved pushes settle last-applied-wins.
func (s *settingsService) pushAsync(snapshot models.Settings) {
	if s.remote == nil || !s.remote.Enabled() {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.remote.Push(s.ctx, snapshot); err != nil {
			slog.Error("settings: best-effort push failed", "error", err)
			events.Emit(s.ctx, events.SettingsSyncDone,
				events.NewSettingsEvent(events.EventWarn, "", "settings sync failed"))
			return
		}
		events.Emit(s.ctx, events.SettingsSyncDone,
			events.NewSettingsEvent(events.EventSuccess, "", "settings synced"))
	}()
}

func (s *settingsService) markLoaded() {
	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
}
