package unit_tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneloom/internal/models"
	"sceneloom/internal/services"
	"sceneloom/internal/settings"
	"sceneloom/internal/tests/mocks"
)

func newStartedService(t *testing.T, repo *mocks.SettingsRepositoryMock, remote *mocks.RemoteClientMock) services.SettingsService {
	t.Helper()
	if repo == nil {
		repo = &mocks.SettingsRepositoryMock{}
	}
	// A nil *RemoteClientMock must arrive as a nil interface, not a typed
	// nil, so the service's remote == nil guard applies.
	var remoteClient services.RemoteSettingsClient
	if remote != nil {
		remoteClient = remote
	}
	service := services.NewSettingsService(repo, remoteClient)
	service.Startup(context.Background())
	return service
}

func TestSettingsService_Startup_EmptySlotInstallsDefaults(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	service := newStartedService(t, repo, nil)

	assert.Equal(t, settings.Defaults(), service.Get())
	// The migrated envelope is written back under the current version.
	require.NotEmpty(t, repo.Saved)
	assert.Equal(t, settings.CurrentVersion, repo.SavedVersion)
}

func TestSettingsService_Startup_MigratesLegacyPayload(t *testing.T) {
	legacy := []byte(`{"version":1,"state":{"settings":{"llm":{"provider":"openai","apiKey":"k"},"tts":{"appid":"A","accessToken":"B","cluster":"C"}}}}`)
	repo := &mocks.SettingsRepositoryMock{
		LoadFunc: func(ctx context.Context) ([]byte, error) { return legacy, nil },
	}

	service := newStartedService(t, repo, nil)

	current := service.Get()
	assert.Equal(t, "A", current.TTS.Volc.AppID)
	assert.Equal(t, "B", current.TTS.Volc.AccessToken)
	assert.Equal(t, settings.Defaults().TTS.Fish, current.TTS.Fish)

	require.NotEmpty(t, repo.Saved)
	var envelope models.SettingsEnvelope
	require.NoError(t, json.Unmarshal(repo.Saved[len(repo.Saved)-1], &envelope))
	assert.Equal(t, settings.CurrentVersion, envelope.Version)
	assert.Equal(t, "A", envelope.State.Settings.TTS.Volc.AppID)
}

func TestSettingsService_Startup_LoadErrorFallsBackToDefaults(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{
		LoadFunc: func(ctx context.Context) ([]byte, error) { return nil, errors.New("disk error") },
	}

	service := newStartedService(t, repo, nil)

	assert.Equal(t, settings.Defaults(), service.Get())
}

func TestSettingsService_LoadFromBackend_RemoteIsAuthoritative(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	remote := &mocks.RemoteClientMock{
		EnabledValue: true,
		FetchFunc: func(ctx context.Context) (map[string]any, error) {
			return map[string]any{
				"llm":   map[string]any{"provider": "deepseek", "apiKey": "remote-key"},
				"image": map[string]any{"provider": "openai", "model": "gpt-image-1"},
			}, nil
		},
	}
	service := newStartedService(t, repo, remote)
	savedBefore := len(repo.Saved)

	service.LoadFromBackend()

	current := service.Get()
	assert.Equal(t, "deepseek", current.LLM.Provider)
	assert.Equal(t, "remote-key", current.LLM.APIKey)
	assert.Equal(t, "gpt-image-1", current.Image.Model)

	// Sections missing from the remote payload are fully populated from
	// defaults; nothing is left zeroed.
	defaults := settings.Defaults()
	assert.Equal(t, defaults.TTS, current.TTS)
	assert.Equal(t, defaults.Video, current.Video)
	assert.Equal(t, defaults.Local, current.Local)

	assert.True(t, service.IsLoaded())
	// Remote state was cached locally for the next cold start.
	assert.Greater(t, len(repo.Saved), savedBefore)
}

func TestSettingsService_LoadFromBackend_FetchFailureStillCompletes(t *testing.T) {
	remote := &mocks.RemoteClientMock{
		EnabledValue: true,
		FetchFunc: func(ctx context.Context) (map[string]any, error) {
			return nil, errors.New("network down")
		},
	}
	service := newStartedService(t, nil, remote)

	service.LoadFromBackend()

	assert.True(t, service.IsLoaded())
	assert.Equal(t, settings.Defaults(), service.Get())
}

func TestSettingsService_LoadFromBackend_NoRemoteConfigKeepsLocal(t *testing.T) {
	remote := &mocks.RemoteClientMock{
		EnabledValue: true,
		FetchFunc: func(ctx context.Context) (map[string]any, error) {
			return map[string]any{"image": map[string]any{"provider": "openai"}}, nil
		},
	}
	service := newStartedService(t, nil, remote)

	service.LoadFromBackend()

	assert.True(t, service.IsLoaded())
	assert.Equal(t, settings.Defaults(), service.Get())
}

func TestSettingsService_LoadFromBackend_DisabledRemoteCompletes(t *testing.T) {
	service := newStartedService(t, nil, nil)

	service.LoadFromBackend()

	assert.True(t, service.IsLoaded())
}

func TestSettingsService_UpdateLLM_MergesAndPersists(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	remote := &mocks.RemoteClientMock{EnabledValue: true}
	service := newStartedService(t, repo, remote)
	savedBefore := len(repo.Saved)

	updated, err := service.UpdateLLM(map[string]any{"apiKey": "sk-new", "model": "deepseek-chat"})
	require.NoError(t, err)

	assert.Equal(t, "sk-new", updated.APIKey)
	assert.Equal(t, "deepseek-chat", updated.Model)
	// Fields not in the patch keep their current values.
	assert.Equal(t, "openai", updated.Provider)

	// Local persistence happens before the updater returns.
	require.Greater(t, len(repo.Saved), savedBefore)
	var envelope models.SettingsEnvelope
	require.NoError(t, json.Unmarshal(repo.Saved[len(repo.Saved)-1], &envelope))
	assert.Equal(t, "sk-new", envelope.State.Settings.LLM.APIKey)

	// The async push carries the whole aggregate.
	service.Flush()
	pushed := remote.Pushed()
	require.Len(t, pushed, 1)
	assert.Equal(t, "sk-new", pushed[0].LLM.APIKey)
}

func TestSettingsService_UpdateVolcTTS_SiblingSectionsUntouched(t *testing.T) {
	service := newStartedService(t, nil, nil)
	before := service.Get()

	updated, err := service.UpdateVolcTTS(map[string]any{"appid": "new-app"})
	require.NoError(t, err)
	assert.Equal(t, "new-app", updated.AppID)

	after := service.Get()
	assert.Equal(t, "new-app", after.TTS.Volc.AppID)
	assert.Equal(t, before.TTS.Fish, after.TTS.Fish)
	assert.Equal(t, before.TTS.Bailian, after.TTS.Bailian)
	assert.Equal(t, before.TTS.Custom, after.TTS.Custom)
	assert.Equal(t, before.LLM, after.LLM)
	assert.Equal(t, before.Image, after.Image)
	assert.Equal(t, before.Video, after.Video)
	assert.Equal(t, before.Local, after.Local)
}

func TestSettingsService_UpdateTTSProvider_KeepsSubConfigs(t *testing.T) {
	service := newStartedService(t, nil, nil)

	_, err := service.UpdateVolcTTS(map[string]any{"appid": "keep-me"})
	require.NoError(t, err)

	tts, err := service.UpdateTTSProvider("fish")
	require.NoError(t, err)

	assert.Equal(t, "fish", tts.Provider)
	// Switching providers never loses previously entered values.
	assert.Equal(t, "keep-me", tts.Volc.AppID)
}

func TestSettingsService_UpdateLocal_EmptyStringOverrides(t *testing.T) {
	service := newStartedService(t, nil, nil)

	updated, err := service.UpdateLocal(map[string]any{"comfyuiUrl": "", "enabled": true})
	require.NoError(t, err)

	assert.Equal(t, "", updated.ComfyUIURL)
	assert.True(t, updated.Enabled)
	assert.Equal(t, settings.Defaults().Local.SDWebUIURL, updated.SDWebUIURL)
}

func TestSettingsService_SyncToBackend_PushFailureIsAbsorbed(t *testing.T) {
	remote := &mocks.RemoteClientMock{
		EnabledValue: true,
		PushFunc: func(ctx context.Context, s models.Settings) error {
			return errors.New("service unavailable")
		},
	}
	service := newStartedService(t, nil, remote)
	before := service.Get()

	assert.NotPanics(t, func() {
		service.SyncToBackend()
		service.Flush()
	})
	assert.Equal(t, before, service.Get())
}

func TestSettingsService_UpdateLLM_PersistFailureReturnsError(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	service := newStartedService(t, repo, nil)

	repo.SaveFunc = func(ctx context.Context, payload []byte, version int) error {
		return errors.New("disk full")
	}

	_, err := service.UpdateLLM(map[string]any{"apiKey": "sk"})
	assert.Error(t, err)
	// The in-memory update stands; only the cache write failed.
	assert.Equal(t, "sk", service.Get().LLM.APIKey)
}

func TestSettingsService_UpdateLLM_InvalidPatchRejected(t *testing.T) {
	service := newStartedService(t, nil, nil)
	before := service.Get()

	_, err := service.UpdateLLM(map[string]any{"provider": 42})
	assert.Error(t, err)
	assert.Equal(t, before, service.Get())
}
