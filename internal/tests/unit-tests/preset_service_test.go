package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneloom/internal/services"
)

func newStartedPresetService(t *testing.T) services.PresetService {
	t.Helper()
	service := services.NewPresetService()
	require.NoError(t, service.Startup(context.Background()))
	return service
}

func TestPresetService_ListPresets_KnownCapabilities(t *testing.T) {
	service := newStartedPresetService(t)

	for _, capability := range []string{services.CapabilityLLM, services.CapabilityImage, services.CapabilityVideo} {
		presets, err := service.ListPresets(capability)
		require.NoError(t, err)
		assert.NotEmpty(t, presets, capability)
		for _, preset := range presets {
			assert.NotEmpty(t, preset.ID)
			assert.NotEmpty(t, preset.DisplayName)
		}
	}
}

func TestPresetService_ListPresets_UnknownCapability(t *testing.T) {
	service := newStartedPresetService(t)

	_, err := service.ListPresets("audio")
	assert.Error(t, err)
}

func TestPresetService_FindPreset(t *testing.T) {
	service := newStartedPresetService(t)

	preset, err := service.FindPreset(services.CapabilityLLM, "deepseek")
	require.NoError(t, err)
	assert.Equal(t, "DeepSeek", preset.DisplayName)
	assert.Contains(t, preset.Models, "deepseek-chat")

	_, err = service.FindPreset(services.CapabilityLLM, "nope")
	assert.Error(t, err)
}

func TestPresetService_ListPresets_ReturnsCopies(t *testing.T) {
	service := newStartedPresetService(t)

	first, err := service.ListPresets(services.CapabilityLLM)
	require.NoError(t, err)
	require.NotEmpty(t, first[0].Models)
	first[0].Models[0] = "tampered"
	first[0].DisplayName = "tampered"

	second, err := service.ListPresets(services.CapabilityLLM)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", second[0].Models[0])
	assert.NotEqual(t, "tampered", second[0].DisplayName)
}
