package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_OverlayWins(t *testing.T) {
	base := map[string]any{"a": "base", "b": "base"}
	overlay := map[string]any{"a": "overlay"}

	merged := Apply(base, overlay)

	assert.Equal(t, "overlay", merged["a"])
	assert.Equal(t, "base", merged["b"])
}

func TestApply_EmptyStringOverrides(t *testing.T) {
	base := map[string]any{"model": "gpt-4o"}
	overlay := map[string]any{"model": ""}

	merged := Apply(base, overlay)

	assert.Equal(t, "", merged["model"])
}

func TestApply_NestedMapsMergeRecursively(t *testing.T) {
	base := map[string]any{
		"tts": map[string]any{
			"volc": map[string]any{"cluster": "volcano_tts", "encoding": "mp3"},
		},
	}
	overlay := map[string]any{
		"tts": map[string]any{
			"volc": map[string]any{"cluster": "custom_cluster"},
		},
	}

	merged := Apply(base, overlay)

	volc := merged["tts"].(map[string]any)["volc"].(map[string]any)
	assert.Equal(t, "custom_cluster", volc["cluster"])
	assert.Equal(t, "mp3", volc["encoding"])
}

func TestApply_NonMapReplacesMap(t *testing.T) {
	base := map[string]any{"tts": map[string]any{"provider": "volc"}}
	overlay := map[string]any{"tts": "broken"}

	merged := Apply(base, overlay)

	assert.Equal(t, "broken", merged["tts"])
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"nested": map[string]any{"keep": "base"}}
	overlay := map[string]any{"nested": map[string]any{"add": "overlay"}}

	merged := Apply(base, overlay)
	merged["nested"].(map[string]any)["keep"] = "mutated"

	assert.Equal(t, "base", base["nested"].(map[string]any)["keep"])
	assert.NotContains(t, base["nested"].(map[string]any), "add")
	assert.NotContains(t, overlay["nested"].(map[string]any), "keep")
}

func TestApply_SparseOverlay(t *testing.T) {
	merged := Apply(defaultsMap(), map[string]any{})
	assert.Equal(t, defaultsMap(), merged)
}
