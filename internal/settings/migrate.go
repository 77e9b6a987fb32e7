package settings

import (
	"encoding/json"
	"errors"

	"sceneloom/internal/models"
)

// legacyFlatTTSFields are the fields an envelope older than version 2 stored
// directly on the tts object. They all belong to the Volc sub-config in the
// current shape.
var legacyFlatTTSFields = []string{
	"appid", "accessToken", "cluster", "model",
	"encoding", "rate", "speedRatio",
	"narratorVoiceType", "dialogueMaleVoiceType", "dialogueFemaleVoiceType", "dialogueVoiceType",
}

// Migrate upgrades a raw persisted envelope of any prior shape to the
// current settings schema. It is total: malformed, sparse or empty input
// degrades toward Defaults() instead of failing, and re-migrating an
// already-current envelope returns it unchanged.
func Migrate(raw []byte) models.Settings {
	if len(raw) == 0 {
		return Defaults()
	}

	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Defaults()
	}

	state := section(envelope, "state")
	stored := section(state, "settings")

	// llm is the aggregate's anchor field. Its absence means the slot was
	// never initialized or is beyond repair.
	if _, ok := stored["llm"]; !ok {
		return Defaults()
	}

	if envelopeVersion(envelope) < CurrentVersion {
		stored = liftLegacyTTS(stored)
	}

	return Reconcile(stored)
}

// Reconcile merges a current-shape settings object against the defaults and
// decodes it into the typed aggregate. Fields present in data win, including
// empty strings; absent fields fall back to the default value. Both the
// migration path and the remote-authoritative load path funnel through here
// so every section gets the same per-field defaulting.
func Reconcile(data map[string]any) models.Settings {
	merged := Apply(defaultsMap(), data)
	normalizeBailianBaseURL(merged)

	out, err := json.Marshal(merged)
	if err != nil {
		return Defaults()
	}

	var result models.Settings
	if err := json.Unmarshal(out, &result); err != nil {
		// A type mismatch on one field must not discard the rest.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Defaults()
		}
	}
	return result
}

// Envelope wraps settings in a persisted envelope stamped with the current
// schema version.
func Envelope(s models.Settings, loaded bool) models.SettingsEnvelope {
	return models.SettingsEnvelope{
		State: models.SettingsState{
			Settings: s,
			IsLoaded: loaded,
		},
		Version: CurrentVersion,
	}
}

// liftLegacyTTS rewrites a version-1 flat tts object into the nested
// per-provider shape: the flat fields become the Volc sub-config, a flat
// baseUrl seeds the Fish endpoint, and bailian/custom are left for the
// default merge to fill.
func liftLegacyTTS(stored map[string]any) map[string]any {
	flat := section(stored, "tts")

	volc := make(map[string]any)
	for _, field := range legacyFlatTTSFields {
		if val, ok := flat[field]; ok {
			volc[field] = val
		}
	}

	nested := map[string]any{"volc": volc}
	if provider, ok := flat["provider"]; ok {
		nested["provider"] = provider
	}
	if baseURL, ok := flat["baseUrl"]; ok {
		nested["fish"] = map[string]any{"baseUrl": baseURL}
	}

	upgraded := cloneMap(stored)
	upgraded["tts"] = nested
	return upgraded
}

func envelopeVersion(envelope map[string]any) int {
	switch v := envelope["version"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func defaultsMap() map[string]any {
	raw, err := json.Marshal(Defaults())
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}
