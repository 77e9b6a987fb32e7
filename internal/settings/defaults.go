package settings

import "sceneloom/internal/models"

// Schema versions carried on the persisted envelope. Version 1 stored TTS
// settings as a flat object on tts; version 2 nests one sub-config per
// provider. CurrentVersion is stamped on everything this release writes.
const (
	VersionLegacyFlatTTS = 1
	CurrentVersion       = 2
)

// SlotName is the fixed key of the single persisted settings slot.
const SlotName = "provider-settings"

// BailianStreamingEndpoint is the canonical DashScope websocket endpoint for
// speech synthesis. HTTP(S) DashScope URLs entered by users are rewritten to
// this during migration.
const BailianStreamingEndpoint = "wss://dashscope.aliyuncs.com/api-ws/v1/inference"

// Defaults returns the canonical default settings value. Every field of the
// aggregate is covered; migration and reconciliation fall back to these
// field by field, never wholesale except on cold start.
func Defaults() models.Settings {
	return models.Settings{
		LLM: models.ModelConfig{
			Provider: "openai",
			BaseURL:  "https://api.openai.com/v1",
			Model:    "gpt-4o",
		},
		Image: models.ModelConfig{
			Provider: "doubao",
			BaseURL:  "https://ark.cn-beijing.volces.com/api/v3",
			Model:    "doubao-seedream-3-0-t2i",
		},
		Storyboard: models.ModelConfig{
			Provider: "doubao",
			BaseURL:  "https://ark.cn-beijing.volces.com/api/v3",
			Model:    "doubao-seedream-3-0-t2i",
		},
		Video: models.ModelConfig{
			Provider: "doubao",
			BaseURL:  "https://ark.cn-beijing.volces.com/api/v3",
			Model:    "doubao-seedance-1-0-lite-t2v",
		},
		TTS: models.TTSConfig{
			Provider: "volc",
			Volc: models.VolcTTSSettings{
				Cluster:          "volcano_tts",
				TTSVoiceSettings: defaultVoiceSettings(),
			},
			Fish: models.FishTTSSettings{
				BaseURL:          "https://api.fish.audio",
				Model:            "speech-1.6",
				TTSVoiceSettings: defaultVoiceSettings(),
			},
			Bailian: models.BailianTTSSettings{
				BaseURL:          BailianStreamingEndpoint,
				Model:            "cosyvoice-v2",
				TTSVoiceSettings: defaultVoiceSettings(),
			},
			Custom: models.CustomTTSSettings{
				Model:            "tts-1",
				TTSVoiceSettings: defaultVoiceSettings(),
			},
		},
		Local: models.LocalDeploymentConfig{
			ComfyUIURL:   "http://127.0.0.1:8188",
			SDWebUIURL:   "http://127.0.0.1:7860",
			VRAMStrategy: "balanced",
		},
	}
}

func defaultVoiceSettings() models.TTSVoiceSettings {
	return models.TTSVoiceSettings{
		Encoding:                "mp3",
		Rate:                    24000,
		SpeedRatio:              1.0,
		NarratorVoiceType:       "BV701_streaming",
		DialogueMaleVoiceType:   "BV102_streaming",
		DialogueFemaleVoiceType: "BV705_streaming",
		DialogueVoiceType:       "BV001_streaming",
	}
}
