package models

// ModelConfig binds one generation capability (LLM, image, storyboard image,
// video) to a provider, endpoint and model choice. The API key lives here in
// plain text; the settings store does not encrypt credentials.
type ModelConfig struct {
	Provider       string `json:"provider"`
	APIKey         string `json:"apiKey"`
	BaseURL        string `json:"baseUrl"`
	Model          string `json:"model"`
	CustomProvider string `json:"customProvider,omitempty"`
}

// TTSVoiceSettings is the audio/voice-role subset shared by every TTS
// provider variant. Embedded structs flatten in JSON, so these fields sit
// directly on each variant object.
type TTSVoiceSettings struct {
	Encoding                string  `json:"encoding"`
	Rate                    int     `json:"rate"`
	SpeedRatio              float64 `json:"speedRatio"`
	NarratorVoiceType       string  `json:"narratorVoiceType"`
	DialogueMaleVoiceType   string  `json:"dialogueMaleVoiceType"`
	DialogueFemaleVoiceType string  `json:"dialogueFemaleVoiceType"`
	DialogueVoiceType       string  `json:"dialogueVoiceType"`
}

// VolcTTSSettings configures Volcengine speech synthesis.
type VolcTTSSettings struct {
	AppID       string `json:"appid"`
	AccessToken string `json:"accessToken"`
	Cluster     string `json:"cluster"`
	Model       string `json:"model"`
	TTSVoiceSettings
}

// FishTTSSettings configures Fish Audio speech synthesis.
type FishTTSSettings struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseUrl"`
	Model   string `json:"model"`
	TTSVoiceSettings
}

// BailianTTSSettings configures Alibaba Bailian (DashScope) speech synthesis.
// BaseURL is the websocket streaming endpoint, not the REST base.
type BailianTTSSettings struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseUrl"`
	Model   string `json:"model"`
	TTSVoiceSettings
}

// CustomTTSSettings configures an OpenAI-compatible TTS endpoint.
type CustomTTSSettings struct {
	APIKey  string `json:"apiKey"`
	BaseURL string `json:"baseUrl"`
	Model   string `json:"model"`
	TTSVoiceSettings
}

// TTSConfig keeps all four provider sub-configs materialized regardless of
// which one Provider selects, so switching providers never loses previously
// entered values.
type TTSConfig struct {
	Provider string             `json:"provider"`
	Volc     VolcTTSSettings    `json:"volc"`
	Fish     FishTTSSettings    `json:"fish"`
	Bailian  BailianTTSSettings `json:"bailian"`
	Custom   CustomTTSSettings  `json:"custom"`
}

// LocalDeploymentConfig points at locally hosted generation backends.
type LocalDeploymentConfig struct {
	Enabled      bool   `json:"enabled"`
	ComfyUIURL   string `json:"comfyuiUrl"`
	SDWebUIURL   string `json:"sdWebuiUrl"`
	VRAMStrategy string `json:"vramStrategy"`
}

// Settings is the aggregate root for provider configuration. Exactly one
// value lives in memory per session, owned by the settings service.
type Settings struct {
	LLM        ModelConfig           `json:"llm"`
	Image      ModelConfig           `json:"image"`
	Storyboard ModelConfig           `json:"storyboard"`
	Video      ModelConfig           `json:"video"`
	TTS        TTSConfig             `json:"tts"`
	Local      LocalDeploymentConfig `json:"local"`
}

// ProviderPreset is a static catalog entry describing a selectable backend.
// Presets populate selection UI and seed defaults; they are never persisted.
type ProviderPreset struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	BaseURL     string   `json:"baseUrl"`
	Models      []string `json:"models"`
}
