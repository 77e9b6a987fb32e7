package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Event names the frontend subscribes to.
const (
	SettingsChanged  = "event:settings:changed"
	SettingsLoaded   = "event:settings:loaded"
	SettingsSyncDone = "event:settings:sync"
)

// SettingsEvent is the payload emitted when configuration state moves:
// Section names the sub-object that changed ("llm", "tts.volc", ...) or is
// empty for whole-aggregate transitions like a remote-authoritative load.
type SettingsEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Section   string    `json:"section,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSettingsEvent(eventType EventType, section, message string) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Section:   section,
		Message:   message,
		Timestamp: time.Now(),
	}
}
