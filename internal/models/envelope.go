package models

import "time"

// SettingsEnvelope is the only persisted unit for provider configuration.
// Version is the sole schema-compatibility key; there is no per-field
// versioning.
type SettingsEnvelope struct {
	State   SettingsState `json:"state"`
	Version int           `json:"version"`
}

// SettingsState wraps the settings aggregate with the load-complete flag.
type SettingsState struct {
	Settings Settings `json:"settings"`
	IsLoaded bool     `json:"isLoaded"`
}

// SettingsRecord is the single-slot database row holding the raw envelope
// JSON. The payload is stored opaquely so the migration engine sees persisted
// data exactly as an older release wrote it.
type SettingsRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:64;not null;uniqueIndex"`
	Payload   []byte `gorm:"type:blob;not null"`
	Version   int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
