package models

import "time"

// Project is one storyboard project: a piece of source text plus the scenes
// derived from it.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ExternalID  string    `gorm:"size:36;not null;uniqueIndex" json:"externalId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	SourceText  string    `gorm:"type:text" json:"sourceText,omitempty"`
	OutputDir   string    `gorm:"size:512" json:"outputDir,omitempty"`
	Scenes      []Scene   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"scenes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Scene is a single storyboard frame: prompt in, rendered media out.
type Scene struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"projectId"`
	SceneNumber int       `gorm:"not null" json:"sceneNumber"`
	Description string    `gorm:"type:text" json:"description"`
	Prompt      string    `gorm:"type:text" json:"prompt"`
	Status      string    `gorm:"size:32;not null;default:pending" json:"status"`
	ImageFile   string    `gorm:"size:512" json:"imageFile,omitempty"`
	VideoFile   string    `gorm:"size:512" json:"videoFile,omitempty"`
	AudioFile   string    `gorm:"size:512" json:"audioFile,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Scene status values.
const (
	SceneStatusPending   = "pending"
	SceneStatusRendering = "rendering"
	SceneStatusDone      = "done"
	SceneStatusFailed    = "failed"
)
