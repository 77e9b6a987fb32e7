package models

// PromptTemplate is a user-editable prompt used when asking the LLM to split
// source text into storyboard scenes or to style image prompts.
type PromptTemplate struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null;unique" json:"name"`
	Kind    string `gorm:"size:32;not null;default:storyboard" json:"kind"`
	Content string `gorm:"type:text;not null" json:"content"`
}
