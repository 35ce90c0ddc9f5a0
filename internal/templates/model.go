package templates

import "time"

// Template is a resume layout users can pick for their projects.
type Template struct {
	ID            string
	Name          string
	Description   string
	Category      string
	TemplateIndex int
	ThumbnailKey  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
