package resumes

import "time"

// Project is a named resume owned by a user. The pair (Email, Name) is the
// identity; Final holds the builder document as free-form JSON.
type Project struct {
	Email              string
	Name               string
	Category           string
	SelectedTemplateID string
	Final              map[string]any
	Score              int
	Modified           time.Time
}
