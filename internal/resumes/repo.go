package resumes

import "context"

// ProjectsRepo defines persistence operations for resume projects.
type ProjectsRepo interface {
	// Create inserts a new project and reports ErrConflict when the user
	// already has a project with the same name.
	Create(ctx context.Context, p Project) error
	// Upsert inserts the project or replaces the existing one with the
	// same name for the same user.
	Upsert(ctx context.Context, p Project) error
	GetByName(ctx context.Context, email, name string) (Project, error)
	// ListByEmail returns the user's projects newest-first. A user with no
	// projects gets an empty slice, never an error.
	ListByEmail(ctx context.Context, email string) ([]Project, error)
	Delete(ctx context.Context, email, name string) error
	SetTemplate(ctx context.Context, email, name, templateID string) error
	SetScore(ctx context.Context, email, name string, score int) error
}
