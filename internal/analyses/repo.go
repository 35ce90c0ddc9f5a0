package analyses

import (
	"context"
	"time"
)

// RunsRepo defines persistence operations for analysis runs.
type RunsRepo interface {
	// Append stores a new run. Existing runs are never modified.
	Append(ctx context.Context, run Run) error
	// ListByEmail returns the user's runs newest-first.
	ListByEmail(ctx context.Context, email string) ([]Run, error)
	// Delete removes the run matching all four fields exactly. Dates are
	// compared in UTC at microsecond precision.
	Delete(ctx context.Context, email, resumeName, jobRole string, date time.Time) error
}

// NormalizeDate maps a timestamp to the precision stored and compared by
// repositories.
func NormalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
