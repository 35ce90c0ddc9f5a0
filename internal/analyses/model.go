package analyses

import "time"

// Run is one completed resume analysis. Runs are append-only; a new analysis
// of the same resume adds a run instead of replacing earlier ones.
type Run struct {
	ID           string
	Email        string
	ResumeName   string
	JobRole      string
	Score        int
	Strengths    []string
	Improvements []string
	GrammarFixes []string
	Date         time.Time
}
