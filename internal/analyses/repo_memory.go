package analyses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of RunsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Run // email -> runs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Run),
	}
}

// Append stores a new run.
func (r *MemoryRepo) Append(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	run.Date = NormalizeDate(run.Date)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[run.Email] = append(r.data[run.Email], run)
	return nil
}

// ListByEmail returns the user's runs newest-first.
func (r *MemoryRepo) ListByEmail(ctx context.Context, email string) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Run, len(r.data[email]))
	copy(out, r.data[email])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// Delete removes every run matching all four fields exactly.
func (r *MemoryRepo) Delete(ctx context.Context, email, resumeName, jobRole string, date time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	date = NormalizeDate(date)
	r.mu.Lock()
	defer r.mu.Unlock()
	runs := r.data[email]
	kept := runs[:0]
	for _, run := range runs {
		if run.ResumeName == resumeName && run.JobRole == jobRole && run.Date.Equal(date) {
			continue
		}
		kept = append(kept, run)
	}
	if len(kept) == len(runs) {
		return ErrNotFound
	}
	r.data[email] = kept
	return nil
}
