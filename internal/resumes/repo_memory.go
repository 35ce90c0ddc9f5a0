package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ProjectsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Project // email -> name -> project
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]map[string]Project),
	}
}

// Create inserts a new project, rejecting duplicate names per user.
func (r *MemoryRepo) Create(ctx context.Context, p Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byName, ok := r.data[p.Email]
	if !ok {
		byName = make(map[string]Project)
		r.data[p.Email] = byName
	}
	if _, exists := byName[p.Name]; exists {
		return ErrConflict
	}
	byName[p.Name] = clone(p)
	return nil
}

// Upsert inserts the project or, when the name already exists, overwrites
// only the builder document and the modified stamp.
func (r *MemoryRepo) Upsert(ctx context.Context, p Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byName, ok := r.data[p.Email]
	if !ok {
		byName = make(map[string]Project)
		r.data[p.Email] = byName
	}
	if existing, exists := byName[p.Name]; exists {
		existing.Final = p.Final
		existing.Modified = p.Modified
		byName[p.Name] = clone(existing)
		return nil
	}
	byName[p.Name] = clone(p)
	return nil
}

// GetByName returns one project by name.
func (r *MemoryRepo) GetByName(ctx context.Context, email, name string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[email][name]
	if !ok {
		return Project{}, ErrNotFound
	}
	return clone(p), nil
}

// ListByEmail returns the user's projects newest-first.
func (r *MemoryRepo) ListByEmail(ctx context.Context, email string) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Project, 0, len(r.data[email]))
	for _, p := range r.data[email] {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Modified.Equal(out[j].Modified) {
			return out[i].Name < out[j].Name
		}
		return out[i].Modified.After(out[j].Modified)
	})
	return out, nil
}

// Delete removes one project by name.
func (r *MemoryRepo) Delete(ctx context.Context, email, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byName := r.data[email]
	if _, ok := byName[name]; !ok {
		return ErrNotFound
	}
	delete(byName, name)
	return nil
}

// SetTemplate updates the selected template for one project.
func (r *MemoryRepo) SetTemplate(ctx context.Context, email, name, templateID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.data[email][name]
	if !ok {
		return ErrNotFound
	}
	p.SelectedTemplateID = templateID
	r.data[email][name] = p
	return nil
}

// SetScore updates the stored score for one project.
func (r *MemoryRepo) SetScore(ctx context.Context, email, name string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.data[email][name]
	if !ok {
		return ErrNotFound
	}
	p.Score = score
	r.data[email][name] = p
	return nil
}

func clone(p Project) Project {
	if p.Final != nil {
		final := make(map[string]any, len(p.Final))
		for k, v := range p.Final {
			final[k] = v
		}
		p.Final = final
	}
	return p
}
