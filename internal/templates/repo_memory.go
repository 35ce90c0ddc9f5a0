package templates

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of TemplatesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Template // id -> template
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Template),
	}
}

// Create inserts a new template, rejecting duplicate names and indexes.
func (r *MemoryRepo) Create(ctx context.Context, t Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == t.Name || existing.TemplateIndex == t.TemplateIndex {
			return ErrConflict
		}
	}
	r.data[t.ID] = t
	return nil
}

// GetByIndex returns the template at the given position.
func (r *MemoryRepo) GetByIndex(ctx context.Context, index int) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.data {
		if t.TemplateIndex == index {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}

// List returns all templates ordered by index.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.data))
	for _, t := range r.data {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TemplateIndex < out[j].TemplateIndex })
	return out, nil
}

// SetThumbnail stores the thumbnail key for a template.
func (r *MemoryRepo) SetThumbnail(ctx context.Context, id, thumbnailKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	t.ThumbnailKey = thumbnailKey
	t.UpdatedAt = time.Now().UTC()
	r.data[id] = t
	return nil
}

// Delete removes a template and returns the removed record.
func (r *MemoryRepo) Delete(ctx context.Context, id string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.data[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	delete(r.data, id)
	return t, nil
}
