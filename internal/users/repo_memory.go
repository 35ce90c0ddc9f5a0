package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of UsersRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]User // email -> user
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]User),
	}
}

// Create inserts a new user.
func (r *MemoryRepo) Create(ctx context.Context, u User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[u.Email]; exists {
		return ErrEmailTaken
	}
	r.data[u.Email] = u
	return nil
}

// GetByEmail returns the user with the given email.
func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.data[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Upsert creates the user or refreshes name and picture on an existing one.
func (r *MemoryRepo) Upsert(ctx context.Context, u User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[u.Email]
	if !ok {
		r.data[u.Email] = u
		return u, nil
	}
	if u.FullName != "" {
		existing.FullName = u.FullName
	}
	if u.PictureURL != "" {
		existing.PictureURL = u.PictureURL
	}
	existing.UpdatedAt = time.Now().UTC()
	r.data[u.Email] = existing
	return existing, nil
}

// UpdateName changes the display name.
func (r *MemoryRepo) UpdateName(ctx context.Context, email, fullName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.data[email]
	if !ok {
		return ErrNotFound
	}
	u.FullName = fullName
	u.UpdatedAt = time.Now().UTC()
	r.data[email] = u
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *MemoryRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.data[email]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	r.data[email] = u
	return nil
}
