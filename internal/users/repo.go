package users

import "context"

// UsersRepo defines persistence operations for accounts.
type UsersRepo interface {
	// Create inserts a new user and reports ErrEmailTaken on a duplicate
	// email.
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	// Upsert creates the user or refreshes name and picture on an existing
	// one, leaving the password hash alone. Used by Google sign-in.
	Upsert(ctx context.Context, u User) (User, error)
	UpdateName(ctx context.Context, email, fullName string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
