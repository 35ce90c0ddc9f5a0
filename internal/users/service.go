package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedauth "airesume-backend/internal/shared/auth"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service contains business logic for accounts.
type Service struct {
	Repo UsersRepo
}

// Signup registers a new account and issues a session token.
func (s *Service) Signup(ctx context.Context, email, fullName, password string) (User, string, error) {
	email = normalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if !emailPattern.MatchString(email) {
		return User{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if fullName == "" {
		return User{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(password) < sharedauth.MinPasswordLength {
		return User{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, sharedauth.MinPasswordLength)
	}

	hash, err := sharedauth.HashPassword(password)
	if err != nil {
		return User{}, "", err
	}

	now := time.Now().UTC()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return User{}, "", err
	}

	token, err := sharedauth.SignToken(u.Email, u.FullName)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if u.PasswordHash == "" || !sharedauth.CheckPassword(u.PasswordHash, password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := sharedauth.SignToken(u.Email, u.FullName)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// GoogleLogin upserts the Google profile and issues a session token.
func (s *Service) GoogleLogin(ctx context.Context, email, fullName, pictureURL string) (User, string, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return User{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	u, err := s.Repo.Upsert(ctx, User{
		ID:         uuid.NewString(),
		Email:      email,
		FullName:   strings.TrimSpace(fullName),
		PictureURL: strings.TrimSpace(pictureURL),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return User{}, "", err
	}

	token, err := sharedauth.SignToken(u.Email, u.FullName)
	if err != nil {
		return User{}, "", err
	}
	return u, token, nil
}

// Get returns the account for the given email.
func (s *Service) Get(ctx context.Context, email string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.GetByEmail(ctx, email)
}

// ChangeName updates the display name.
func (s *Service) ChangeName(ctx context.Context, email, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.Repo.UpdateName(ctx, normalizeEmail(email), fullName)
}

// ChangePassword verifies the current password and stores a new one.
func (s *Service) ChangePassword(ctx context.Context, email, current, next string) error {
	email = normalizeEmail(email)

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.PasswordHash == "" || !sharedauth.CheckPassword(u.PasswordHash, current) {
		return ErrInvalidCredentials
	}
	if len(next) < sharedauth.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, sharedauth.MinPasswordLength)
	}

	hash, err := sharedauth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(ctx, email, hash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
