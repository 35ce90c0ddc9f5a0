package users

import "time"

// User is a registered account. PasswordHash is empty for accounts created
// through Google sign-in.
type User struct {
	ID           string
	Email        string
	FullName     string
	PictureURL   string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
