package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements UsersRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new user.
func (r *PGRepo) Create(ctx context.Context, u User) error {
	const query = `
INSERT INTO users (id, email, full_name, password_hash, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctx, query, u.ID, u.Email, u.FullName, u.PasswordHash, u.PictureURL, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail returns the user with the given email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, full_name, password_hash, picture_url, created_at, updated_at
FROM users
WHERE email = $1`

	var u User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.PictureURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// Upsert creates the user or refreshes name and picture on an existing one.
// The password hash is never overwritten here.
func (r *PGRepo) Upsert(ctx context.Context, u User) (User, error) {
	const query = `
INSERT INTO users (id, email, full_name, password_hash, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email) DO UPDATE SET
    full_name = CASE WHEN EXCLUDED.full_name <> '' THEN EXCLUDED.full_name ELSE users.full_name END,
    picture_url = CASE WHEN EXCLUDED.picture_url <> '' THEN EXCLUDED.picture_url ELSE users.picture_url END,
    updated_at = now()
RETURNING id, email, full_name, password_hash, picture_url, created_at, updated_at`

	var out User
	err := r.DB.QueryRowContext(ctx, query, u.ID, u.Email, u.FullName, u.PasswordHash, u.PictureURL, u.CreatedAt, u.UpdatedAt).Scan(
		&out.ID, &out.Email, &out.FullName, &out.PasswordHash, &out.PictureURL, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	return out, nil
}

// UpdateName changes the display name.
func (r *PGRepo) UpdateName(ctx context.Context, email, fullName string) error {
	const query = `UPDATE users SET full_name = $2, updated_at = now() WHERE email = $1`
	res, err := r.DB.ExecContext(ctx, query, email, fullName)
	if err != nil {
		return err
	}
	return mapRowsAffected(res)
}

// UpdatePassword replaces the stored password hash.
func (r *PGRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = now() WHERE email = $1`
	res, err := r.DB.ExecContext(ctx, query, email, passwordHash)
	if err != nil {
		return err
	}
	return mapRowsAffected(res)
}

func mapRowsAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
