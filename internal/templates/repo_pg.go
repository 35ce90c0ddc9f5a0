package templates

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements TemplatesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new template. Unique violations on the name or index
// surface as ErrConflict.
func (r *PGRepo) Create(ctx context.Context, t Template) error {
	const query = `
INSERT INTO templates (id, name, description, category, template_index, thumbnail_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctx, query, t.ID, t.Name, t.Description, t.Category, t.TemplateIndex, t.ThumbnailKey, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByIndex returns the template at the given position.
func (r *PGRepo) GetByIndex(ctx context.Context, index int) (Template, error) {
	const query = `
SELECT id, name, description, category, template_index, thumbnail_key, created_at, updated_at
FROM templates
WHERE template_index = $1`

	var t Template
	err := r.DB.QueryRowContext(ctx, query, index).Scan(
		&t.ID, &t.Name, &t.Description, &t.Category, &t.TemplateIndex, &t.ThumbnailKey, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return t, nil
}

// List returns all templates ordered by index.
func (r *PGRepo) List(ctx context.Context) ([]Template, error) {
	const query = `
SELECT id, name, description, category, template_index, thumbnail_key, created_at, updated_at
FROM templates
ORDER BY template_index ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Template, 0)
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.TemplateIndex, &t.ThumbnailKey, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SetThumbnail stores the thumbnail key for a template.
func (r *PGRepo) SetThumbnail(ctx context.Context, id, thumbnailKey string) error {
	const query = `
UPDATE templates SET thumbnail_key = $2, updated_at = now() WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id, thumbnailKey)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a template and returns the removed record.
func (r *PGRepo) Delete(ctx context.Context, id string) (Template, error) {
	const query = `
DELETE FROM templates
WHERE id = $1
RETURNING id, name, description, category, template_index, thumbnail_key, created_at, updated_at`

	var t Template
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Category, &t.TemplateIndex, &t.ThumbnailKey, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		return Template{}, err
	}
	return t, nil
}

// isUniqueViolation matches Postgres unique_violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlmock and other fakes never produce a PgError.
	return err != nil && strings.Contains(err.Error(), "23505")
}
