package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements ProjectsRepo using Postgres. Every mutation is a single
// statement keyed on (email, name), so concurrent writers for the same user
// never clobber each other's projects.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new project. A duplicate name for the same user inserts
// nothing and reports ErrConflict.
func (r *PGRepo) Create(ctx context.Context, p Project) error {
	const query = `
INSERT INTO resume_projects (email, name, category, selected_template_id, final, score, modified)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email, name) DO NOTHING`

	final, err := marshalFinal(p.Final)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, p.Email, p.Name, p.Category, p.SelectedTemplateID, final, p.Score, p.Modified)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConflict
	}
	return nil
}

// Upsert inserts the project or, when the name already exists, overwrites
// only the builder document and the modified stamp. Category, template and
// score keep their stored values on resubmit.
func (r *PGRepo) Upsert(ctx context.Context, p Project) error {
	const query = `
INSERT INTO resume_projects (email, name, category, selected_template_id, final, score, modified)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email, name) DO UPDATE SET
    final = EXCLUDED.final,
    modified = EXCLUDED.modified`

	final, err := marshalFinal(p.Final)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, p.Email, p.Name, p.Category, p.SelectedTemplateID, final, p.Score, p.Modified)
	return err
}

// GetByName returns one project by name.
func (r *PGRepo) GetByName(ctx context.Context, email, name string) (Project, error) {
	const query = `
SELECT email, name, category, selected_template_id, final, score, modified
FROM resume_projects
WHERE email = $1 AND name = $2`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email, name))
}

// ListByEmail returns the user's projects newest-first.
func (r *PGRepo) ListByEmail(ctx context.Context, email string) ([]Project, error) {
	const query = `
SELECT email, name, category, selected_template_id, final, score, modified
FROM resume_projects
WHERE email = $1
ORDER BY modified DESC, name ASC`

	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		var final []byte
		if err := rows.Scan(&p.Email, &p.Name, &p.Category, &p.SelectedTemplateID, &final, &p.Score, &p.Modified); err != nil {
			return nil, err
		}
		if err := unmarshalFinal(final, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes one project by name.
func (r *PGRepo) Delete(ctx context.Context, email, name string) error {
	const query = `DELETE FROM resume_projects WHERE email = $1 AND name = $2`
	res, err := r.DB.ExecContext(ctx, query, email, name)
	if err != nil {
		return err
	}
	return mapRowsAffected(res)
}

// SetTemplate updates the selected template for one project.
func (r *PGRepo) SetTemplate(ctx context.Context, email, name, templateID string) error {
	const query = `
UPDATE resume_projects
SET selected_template_id = $3
WHERE email = $1 AND name = $2`
	res, err := r.DB.ExecContext(ctx, query, email, name, templateID)
	if err != nil {
		return err
	}
	return mapRowsAffected(res)
}

// SetScore updates the stored score for one project.
func (r *PGRepo) SetScore(ctx context.Context, email, name string, score int) error {
	const query = `
UPDATE resume_projects
SET score = $3
WHERE email = $1 AND name = $2`
	res, err := r.DB.ExecContext(ctx, query, email, name, score)
	if err != nil {
		return err
	}
	return mapRowsAffected(res)
}

func (r *PGRepo) scanOne(row *sql.Row) (Project, error) {
	var p Project
	var final []byte
	err := row.Scan(&p.Email, &p.Name, &p.Category, &p.SelectedTemplateID, &final, &p.Score, &p.Modified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	if err := unmarshalFinal(final, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}

func marshalFinal(final map[string]any) ([]byte, error) {
	if final == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(final)
}

func unmarshalFinal(raw []byte, p *Project) error {
	if len(raw) == 0 {
		p.Final = map[string]any{}
		return nil
	}
	return json.Unmarshal(raw, &p.Final)
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
