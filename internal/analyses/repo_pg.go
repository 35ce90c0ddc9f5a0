package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PGRepo implements RunsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append stores a new run. The string lists are stored as JSONB.
func (r *PGRepo) Append(ctx context.Context, run Run) error {
	const query = `
INSERT INTO analysis_runs (id, email, resume_name, job_role, score, strengths, improvements, grammar_fixes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	strengths, err := marshalList(run.Strengths)
	if err != nil {
		return err
	}
	improvements, err := marshalList(run.Improvements)
	if err != nil {
		return err
	}
	grammarFixes, err := marshalList(run.GrammarFixes)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		run.ID,
		run.Email,
		run.ResumeName,
		run.JobRole,
		run.Score,
		strengths,
		improvements,
		grammarFixes,
		NormalizeDate(run.Date),
	)
	return err
}

// ListByEmail returns the user's runs newest-first.
func (r *PGRepo) ListByEmail(ctx context.Context, email string) ([]Run, error) {
	const query = `
SELECT id, email, resume_name, job_role, score, strengths, improvements, grammar_fixes, created_at
FROM analysis_runs
WHERE email = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		var run Run
		var strengths, improvements, grammarFixes []byte
		if err := rows.Scan(&run.ID, &run.Email, &run.ResumeName, &run.JobRole, &run.Score, &strengths, &improvements, &grammarFixes, &run.Date); err != nil {
			return nil, err
		}
		if run.Strengths, err = unmarshalList(strengths); err != nil {
			return nil, err
		}
		if run.Improvements, err = unmarshalList(improvements); err != nil {
			return nil, err
		}
		if run.GrammarFixes, err = unmarshalList(grammarFixes); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Delete removes the run matching all four fields exactly. The stored
// timestamp is compared at the same microsecond precision it was written at.
func (r *PGRepo) Delete(ctx context.Context, email, resumeName, jobRole string, date time.Time) error {
	const query = `
DELETE FROM analysis_runs
WHERE email = $1 AND resume_name = $2 AND job_role = $3 AND created_at = $4`

	res, err := r.DB.ExecContext(ctx, query, email, resumeName, jobRole, NormalizeDate(date))
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

func marshalList(list []string) ([]byte, error) {
	if list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(list)
}

func unmarshalList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
