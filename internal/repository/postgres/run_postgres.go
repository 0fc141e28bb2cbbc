package postgres

import (
	"context"
	"database/sql"

	"patternlab/internal/model"
	"patternlab/internal/repository"
)

// RunPostgres is a PostgreSQL implementation of repository.RunRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RunPostgres struct {
	db *sql.DB
}

// NewRunPostgres creates a new RunPostgres repository.
func NewRunPostgres(db *sql.DB) *RunPostgres {
	return &RunPostgres{db: db}
}

var _ repository.RunRepository = (*RunPostgres)(nil)

// Create inserts a new run row and returns the stored record.
func (r *RunPostgres) Create(ctx context.Context, run *model.Run) (*model.Run, error) {
	const q = `
		INSERT INTO runs (id, pattern, category, steps, trace_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, pattern, category, steps, trace_path, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		run.ID,
		run.Pattern,
		run.Category,
		run.Steps,
		run.TracePath,
		run.CreatedAt,
	)
	var out model.Run
	if err := row.Scan(
		&out.ID,
		&out.Pattern,
		&out.Category,
		&out.Steps,
		&out.TracePath,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single run by its ID.
func (r *RunPostgres) FindByID(ctx context.Context, id string) (*model.Run, error) {
	const q = `
		SELECT id, pattern, category, steps, trace_path, created_at
		FROM runs
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var run model.Run
	if err := row.Scan(
		&run.ID,
		&run.Pattern,
		&run.Category,
		&run.Steps,
		&run.TracePath,
		&run.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns runs using LIMIT/OFFSET pagination and a total count.
func (r *RunPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Run], error) {
	const qCount = `SELECT COUNT(*) FROM runs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, pattern, category, steps, trace_path, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Run, 0)
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(
			&run.ID,
			&run.Pattern,
			&run.Category,
			&run.Steps,
			&run.TracePath,
			&run.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Run]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a run by ID. It does not return an error if the row does not exist.
func (r *RunPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM runs WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
