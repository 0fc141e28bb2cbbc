package repository

import (
	"context"

	"patternlab/internal/model"
)

// RunRepository defines data access for demo run records using SQL only.
// No business logic here, strictly persistence operations.
type RunRepository interface {
	// Create inserts a new run record and returns the stored row
	// (may include values set by the database).
	Create(ctx context.Context, run *model.Run) (*model.Run, error)

	// FindByID returns a run by its ID.
	FindByID(ctx context.Context, id string) (*model.Run, error)

	// List returns a paginated list of runs, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Run], error)

	// Delete removes a run by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
