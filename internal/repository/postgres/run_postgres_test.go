package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"patternlab/internal/model"
	"patternlab/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runColumns = []string{"id", "pattern", "category", "steps", "trace_path", "created_at"}

func TestRunPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRunPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	run := &model.Run{
		ID:        "test-uuid",
		Pattern:   "state",
		Category:  "behavioral",
		Steps:     7,
		TracePath: "runs/test-uuid.txt",
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(runColumns).
		AddRow(run.ID, run.Pattern, run.Category, run.Steps, run.TracePath, run.CreatedAt)

	mock.ExpectQuery("INSERT INTO runs").
		WithArgs(run.ID, run.Pattern, run.Category, run.Steps, run.TracePath, run.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, run)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, run.ID, result.ID)
	assert.Equal(t, run.Pattern, result.Pattern)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRunPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(runColumns).
			AddRow("run-1", "decorator", "structural", 3, "runs/run-1.txt", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM runs WHERE id = ?").
			WithArgs("run-1").
			WillReturnRows(rows)

		run, err := repo.FindByID(ctx, "run-1")

		assert.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, "decorator", run.Pattern)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM runs WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		run, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, run)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRunPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM runs").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(runColumns).
			AddRow("run-2", "observer", "behavioral", 6, "runs/run-2.txt", time.Now()).
			AddRow("run-1", "state", "behavioral", 7, "runs/run-1.txt", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM runs ORDER BY created_at DESC").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "observer", res.Items[0].Pattern)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM runs").
			WillReturnError(errors.New("count failed"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRunPostgres(db)
	ctx := context.Background()

	t.Run("deletes existing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM runs WHERE id = ?").
			WithArgs("run-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "run-1"))
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM runs WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM runs WHERE id = ?").
			WithArgs("run-1").
			WillReturnError(errors.New("exec failed"))

		assert.Error(t, repo.Delete(ctx, "run-1"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
