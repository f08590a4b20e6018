package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskdeck/internal/platform/postgres"
	"github.com/phrazzld/taskdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: "tasks_priority_check"}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "no rows maps to not found",
			err:      sql.ErrNoRows,
			sentinel: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows maps to not found",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			sentinel: store.ErrNotFound,
		},
		{
			name:     "check violation maps to invalid entity",
			err:      pgError("23514"),
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "not null violation maps to invalid entity",
			err:      pgError("23502"),
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "invalid text representation maps to invalid entity",
			err:      pgError("22P02"),
			sentinel: store.ErrInvalidEntity,
		},
		{
			name:     "unique violation maps to invalid entity",
			err:      pgError("23505"),
			sentinel: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := postgres.MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.sentinel)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := errors.New("connection refused")
		assert.Same(t, original, postgres.MapError(original))
	})
}

func TestIsCheckConstraintViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsCheckConstraintViolation(pgError("23514")))
	assert.False(t, postgres.IsCheckConstraintViolation(pgError("23505")))
	assert.False(t, postgres.IsCheckConstraintViolation(errors.New("boom")))
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsNotFoundError(sql.ErrNoRows))
	assert.True(t, postgres.IsNotFoundError(store.ErrTaskNotFound))
	assert.False(t, postgres.IsNotFoundError(errors.New("boom")))
}
