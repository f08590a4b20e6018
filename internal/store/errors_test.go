package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/taskdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic not found", store.ErrNotFound, true},
		{"task not found", store.ErrTaskNotFound, true},
		{"wrapped task not found", fmt.Errorf("lookup failed: %w", store.ErrTaskNotFound), true},
		{"invalid entity", store.ErrInvalidEntity, false},
		{"unrelated error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, store.IsNotFoundError(tt.err))
		})
	}
}

func TestErrTaskNotFoundWrapsErrNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(store.ErrTaskNotFound, store.ErrNotFound))
}
