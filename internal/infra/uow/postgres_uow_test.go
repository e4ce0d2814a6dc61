//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure is retryable",
			err:  &pgconn.PgError{Code: pgErrCodeSerializationFailure},
			want: true,
		},
		{
			name: "deadlock is retryable",
			err:  &pgconn.PgError{Code: pgErrCodeDeadlockDetected},
			want: true,
		},
		{
			name: "wrapped serialization failure is still retryable",
			err:  fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgErrCodeSerializationFailure}),
			want: true,
		},
		{
			name: "unique violation is not retryable",
			err:  &pgconn.PgError{Code: "23505"},
			want: false,
		},
		{
			name: "plain error is not retryable",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil is not retryable",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	t.Parallel()

	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3), "retry budget exhausted")
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3), "non-retryable error")
}

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for attempt := range 4 {
		floor := time.Duration(1<<attempt) * base
		ceiling := floor + floor/5

		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor, "attempt %d", attempt)
		assert.LessOrEqual(t, got, ceiling, "attempt %d", attempt)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	t.Parallel()

	assert.Zero(t, cryptoRandInt63n(0))
	assert.Zero(t, cryptoRandInt63n(-5))

	for range 100 {
		v := cryptoRandInt63n(20)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(20))
	}
}
