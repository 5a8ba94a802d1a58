// internal/common/camunda/client_test.go
package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"stream-advisor/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{Attempts: 4, BaseDelay: time.Millisecond}, logger.NewNoOpLogger(), "redis connection",
		func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUp(t *testing.T) {
	cause := errors.New("permission denied")
	calls := 0
	err := Retry(context.Background(), RetryConfig{Attempts: 2, BaseDelay: time.Millisecond}, logger.NewNoOpLogger(), "postgres connection",
		func(context.Context) error {
			calls++
			return cause
		})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, calls)
}

func TestRetry_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, RetryConfig{Attempts: 5, BaseDelay: time.Hour}, logger.NewNoOpLogger(), "zeebe client",
		func(context.Context) error { return errors.New("unavailable") })

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(errors.New("rpc error: code = Unavailable")))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(errors.New("permission denied")))
	assert.False(t, IsTransient(nil))
}

func TestMsOr(t *testing.T) {
	assert.Equal(t, 10*time.Second, msOr(0, 10*time.Second))
	assert.Equal(t, 250*time.Millisecond, msOr(250, time.Second))
}
