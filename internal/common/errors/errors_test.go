// internal/common/errors/errors_test.go
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = stderrors.New("ANSWERS_INVALID")

func TestStandardError_UnwrapsCause(t *testing.T) {
	err := NewAnswersInvalidError(fmt.Errorf("no answers: %w", errSentinel))

	assert.True(t, stderrors.Is(err, errSentinel))
	assert.Equal(t, ErrCodeAnswersInvalid, err.Code)
	assert.False(t, err.Retryable)
	assert.Contains(t, err.Error(), "ANSWERS_INVALID: Answer set is missing or malformed")
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name        string
		err         *StandardError
		wantCode    string
		wantRetries int
	}{
		{"retryable load failure", NewAnswersLoadFailedError(stderrors.New("conn reset")), "ANSWERS_LOAD_FAILED", 3},
		{"business error", NewInvalidModeError(nil), "INVALID_MODE", 0},
		{"timeout", NewTimeoutError("elasticsearch", context.DeadlineExceeded), "TIMEOUT", 2},
		{"retryable code marked non-retryable", &StandardError{Code: ErrCodeDatabaseError, Retryable: false}, "DATABASE_ERROR", 0},
		{"unmapped code falls back", &StandardError{Code: "CUSTOM"}, "CUSTOM", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.wantCode, bpmn.Code)
			assert.Equal(t, tt.wantRetries, bpmn.Retries)
			assert.Equal(t, string(tt.err.Code), bpmn.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestConvertToBPMNError_CarriesMetadata(t *testing.T) {
	bpmn := ConvertToBPMNError(NewSessionNotFoundError("sess-1", nil))
	vars := bpmn.ToErrorVariables()

	assert.Equal(t, "sess-1", vars["sessionId"])
	assert.Equal(t, "SESSION_NOT_FOUND", vars["errorCode"])
	assert.Equal(t, false, vars["retryable"])
}

func TestNormalize(t *testing.T) {
	std := NewCacheError(stderrors.New("redis down"))
	assert.Same(t, std, Normalize(fmt.Errorf("wrapped: %w", std)))

	timeout := Normalize(fmt.Errorf("index: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrCodeTimeout, timeout.Code)
	assert.True(t, timeout.Retryable)

	internal := Normalize(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, internal.Code)
	assert.Equal(t, "boom", internal.Details)
	assert.False(t, internal.Retryable)
}

func TestRemainingRetries(t *testing.T) {
	assert.Equal(t, int32(2), remainingRetries(3, 3))
	assert.Equal(t, int32(2), remainingRetries(10, 2))
	assert.Equal(t, int32(0), remainingRetries(1, 3))
	assert.Equal(t, int32(0), remainingRetries(0, 3))
}

func TestGetErrorCategory(t *testing.T) {
	cases := map[ErrorCode]string{
		ErrCodeInvalidMode:        "VALIDATION",
		ErrCodeSessionNotFound:    "LOOKUP",
		ErrCodeAnswersLoadFailed:  "STORAGE",
		ErrCodeCacheError:         "STORAGE",
		ErrCodeArchiveFailed:      "SEARCH",
		ErrCodeNotificationFailed: "NOTIFICATION",
		ErrCodeTimeout:            "TIMEOUT",
		ErrCodeInternal:           "OTHER",
	}
	for code, want := range cases {
		assert.Equal(t, want, GetErrorCategory(code), code)
	}
	require.True(t, IsRetryableErrorCode(ErrCodeArchiveFailed))
	require.False(t, IsRetryableErrorCode(ErrCodeAnswersInvalid))
}
