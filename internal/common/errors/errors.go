// internal/common/errors/errors.go
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeInvalidInput         ErrorCode = "INVALID_INPUT"
	ErrCodeAnswersInvalid       ErrorCode = "ANSWERS_INVALID"
	ErrCodeInvalidMode          ErrorCode = "INVALID_MODE"
	ErrCodeSessionNotFound      ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeContactNotFound      ErrorCode = "CONTACT_NOT_FOUND"
	ErrCodeAnswersLoadFailed    ErrorCode = "ANSWERS_LOAD_FAILED"
	ErrCodeRecommendationFailed ErrorCode = "RECOMMENDATION_FAILED"
	ErrCodeArchiveFailed        ErrorCode = "ARCHIVE_FAILED"
	ErrCodeNotificationFailed   ErrorCode = "NOTIFICATION_FAILED"
	ErrCodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	ErrCodeCacheError           ErrorCode = "CACHE_ERROR"
	ErrCodeTimeout              ErrorCode = "TIMEOUT"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the error shape every worker reports to the error handler.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error { return e.cause }

// WithMetadata attaches a key to the error's metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message string, cause error, retryable bool) *StandardError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// BPMNError is what gets thrown back to the process engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func NewInvalidInputError(cause error) *StandardError {
	return newError(ErrCodeInvalidInput, "Invalid job variables", cause, false)
}

func NewAnswersInvalidError(cause error) *StandardError {
	return newError(ErrCodeAnswersInvalid, "Answer set is missing or malformed", cause, false)
}

func NewInvalidModeError(cause error) *StandardError {
	return newError(ErrCodeInvalidMode, "Questionnaire mode must be SSC or HSC", cause, false)
}

func NewSessionNotFoundError(sessionID string, cause error) *StandardError {
	return newError(ErrCodeSessionNotFound, "Quiz session not found", cause, false).
		WithMetadata("sessionId", sessionID)
}

func NewContactNotFoundError(userID string, cause error) *StandardError {
	return newError(ErrCodeContactNotFound, "Student contact details not found", cause, false).
		WithMetadata("userId", userID)
}

func NewAnswersLoadFailedError(cause error) *StandardError {
	return newError(ErrCodeAnswersLoadFailed, "Loading stored answers failed", cause, true)
}

func NewRecommendationFailedError(cause error) *StandardError {
	return newError(ErrCodeRecommendationFailed, "Stream recommendation failed", cause, false)
}

func NewArchiveFailedError(index string, cause error) *StandardError {
	return newError(ErrCodeArchiveFailed, "Archiving recommendation failed", cause, true).
		WithMetadata("index", index)
}

func NewNotificationFailedError(channel string, cause error) *StandardError {
	return newError(ErrCodeNotificationFailed, "Notification delivery failed", cause, true).
		WithMetadata("channel", channel)
}

func NewDatabaseError(cause error) *StandardError {
	return newError(ErrCodeDatabaseError, "Database error", cause, true)
}

func NewCacheError(cause error) *StandardError {
	return newError(ErrCodeCacheError, "Cache error", cause, true)
}

func NewTimeoutError(service string, cause error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), cause, true)
}

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidInput:         "INVALID_INPUT",
	ErrCodeAnswersInvalid:       "ANSWERS_INVALID",
	ErrCodeInvalidMode:          "INVALID_MODE",
	ErrCodeSessionNotFound:      "SESSION_NOT_FOUND",
	ErrCodeContactNotFound:      "CONTACT_NOT_FOUND",
	ErrCodeAnswersLoadFailed:    "ANSWERS_LOAD_FAILED",
	ErrCodeRecommendationFailed: "RECOMMENDATION_FAILED",
	ErrCodeArchiveFailed:        "ARCHIVE_FAILED",
	ErrCodeNotificationFailed:   "NOTIFICATION_FAILED",
	ErrCodeDatabaseError:        "DATABASE_ERROR",
	ErrCodeCacheError:           "CACHE_ERROR",
	ErrCodeTimeout:              "TIMEOUT",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeAnswersLoadFailed,
		ErrCodeArchiveFailed,
		ErrCodeNotificationFailed,
		ErrCodeDatabaseError:
		return 3
	case ErrCodeTimeout,
		ErrCodeCacheError:
		return 2
	default:
		return 0
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, ok := BPMNErrorMapping[stdErr.Code]
	if !ok {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// Normalize turns any error into a StandardError. Deadline overruns become
// retryable timeouts; anything unknown is an internal error.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError("worker", err)
	}
	return newError(ErrCodeInternal, "Unexpected error", err, false)
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	s := string(code)
	switch {
	case strings.Contains(s, "INVALID"):
		return "VALIDATION"
	case strings.Contains(s, "NOT_FOUND"):
		return "LOOKUP"
	case strings.Contains(s, "DATABASE") || strings.Contains(s, "ANSWERS_LOAD") || strings.Contains(s, "CACHE"):
		return "STORAGE"
	case strings.Contains(s, "ARCHIVE"):
		return "SEARCH"
	case strings.Contains(s, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(s, "TIMEOUT"):
		return "TIMEOUT"
	default:
		return "OTHER"
	}
}
