// Package errors provides the structured error taxonomy surfaced to MCP callers.
package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents standardized machine-readable error codes.
type ErrorCode string

const (
	ErrCodeRateLimit     ErrorCode = "OPENAI_RATE_LIMIT"
	ErrCodeUpstreamError ErrorCode = "OPENAI_UPSTREAM_ERROR"
	ErrCodeNetworkError  ErrorCode = "OPENAI_NETWORK_ERROR"
	ErrCodeTimeout       ErrorCode = "OPENAI_TIMEOUT"
	ErrCodeInternal      ErrorCode = "INTERNAL_SERVER_ERROR"
)

// McpError is the structured failure returned to the caller. Details is
// either a serializable key-value map or a plain string.
type McpError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *McpError) Error() string {
	return fmt.Sprintf("McpError[%s]: %s", e.Code, e.Message)
}

// JSON renders the error as the payload handed back over the wire.
func (e *McpError) JSON() string {
	data, err := json.Marshal(e)
	if err != nil {
		// Details was unserializable; the code and message always are.
		return fmt.Sprintf(`{"code":%q,"message":%q}`, string(e.Code), e.Message)
	}
	return string(data)
}

// NewRateLimitError creates a retryable rate-limit error from a 429 response.
func NewRateLimitError(status int, errorText string) *McpError {
	return &McpError{
		Code:    ErrCodeRateLimit,
		Message: "OpenAI API rate limit exceeded",
		Details: map[string]interface{}{"status": status, "errorText": errorText},
	}
}

// NewUpstreamError creates a retryable error from a 5xx response.
func NewUpstreamError(status int, errorText string) *McpError {
	return &McpError{
		Code:    ErrCodeUpstreamError,
		Message: "OpenAI API upstream error",
		Details: map[string]interface{}{"status": status, "errorText": errorText},
	}
}

// NewNetworkError creates a retryable network-level error.
func NewNetworkError(message string) *McpError {
	if message == "" {
		message = "Network error while calling OpenAI API"
	}
	return &McpError{
		Code:    ErrCodeNetworkError,
		Message: message,
	}
}

// NewTimeoutError creates a retryable per-attempt deadline error.
func NewTimeoutError() *McpError {
	return &McpError{
		Code:    ErrCodeTimeout,
		Message: "OpenAI API request timed out",
	}
}

// NewInternalError creates a non-retryable internal error.
func NewInternalError(message string, details interface{}) *McpError {
	if message == "" {
		message = "Internal server error"
	}
	return &McpError{
		Code:    ErrCodeInternal,
		Message: message,
		Details: details,
	}
}

// NewStatusError maps a non-2xx upstream status to the matching error kind.
// Statuses outside 429/5xx deliberately map to INTERNAL_SERVER_ERROR, which
// also makes them non-retryable; that is the upstream contract, not a server bug.
func NewStatusError(status int, errorText string) *McpError {
	switch {
	case status == 429:
		return NewRateLimitError(status, errorText)
	case status >= 500:
		return NewUpstreamError(status, errorText)
	default:
		return NewInternalError(
			fmt.Sprintf("OpenAI API returned unexpected status %d", status),
			map[string]interface{}{"status": status, "errorText": errorText},
		)
	}
}

// IsRetryable reports whether an error code is transient and eligible for retry.
func IsRetryable(code ErrorCode) bool {
	switch code {
	case ErrCodeRateLimit, ErrCodeUpstreamError, ErrCodeNetworkError, ErrCodeTimeout:
		return true
	default:
		return false
	}
}
