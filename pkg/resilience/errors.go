// Package resilience provides the failure-handling primitives used around
// agent invocations and outbound calls: error classification, exponential
// backoff with full jitter, and per-target circuit breakers.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrCircuitOpen is returned when a call is rejected because the target's
// circuit breaker is open. It is deliberately non-transient: an open breaker
// should fail fast into the fallback chain, not burn retry budget.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// TransientError marks a failure worth retrying (rate limits, timeouts,
// connection resets).
type TransientError struct {
	Err     error
	Message string
}

func (e *TransientError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("transient error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as retryable with an operator-facing message.
func NewTransientError(err error, message string) *TransientError {
	return &TransientError{Err: err, Message: message}
}

// PermanentError marks a failure that retrying cannot fix (bad credentials,
// malformed request, nonexistent model).
type PermanentError struct {
	Err     error
	Message string
}

func (e *PermanentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("permanent error: %v", e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// NewPermanentError wraps err as non-retryable.
func NewPermanentError(err error, message string) *PermanentError {
	return &PermanentError{Err: err, Message: message}
}

// DegradedError marks a result produced by a fallback agent rather than the
// assigned one. The execution succeeded but with reduced fidelity; the step
// is recorded as degraded.
type DegradedError struct {
	Err      error
	ServedBy string
	Message  string
}

func (e *DegradedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("degraded: %v", e.Err)
}

func (e *DegradedError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is worth retrying. Explicit markers win;
// otherwise network errors and well-known upstream failure phrases count as
// transient. Unclassified errors default to permanent so a broken request is
// never retried forever.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var transient *TransientError
	if errors.As(err, &transient) {
		return true
	}
	var permanent *PermanentError
	if errors.As(err, &permanent) {
		return false
	}
	if errors.Is(err, ErrCircuitOpen) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Cancellation propagates; the retry loop stops on ctx.Done anyway.
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return hasTransientPhrase(err.Error())
}

// IsPermanent reports whether err is explicitly non-retryable.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	var permanent *PermanentError
	return errors.As(err, &permanent)
}

// IsDegraded reports whether err carries a fallback-served marker.
func IsDegraded(err error) bool {
	if err == nil {
		return false
	}
	var degraded *DegradedError
	return errors.As(err, &degraded)
}

// transientPhrases are matched case-insensitively against error text from
// upstreams that do not return typed errors (gRPC status strings, HTTP
// client errors surfaced as plain text).
var transientPhrases = []string{
	"rate limit",
	"too many requests",
	"resource exhausted",
	"unavailable",
	"bad gateway",
	"gateway timeout",
	"internal server error",
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"timed out",
	"temporarily",
	"try again",
	"eof",
}

func hasTransientPhrase(msg string) bool {
	lower := strings.ToLower(msg)
	for _, phrase := range transientPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ClassifyStatusCode converts an HTTP-style status code into a typed error.
// 429 and 5xx are transient; other 4xx are permanent. Codes below 400 return
// err unchanged.
func ClassifyStatusCode(statusCode int, err error) error {
	switch {
	case statusCode == 429 || statusCode >= 500:
		return NewTransientError(err, fmt.Sprintf("upstream returned %d, retrying", statusCode))
	case statusCode >= 400:
		return NewPermanentError(err, fmt.Sprintf("upstream returned %d", statusCode))
	default:
		return err
	}
}
