package resilience

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "explicit transient",
			err:  NewTransientError(errors.New("x"), ""),
			want: true,
		},
		{
			name: "explicit permanent",
			err:  NewPermanentError(errors.New("x"), ""),
			want: false,
		},
		{
			name: "wrapped transient",
			err:  fmt.Errorf("call failed: %w", NewTransientError(errors.New("x"), "")),
			want: true,
		},
		{
			name: "permanent marker wins over transient phrasing",
			err:  NewPermanentError(errors.New("rate limit exceeded"), "rate limit exceeded"),
			want: false,
		},
		{
			name: "open circuit fails fast",
			err:  ErrCircuitOpen,
			want: false,
		},
		{
			name: "context cancellation",
			err:  context.Canceled,
			want: false,
		},
		{
			name: "rate limit phrasing",
			err:  errors.New("upstream: rate limit exceeded"),
			want: true,
		},
		{
			name: "grpc unavailable phrasing",
			err:  errors.New("rpc error: code = Unavailable desc = connection refused"),
			want: true,
		},
		{
			name: "gateway timeout phrasing",
			err:  errors.New("502 bad gateway"),
			want: true,
		},
		{
			name: "unknown error defaults to permanent",
			err:  errors.New("model produced invalid output"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestClassifyStatusCode(t *testing.T) {
	base := errors.New("request failed")

	assert.True(t, IsTransient(ClassifyStatusCode(429, base)))
	assert.True(t, IsTransient(ClassifyStatusCode(500, base)))
	assert.True(t, IsTransient(ClassifyStatusCode(503, base)))
	assert.False(t, IsTransient(ClassifyStatusCode(400, base)))
	assert.False(t, IsTransient(ClassifyStatusCode(401, base)))
	assert.False(t, IsTransient(ClassifyStatusCode(404, base)))

	// Codes below 400 pass the error through untouched.
	assert.Equal(t, base, ClassifyStatusCode(200, base))
}

func TestDegradedError(t *testing.T) {
	inner := errors.New("primary agent unreachable")
	err := &DegradedError{Err: inner, ServedBy: "general", Message: "served by fallback agent"}

	assert.True(t, IsDegraded(err))
	assert.True(t, IsDegraded(fmt.Errorf("step: %w", err)))
	assert.False(t, IsDegraded(inner))
	assert.Equal(t, "served by fallback agent", err.Error())
	assert.ErrorIs(t, err, inner)
}
