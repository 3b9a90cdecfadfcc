package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	inner := fmt.Errorf("agent 'ghost' not found")
	err := NewValidationError("assignment", "bug_report", "primary", inner)

	assert.Contains(t, err.Error(), "assignment")
	assert.Contains(t, err.Error(), "bug_report")
	assert.Contains(t, err.Error(), "primary")
	assert.Contains(t, err.Error(), "ghost")
	assert.ErrorIs(t, err, inner)
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("taskwire.yaml", ErrConfigNotFound)

	assert.Contains(t, err.Error(), "taskwire.yaml")
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}
