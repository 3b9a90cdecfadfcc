package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TW_TEST_HOST", "db.example.com")
	t.Setenv("TW_TEST_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "host: {{.TW_TEST_HOST}}",
			expected: "host: db.example.com",
		},
		{
			name:     "multiple variables",
			input:    "dsn: {{.TW_TEST_HOST}}:{{.TW_TEST_PORT}}",
			expected: "dsn: db.example.com:5432",
		},
		{
			name:     "unset variable expands to empty",
			input:    "key: {{.TW_TEST_UNSET_VARIABLE}}",
			expected: "key: ",
		},
		{
			name:     "no variables passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
		{
			name:     "malformed template passes through unchanged",
			input:    "broken: {{.TW_TEST_HOST",
			expected: "broken: {{.TW_TEST_HOST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestExpandEnvValueWithEquals(t *testing.T) {
	// Values containing '=' must survive the environ split
	t.Setenv("TW_TEST_EQ", "a=b=c")

	result := ExpandEnv([]byte("{{.TW_TEST_EQ}}"))
	assert.Equal(t, "a=b=c", string(result))
}
