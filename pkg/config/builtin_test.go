package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfigSingleton(t *testing.T) {
	first := GetBuiltinConfig()
	second := GetBuiltinConfig()
	assert.Same(t, first, second)
}

func TestBuiltinConfigPassesValidation(t *testing.T) {
	builtin := GetBuiltinConfig()

	cfg := &Config{
		Defaults:         &Defaults{TaskType: builtin.DefaultTaskType, Priority: builtin.DefaultPriority},
		AgentRegistry:    NewAgentRegistry(builtin.Agents),
		Assignments:      NewAssignmentMap(builtin.Assignments),
		TemplateRegistry: NewTemplateRegistry(builtin.Templates),
	}

	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestBuiltinAssignmentsCoverTaskTypes(t *testing.T) {
	builtin := GetBuiltinConfig()

	taskTypes := []string{
		"code_review", "bug_report", "feature_request", "documentation",
		"deployment", "investigation", "calendar_event", "general",
	}
	for _, taskType := range taskTypes {
		assignment, ok := builtin.Assignments[taskType]
		require.True(t, ok, "no assignment for task type %s", taskType)
		assert.NotEmpty(t, assignment.Primary)
		assert.NotEmpty(t, assignment.Reason)
	}
}

func TestBuiltinTemplatesCoverRoutedWorkflows(t *testing.T) {
	builtin := GetBuiltinConfig()

	// Router target templates must ship built in
	for _, id := range []string{"emergency_fix", "bug_fix_workflow", "feature_development", "code_review"} {
		tmpl, ok := builtin.Templates[id]
		require.True(t, ok, "missing built-in template %s", id)
		assert.NotEmpty(t, tmpl.Steps)
	}
}

func TestBuiltinInvestigationAllowsReordering(t *testing.T) {
	builtin := GetBuiltinConfig()

	investigation, ok := builtin.Templates["investigation"]
	require.True(t, ok)
	assert.True(t, investigation.AllowReordering)

	// Everything else keeps the order it declares
	for id, tmpl := range builtin.Templates {
		if id == "investigation" {
			continue
		}
		assert.False(t, tmpl.AllowReordering, "template %s should not allow reordering", id)
	}
}
