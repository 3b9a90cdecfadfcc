package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

func promptTask() *models.Task {
	return &models.Task{
		TaskID:      "t-1",
		Title:       "Fix login redirect loop",
		Description: "Users hitting /login bounce back to /login after the session cookie change.",
		TaskType:    models.TaskTypeBugReport,
		Priority:    models.PriorityHigh,
		SuccessCriteria: []string{
			"login completes in one redirect",
		},
	}
}

func promptStep() *workflow.Step {
	return &workflow.Step{
		Agent:        "debugger",
		Task:         "Isolate the root cause of the redirect loop.",
		OutputFormat: "root cause analysis",
	}
}

func TestBuildStepInput(t *testing.T) {
	b := NewPromptBuilder()
	profile := &config.AgentProfile{
		Role:           "Debugging specialist",
		PreferredModel: "large",
		SystemPrompt:   "You are a debugging specialist.",
	}

	input := b.BuildStepInput("debugger", profile, promptTask(), promptStep(), nil)

	assert.Equal(t, "debugger", input.AgentID)
	assert.Equal(t, "large", input.Model)
	assert.Equal(t, "You are a debugging specialist.", input.SystemPrompt)

	require.Len(t, input.Messages, 1)
	assert.Equal(t, RoleUser, input.Messages[0].Role)

	user := input.Messages[0].Content
	assert.Contains(t, user, "Fix login redirect loop")
	assert.Contains(t, user, "**Type:** bug_report")
	assert.Contains(t, user, "**Priority:** high")
	assert.Contains(t, user, "Users hitting /login bounce back")
	assert.Contains(t, user, "### Success criteria")
	assert.Contains(t, user, "- login completes in one redirect")
	assert.Contains(t, user, "Isolate the root cause of the redirect loop.")
	assert.Contains(t, user, "**Output format:** root cause analysis")
	assert.Contains(t, user, "You are the first agent on this task.")
	assert.Contains(t, user, responseDirective)
}

func TestBuildStepInput_Deterministic(t *testing.T) {
	b := NewPromptBuilder()
	profile := &config.AgentProfile{SystemPrompt: "You are a tester."}
	step := promptStep()
	step.Context = map[string]interface{}{
		"repo":    "web-frontend",
		"branch":  "main",
		"commit":  "abc123",
		"urgency": "high",
	}

	first := b.BuildStepInput("tester", profile, promptTask(), step, nil)
	second := b.BuildStepInput("tester", profile, promptTask(), step, nil)

	// Context keys are sorted, so identical steps fingerprint identically
	// regardless of map iteration order.
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	user := first.Messages[0].Content
	branchIdx := strings.Index(user, "- branch:")
	commitIdx := strings.Index(user, "- commit:")
	repoIdx := strings.Index(user, "- repo:")
	require.True(t, branchIdx > 0 && commitIdx > 0 && repoIdx > 0)
	assert.Less(t, branchIdx, commitIdx)
	assert.Less(t, commitIdx, repoIdx)
}

func TestSystemPromptFor(t *testing.T) {
	t.Run("profile system prompt wins", func(t *testing.T) {
		p := &config.AgentProfile{Role: "QA engineer", SystemPrompt: "custom"}
		assert.Equal(t, "custom", systemPromptFor(p))
	})

	t.Run("role fallback", func(t *testing.T) {
		p := &config.AgentProfile{Role: "QA engineer"}
		got := systemPromptFor(p)
		assert.Contains(t, got, "You are QA engineer.")
	})

	t.Run("generic fallback", func(t *testing.T) {
		assert.Equal(t, genericSystemPrompt, systemPromptFor(nil))
		assert.Equal(t, genericSystemPrompt, systemPromptFor(&config.AgentProfile{}))
	})
}

func TestFormatTaskSection(t *testing.T) {
	t.Run("empty description placeholder", func(t *testing.T) {
		task := promptTask()
		task.Description = "   "
		got := FormatTaskSection(task)
		assert.Contains(t, got, "No description provided.")
	})

	t.Run("deadline included when set", func(t *testing.T) {
		task := promptTask()
		deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		task.Deadline = &deadline
		got := FormatTaskSection(task)
		assert.Contains(t, got, "**Deadline:** 2026-03-01T12:00:00Z")
	})

	t.Run("optional lists omitted when empty", func(t *testing.T) {
		task := promptTask()
		task.SuccessCriteria = nil
		got := FormatTaskSection(task)
		assert.NotContains(t, got, "### Success criteria")
		assert.NotContains(t, got, "### Constraints")
		assert.NotContains(t, got, "### Deliverables")
	})
}

func TestFormatPriorOutputs(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := FormatPriorOutputs(nil)
		assert.Contains(t, got, "No prior agent output is available.")
	})

	t.Run("per-agent blocks in order", func(t *testing.T) {
		got := FormatPriorOutputs([]StepOutput{
			{Agent: "analyst", Result: "requirements listed"},
			{Agent: "coder", Result: "patch attached"},
		})
		analystIdx := strings.Index(got, "### analyst")
		coderIdx := strings.Index(got, "### coder")
		require.True(t, analystIdx > 0 && coderIdx > 0)
		assert.Less(t, analystIdx, coderIdx)
		assert.Contains(t, got, "requirements listed")
		assert.Contains(t, got, "patch attached")
	})

	t.Run("oversized output truncated", func(t *testing.T) {
		huge := strings.Repeat("x", maxPriorOutputChars+500)
		got := FormatPriorOutputs([]StepOutput{{Agent: "coder", Result: huge}})
		assert.Contains(t, got, "[output truncated]")
		assert.Less(t, len(got), maxPriorOutputChars+200)
	})
}
