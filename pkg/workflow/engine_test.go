package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()

	templates := map[string]*config.WorkflowTemplate{
		"bug_fix_workflow": {
			Name: "Bug Fix",
			Mode: config.ModeStaged,
			Steps: []config.StepTemplate{
				{Agent: "bug", Task: "Reproduce and diagnose the reported bug"},
				{Agent: "coder", Task: "Implement a fix", Dependencies: []string{"bug"}},
				{Agent: "tester", Task: "Verify the fix", Dependencies: []string{"coder"}, TimeoutSeconds: 120},
			},
		},
		"investigation": {
			Name:            "Investigation",
			Mode:            config.ModeStaged,
			AllowReordering: true,
			Steps: []config.StepTemplate{
				{Agent: "researcher", Task: "Gather context"},
				{Agent: "coder", Task: "Inspect the code"},
				{Agent: "general", Task: "Synthesize findings", Dependencies: []string{"researcher", "coder"}},
			},
		},
	}

	return NewEngine(config.NewTemplateRegistry(templates))
}

func TestEngine_FromTemplate(t *testing.T) {
	engine := testEngine(t)

	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", map[string]interface{}{
		"technologies": []string{"go"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, exec.ID)
	assert.Equal(t, "task-1", exec.TaskID)
	assert.Equal(t, "bug_fix_workflow", exec.WorkflowID)
	assert.Equal(t, string(config.ModeStaged), exec.Mode)
	assert.Equal(t, ExecutionPending, exec.Status)
	require.Len(t, exec.Steps, 3)

	// Template defaults are applied during materialization.
	assert.Equal(t, config.DefaultStepTimeoutSeconds, exec.Steps[0].TimeoutSeconds)
	assert.Equal(t, 120, exec.Steps[2].TimeoutSeconds)
	assert.Equal(t, models.PriorityMedium, exec.Steps[0].Priority)
	assert.Equal(t, []string{"go"}, exec.Steps[0].Context["technologies"])
	assert.Equal(t, StepPending, exec.Steps[0].Status)
}

func TestEngine_FromTemplate_UnknownTemplate(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.FromTemplate("task-1", "nope", nil)
	assert.ErrorIs(t, err, config.ErrTemplateNotFound)
}

func TestEngine_CreateExecution_RejectsCycles(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.CreateExecution("task-1", "dynamic", config.ModeStaged, []*Step{
		stepWithDeps("a", "b"),
		stepWithDeps("b", "a"),
	})
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestEngine_CreateExecution_RejectsEmpty(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.CreateExecution("task-1", "dynamic", config.ModeStaged, nil)
	assert.Error(t, err)
}

func TestExecution_StatusDerivation(t *testing.T) {
	engine := testEngine(t)
	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
	require.NoError(t, err)

	assert.Equal(t, ExecutionPending, exec.CurrentStatus())

	require.NoError(t, exec.UpdateStepStatus("bug", StepRunning, StepUpdate{}))
	assert.Equal(t, ExecutionRunning, exec.CurrentStatus())
	assert.NotNil(t, exec.StartedAt)

	require.NoError(t, exec.UpdateStepStatus("bug", StepCompleted, StepUpdate{Result: "diagnosed"}))
	require.NoError(t, exec.UpdateStepStatus("coder", StepCompleted, StepUpdate{Result: "patched"}))
	assert.Equal(t, ExecutionRunning, exec.CurrentStatus(), "one step still pending")

	require.NoError(t, exec.UpdateStepStatus("tester", StepCompleted, StepUpdate{Result: "verified"}))
	assert.Equal(t, ExecutionCompleted, exec.CurrentStatus())
	assert.NotNil(t, exec.CompletedAt)
	assert.Equal(t, 100, exec.Progress())
}

func TestExecution_AnyFailedStepFailsExecution(t *testing.T) {
	engine := testEngine(t)
	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
	require.NoError(t, err)

	require.NoError(t, exec.UpdateStepStatus("bug", StepCompleted, StepUpdate{Result: "diagnosed"}))
	require.NoError(t, exec.UpdateStepStatus("coder", StepFailed, StepUpdate{Error: "agent exhausted retries"}))

	assert.Equal(t, ExecutionFailed, exec.CurrentStatus())

	failed := exec.FailedSteps()
	require.Len(t, failed, 1)
	assert.Equal(t, "coder", failed[0].Agent)
}

func TestExecution_UpdateUnknownStep(t *testing.T) {
	engine := testEngine(t)
	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
	require.NoError(t, err)

	err = exec.UpdateStepStatus("ghost", StepRunning, StepUpdate{})
	var unknownErr *UnknownStepError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestExecution_ReadySteps(t *testing.T) {
	engine := testEngine(t)
	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
	require.NoError(t, err)

	ready := exec.ReadySteps()
	require.Len(t, ready, 1)
	assert.Equal(t, "bug", ready[0].Agent)

	require.NoError(t, exec.UpdateStepStatus("bug", StepCompleted, StepUpdate{}))

	ready = exec.ReadySteps()
	require.Len(t, ready, 1)
	assert.Equal(t, "coder", ready[0].Agent, "tester still blocked on coder")
}

func TestEngine_ReorderSteps(t *testing.T) {
	engine := testEngine(t)

	t.Run("refused when template does not opt in", func(t *testing.T) {
		exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
		require.NoError(t, err)

		err = engine.ReorderSteps(exec, []string{"tester", "coder", "bug"})
		assert.ErrorIs(t, err, ErrReorderNotAllowed)
	})

	t.Run("refused for dynamic executions", func(t *testing.T) {
		exec, err := engine.CreateExecution("task-1", "dynamic", config.ModeStaged, []*Step{
			stepWithDeps("coder"),
			stepWithDeps("tester"),
		})
		require.NoError(t, err)

		err = engine.ReorderSteps(exec, []string{"tester", "coder"})
		assert.ErrorIs(t, err, ErrReorderNotAllowed)
	})

	t.Run("refused when order breaks dependencies", func(t *testing.T) {
		exec, err := engine.FromTemplate("task-1", "investigation", nil)
		require.NoError(t, err)

		err = engine.ReorderSteps(exec, []string{"general", "researcher", "coder"})
		assert.ErrorIs(t, err, ErrReorderBreaksDependencies)
	})

	t.Run("allowed order applied", func(t *testing.T) {
		exec, err := engine.FromTemplate("task-1", "investigation", nil)
		require.NoError(t, err)

		require.NoError(t, engine.ReorderSteps(exec, []string{"coder", "researcher", "general"}))
		assert.Equal(t, "coder", exec.Steps[0].Agent)
		assert.Equal(t, "researcher", exec.Steps[1].Agent)
		assert.Equal(t, "general", exec.Steps[2].Agent)
	})

	t.Run("unknown agent in order", func(t *testing.T) {
		exec, err := engine.FromTemplate("task-1", "investigation", nil)
		require.NoError(t, err)

		err = engine.ReorderSteps(exec, []string{"coder", "researcher", "ghost"})
		var unknownErr *UnknownStepError
		assert.ErrorAs(t, err, &unknownErr)
	})
}

func TestExecution_ExportReport(t *testing.T) {
	engine := testEngine(t)
	exec, err := engine.FromTemplate("task-1", "bug_fix_workflow", nil)
	require.NoError(t, err)

	require.NoError(t, exec.UpdateStepStatus("bug", StepRunning, StepUpdate{}))
	require.NoError(t, exec.UpdateStepStatus("bug", StepCompleted, StepUpdate{Result: "root cause found", CacheHit: true}))
	require.NoError(t, exec.UpdateStepStatus("coder", StepCompleted, StepUpdate{
		Result:   "patched by fallback",
		Degraded: true,
		ServedBy: "general",
	}))
	require.NoError(t, exec.UpdateStepStatus("tester", StepCompleted, StepUpdate{Result: "all green"}))
	exec.SetSummary("bug fixed and verified")

	report := exec.ExportReport()

	assert.Equal(t, exec.ID, report.ExecutionID)
	assert.Equal(t, ExecutionCompleted, report.Status)
	assert.Equal(t, "bug fixed and verified", report.Summary)
	assert.Equal(t, 1, report.CacheHits)
	assert.True(t, report.Degraded)
	require.Len(t, report.Steps, 3)
	assert.Equal(t, "general", report.Steps[1].ServedBy)
}
