package router

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Keywords:         config.DefaultKeywordConfig(),
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		Assignments:      config.NewAssignmentMap(builtin.Assignments),
		TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
	}
	return NewRouter(cfg)
}

func simpleTask(taskType models.TaskType, title, description string) *models.Task {
	return &models.Task{
		TaskID:      "task-1",
		Title:       title,
		Description: description,
		TaskType:    taskType,
		Priority:    models.PriorityMedium,
		Status:      models.StatusPending,
	}
}

func TestAnalyzeIntentFromTaskType(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		taskType models.TaskType
		intent   Intent
	}{
		{models.TaskTypeBugReport, IntentBugFixing},
		{models.TaskTypeFeatureRequest, IntentCodeDevelopment},
		{models.TaskTypeCodeReview, IntentCodeReview},
		{models.TaskTypeDocumentation, IntentDocumentation},
		{models.TaskTypeDeployment, IntentDeployment},
		{models.TaskTypeInvestigation, IntentInvestigation},
		{models.TaskTypeCalendarEvent, IntentScheduling},
		{models.TaskTypeGeneral, IntentGeneralQuery},
	}
	for _, tc := range cases {
		analysis := r.Analyze(simpleTask(tc.taskType, "subject", "body"))
		assert.Equal(t, tc.intent, analysis.Intent, "task type %s", tc.taskType)
	}
}

func TestAnalyzeEntities(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeBugReport, "Crash in pkg/api/server.go",
		`The handler panics, see INFRA-142. The log says "nil pointer dereference" on startup.`)

	analysis := r.Analyze(task)
	assert.Contains(t, analysis.Entities, "pkg/api/server.go")
	assert.Contains(t, analysis.Entities, "INFRA-142")
	assert.Contains(t, analysis.Entities, "nil pointer dereference")
}

func TestAnalyzeTechnologiesAndUrgency(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeBugReport, "Production down",
		"The postgres pod in kubernetes is crash-looping. This is urgent, fix immediately.")

	analysis := r.Analyze(task)
	assert.Contains(t, analysis.Technologies, "postgres")
	assert.Contains(t, analysis.Technologies, "kubernetes")
	assert.Contains(t, analysis.UrgencyHints, "urgent")
	assert.Contains(t, analysis.UrgencyHints, "production down")
}

func TestAnalyzeTechnologyWordBoundary(t *testing.T) {
	r := newTestRouter(t)

	// "go" inside "golang" or "cargo" must not match on its own; "go" as a
	// word must.
	analysis := r.Analyze(simpleTask(models.TaskTypeGeneral, "cargo build broken", "the cargo pipeline fails"))
	assert.NotContains(t, analysis.Technologies, "go")

	analysis = r.Analyze(simpleTask(models.TaskTypeGeneral, "go service", "the go service leaks memory"))
	assert.Contains(t, analysis.Technologies, "go")
}

func TestAnalyzeComplexity(t *testing.T) {
	r := newTestRouter(t)

	t.Run("short plain request is low", func(t *testing.T) {
		analysis := r.Analyze(simpleTask(models.TaskTypeGeneral, "question", "what is the deploy cadence?"))
		assert.Equal(t, ComplexityLow, analysis.Complexity)
	})

	t.Run("long body with lists is medium or above", func(t *testing.T) {
		task := simpleTask(models.TaskTypeFeatureRequest, "big feature", strings.Repeat("details ", 80))
		task.SuccessCriteria = []string{"a", "b"}
		task.Deliverables = []string{"c"}
		analysis := r.Analyze(task)
		assert.Equal(t, ComplexityMedium, analysis.Complexity)
	})

	t.Run("every signal firing is high", func(t *testing.T) {
		task := simpleTask(models.TaskTypeFeatureRequest, "big feature",
			strings.Repeat("kubernetes docker postgres redis kafka ", 70))
		task.Dependencies = []string{"a", "b", "c"}
		task.SuccessCriteria = []string{"d", "e"}
		task.Constraints = []string{"f"}
		task.Deliverables = []string{"g"}
		task.EmailMetadata = &models.EmailMetadata{
			Attachments: []models.Attachment{{Filename: "design.pdf"}},
		}
		analysis := r.Analyze(task)
		assert.Equal(t, ComplexityHigh, analysis.Complexity)
	})
}

func TestRouteBugReportUsesBugFixWorkflow(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeBugReport, "login broken", "users cannot log in")
	plan, err := r.Route(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, "bug_fix_workflow", plan.RoutingDecision.WorkflowType)
	assert.Equal(t, "bug", plan.RoutingDecision.PrimaryAgents[0])
	assert.Equal(t, string(config.ModeStaged), plan.Mode)
	assert.NotEmpty(t, plan.RoutingDecision.Reasoning)

	// Steps come from the template: bug → coder → tester.
	require.Len(t, plan.ExecutionSteps, 3)
	assert.Equal(t, "bug", plan.ExecutionSteps[0].Agent)
	assert.Equal(t, []string{"coder"}, plan.ExecutionSteps[1].Dependencies)
}

func TestRouteEmergencyOverridesWorkflow(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeDocumentation, "update readme", "please update the readme")
	plan, err := r.Route(context.Background(), task, &RouteContext{Emergency: true})
	require.NoError(t, err)

	assert.Equal(t, "emergency_fix", plan.RoutingDecision.WorkflowType)
	assert.Equal(t, models.PriorityUrgent, plan.Priority)
}

func TestRouteEmergencyFromTaskContext(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeGeneral, "anything", "whatever")
	task.SetContext("emergency", true)

	plan, err := r.Route(context.Background(), task, nil)
	require.NoError(t, err)
	assert.Equal(t, "emergency_fix", plan.RoutingDecision.WorkflowType)
}

func TestRoutePrimaryAgentCounts(t *testing.T) {
	r := newTestRouter(t)

	t.Run("low complexity keeps one primary", func(t *testing.T) {
		task := simpleTask(models.TaskTypeBugReport, "bug", "it broke")
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"bug"}, plan.RoutingDecision.PrimaryAgents)
		assert.NotEmpty(t, plan.RoutingDecision.SecondaryAgents)
		assert.LessOrEqual(t, len(plan.RoutingDecision.SecondaryAgents), maxSecondaryAgents)
	})

	t.Run("higher complexity adds relevant agents", func(t *testing.T) {
		task := simpleTask(models.TaskTypeBugReport, "bug", strings.Repeat("stack trace ", 60))
		task.Dependencies = []string{"a", "b", "c"}
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)

		primaries := plan.RoutingDecision.PrimaryAgents
		assert.Equal(t, "bug", primaries[0])
		assert.Contains(t, primaries, "coder")
		assert.LessOrEqual(t, len(primaries), 4)
		// Secondaries never repeat a primary.
		for _, s := range plan.RoutingDecision.SecondaryAgents {
			assert.NotContains(t, primaries, s)
		}
	})
}

func TestRouteDynamicPlanWhenTemplateMissing(t *testing.T) {
	builtin := config.GetBuiltinConfig()
	templates := map[string]*config.WorkflowTemplate{}
	cfg := &config.Config{
		Keywords:         config.DefaultKeywordConfig(),
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		TemplateRegistry: config.NewTemplateRegistry(templates),
	}
	r := NewRouter(cfg)

	task := simpleTask(models.TaskTypeBugReport, "bug", "it broke")
	plan, err := r.Route(context.Background(), task, &RouteContext{WorkingDir: "/srv/app"})
	require.NoError(t, err)

	require.Len(t, plan.ExecutionSteps, 3)
	assert.Equal(t, "researcher", plan.ExecutionSteps[0].Agent)
	assert.Equal(t, "bug", plan.ExecutionSteps[1].Agent)
	assert.Equal(t, []string{"researcher"}, plan.ExecutionSteps[1].Dependencies)
	assert.Equal(t, "tester", plan.ExecutionSteps[2].Agent)
	assert.Equal(t, []string{"bug"}, plan.ExecutionSteps[2].Dependencies)
	assert.Equal(t, string(config.ModeStaged), plan.Mode)

	// The dynamic plan must still form a valid dependency graph.
	_, err = workflow.ExecutionStages(plan.ExecutionSteps)
	require.NoError(t, err)

	for _, step := range plan.ExecutionSteps {
		assert.Equal(t, "/srv/app", step.Context["working_dir"])
	}
}

func TestRouteDynamicPlanSkipsCollidingRoles(t *testing.T) {
	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Keywords:         config.DefaultKeywordConfig(),
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		TemplateRegistry: config.NewTemplateRegistry(map[string]*config.WorkflowTemplate{}),
	}
	r := NewRouter(cfg)

	// Investigation's specialist is the researcher, which collides with the
	// dynamic analyze role; the plan drops the redundant step.
	task := simpleTask(models.TaskTypeInvestigation, "why is it slow", "investigate the latency")
	plan, err := r.Route(context.Background(), task, nil)
	require.NoError(t, err)

	require.Len(t, plan.ExecutionSteps, 2)
	assert.Equal(t, "researcher", plan.ExecutionSteps[0].Agent)
	assert.Empty(t, plan.ExecutionSteps[0].Dependencies)
	assert.Equal(t, "tester", plan.ExecutionSteps[1].Agent)
}

func TestRouteStepContextCarriesAnalysis(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeBugReport, "crash in pkg/api/server.go",
		"the postgres connection pool panics")
	plan, err := r.Route(context.Background(), task, &RouteContext{WorkingDir: "/srv/app"})
	require.NoError(t, err)

	require.NotEmpty(t, plan.ExecutionSteps)
	stepCtx := plan.ExecutionSteps[0].Context
	require.NotNil(t, stepCtx)
	assert.Equal(t, "/srv/app", stepCtx["working_dir"])
	assert.Contains(t, stepCtx["entities"], "pkg/api/server.go")
	assert.Contains(t, stepCtx["technologies"], "postgres")
}

func TestRouteDurationEstimate(t *testing.T) {
	r := newTestRouter(t)

	task := simpleTask(models.TaskTypeBugReport, "bug", "it broke")
	plan, err := r.Route(context.Background(), task, nil)
	require.NoError(t, err)

	// Low complexity, 3 template steps: (60 + 30*3) * 1.
	assert.Equal(t, 150, plan.EstimatedDurationSeconds)
}

func TestRoutePriorityPrecedence(t *testing.T) {
	r := newTestRouter(t)

	t.Run("explicit override wins over urgency hints", func(t *testing.T) {
		task := simpleTask(models.TaskTypeGeneral, "urgent request", "this is urgent, production down")
		plan, err := r.Route(context.Background(), task, &RouteContext{Priority: models.PriorityLow})
		require.NoError(t, err)
		assert.Equal(t, models.PriorityLow, plan.Priority)
	})

	t.Run("urgent keyword outranks intent default", func(t *testing.T) {
		task := simpleTask(models.TaskTypeDocumentation, "docs asap", "need the runbook asap")
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PriorityUrgent, plan.Priority)
	})

	t.Run("high keyword maps to high", func(t *testing.T) {
		task := simpleTask(models.TaskTypeGeneral, "blocker on rollout", "this is a blocker for the team")
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PriorityHigh, plan.Priority)
	})

	t.Run("bug intent defaults high", func(t *testing.T) {
		task := simpleTask(models.TaskTypeBugReport, "something odd", "the widget renders wrong")
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PriorityHigh, plan.Priority)
	})

	t.Run("quiet general query defaults medium", func(t *testing.T) {
		task := simpleTask(models.TaskTypeGeneral, "question", "what is our release cadence?")
		plan, err := r.Route(context.Background(), task, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PriorityMedium, plan.Priority)
	})
}

func TestRouteNilTask(t *testing.T) {
	r := newTestRouter(t)
	_, err := r.Route(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestRouteCancelledContext(t *testing.T) {
	r := newTestRouter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Route(ctx, simpleTask(models.TaskTypeGeneral, "q", "b"), nil)
	require.ErrorIs(t, err, context.Canceled)
}
