package router

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// intentWorkflows maps each intent to its workflow template. Intents absent
// here (general_query) route to feature_development.
var intentWorkflows = map[Intent]string{
	IntentBugFixing:       "bug_fix_workflow",
	IntentCodeDevelopment: "feature_development",
	IntentCodeReview:      "code_review",
	IntentDocumentation:   "documentation",
	IntentDeployment:      "deployment_rollout",
	IntentInvestigation:   "investigation",
	IntentScheduling:      "schedule_coordination",
}

const defaultWorkflow = "feature_development"

// emergencyWorkflow overrides the intent map when the route context or task
// context carries an explicit emergency flag.
const emergencyWorkflow = "emergency_fix"

// intentSpecialists names the agent that must lead each intent.
var intentSpecialists = map[Intent]string{
	IntentBugFixing:       "bug",
	IntentCodeDevelopment: "coder",
	IntentCodeReview:      "coder",
	IntentDocumentation:   "docs",
	IntentDeployment:      "devops",
	IntentInvestigation:   "researcher",
	IntentScheduling:      "scheduler",
	IntentGeneralQuery:    "general",
}

// intentPriorities are the fallback priorities when neither the route
// context nor the text carries an urgency signal.
var intentPriorities = map[Intent]models.Priority{
	IntentBugFixing:  models.PriorityHigh,
	IntentDeployment: models.PriorityHigh,
}

const maxSecondaryAgents = 3

// Router builds execution plans from parsed tasks.
type Router struct {
	agents    *config.AgentRegistry
	templates *config.TemplateRegistry
	keywords  *config.KeywordConfig
	logger    *slog.Logger
}

// NewRouter creates a router from the configuration snapshot.
func NewRouter(cfg *config.Config) *Router {
	return &Router{
		agents:    cfg.AgentRegistry,
		templates: cfg.TemplateRegistry,
		keywords:  cfg.Keywords,
		logger:    slog.With("component", "router"),
	}
}

// Route turns a parsed task into an execution plan: analyze the text, pick a
// workflow, select agents by complexity, materialize steps, and settle
// priority. It fails only on a nil task; routing itself always produces a
// plan, degrading to the generalist when configuration lacks specialists.
func (r *Router) Route(ctx context.Context, task *models.Task, routeCtx *RouteContext) (*TaskExecutionPlan, error) {
	if task == nil {
		return nil, fmt.Errorf("route: task is nil")
	}
	if routeCtx == nil {
		routeCtx = &RouteContext{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis := r.Analyze(task)
	emergency := routeCtx.Emergency || taskFlagsEmergency(task)

	workflowType := r.selectWorkflow(analysis.Intent, emergency)
	primaries, secondaries := r.selectAgents(analysis)
	steps, mode := r.buildSteps(workflowType, primaries[0], stepContext(analysis, routeCtx))
	priority := r.resolvePriority(routeCtx, analysis, emergency)

	decision := RoutingDecision{
		WorkflowType:    workflowType,
		PrimaryAgents:   primaries,
		SecondaryAgents: secondaries,
		Reasoning:       reasoning(analysis, workflowType, primaries, priority, emergency),
	}

	plan := &TaskExecutionPlan{
		TaskID:                   task.TaskID,
		RoutingDecision:          decision,
		NLUAnalysis:              analysis,
		ExecutionSteps:           steps,
		Mode:                     mode,
		EstimatedDurationSeconds: estimateDuration(len(steps), analysis.Complexity),
		Priority:                 priority,
		CreatedAt:                time.Now().UTC(),
	}

	r.logger.Info("routed task",
		slog.String("task_id", task.TaskID),
		slog.String("intent", string(analysis.Intent)),
		slog.String("complexity", string(analysis.Complexity)),
		slog.String("workflow", workflowType),
		slog.Int("steps", len(steps)),
		slog.String("priority", string(priority)),
	)
	return plan, nil
}

func (r *Router) selectWorkflow(intent Intent, emergency bool) string {
	if emergency {
		return emergencyWorkflow
	}
	if wf, ok := intentWorkflows[intent]; ok {
		return wf
	}
	return defaultWorkflow
}

// selectAgents picks the primary set (specialist first, then agents ranked by
// intent relevance, capped by complexity) and up to three secondaries from
// the rest.
func (r *Router) selectAgents(analysis NLUAnalysis) (primaries, secondaries []string) {
	specialist := intentSpecialists[analysis.Intent]
	if specialist == "" || !r.agents.Has(specialist) {
		specialist = config.FallbackAgentID
	}

	limit := primaryLimit(analysis.Complexity)
	primaries = []string{specialist}

	ranked := r.rankAgents(analysis.Intent, specialist)
	for _, c := range ranked {
		if len(primaries) >= limit || c.score == 0 {
			break
		}
		primaries = append(primaries, c.id)
	}
	for _, c := range ranked[len(primaries)-1:] {
		if len(secondaries) >= maxSecondaryAgents {
			break
		}
		secondaries = append(secondaries, c.id)
	}
	return primaries, secondaries
}

func primaryLimit(c Complexity) int {
	switch c {
	case ComplexityHigh:
		return 4
	case ComplexityMedium:
		return 3
	default:
		return 1
	}
}

type rankedAgent struct {
	id    string
	score int
}

// rankAgents orders every registered agent except the specialist by intent
// relevance: an agent listing the intent among its capabilities scores by how
// early it lists it. Ties break on id for determinism.
func (r *Router) rankAgents(intent Intent, exclude string) []rankedAgent {
	var ranked []rankedAgent
	for _, id := range r.agents.IDs() {
		if id == exclude {
			continue
		}
		profile, err := r.agents.Get(id)
		if err != nil {
			continue
		}
		ranked = append(ranked, rankedAgent{id: id, score: relevance(profile, intent)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	return ranked
}

func relevance(profile *config.AgentProfile, intent Intent) int {
	for i, capability := range profile.Capabilities {
		if capability == string(intent) {
			return 100 - i
		}
	}
	return 0
}

// buildSteps materializes the matching template, or falls back to a dynamic
// analyze → execute → verify plan when the workflow type has no template.
func (r *Router) buildSteps(workflowType, specialist string, stepCtx map[string]interface{}) ([]*workflow.Step, string) {
	if tpl, err := r.templates.Get(workflowType); err == nil {
		mode := tpl.Mode
		if !mode.Valid() {
			mode = config.ModeStaged
		}
		return workflow.StepsFromTemplate(tpl, stepCtx), string(mode)
	}
	r.logger.Warn("no template for workflow, building dynamic plan", slog.String("workflow", workflowType))
	return r.dynamicSteps(specialist, stepCtx), string(config.ModeStaged)
}

// dynamicSteps builds the fallback three-step chain. Roles whose default
// agent is unregistered or collides with the specialist are dropped rather
// than doubled up; the execute step always survives.
func (r *Router) dynamicSteps(specialist string, stepCtx map[string]interface{}) []*workflow.Step {
	var steps []*workflow.Step

	analyzer := "researcher"
	if r.agents.Has(analyzer) && analyzer != specialist {
		steps = append(steps, &workflow.Step{
			Agent:          analyzer,
			Task:           "Analyze the request and assemble the context needed to act on it.",
			OutputFormat:   "markdown",
			TimeoutSeconds: 300,
			Priority:       models.PriorityMedium,
			Context:        cloneContext(stepCtx),
			Status:         workflow.StepPending,
		})
	}

	execute := &workflow.Step{
		Agent:          specialist,
		Task:           "Carry out the requested work.",
		OutputFormat:   "markdown",
		TimeoutSeconds: 600,
		Priority:       models.PriorityHigh,
		Context:        cloneContext(stepCtx),
		Status:         workflow.StepPending,
	}
	if len(steps) > 0 {
		execute.Dependencies = []string{analyzer}
	}
	steps = append(steps, execute)

	verifier := "tester"
	if r.agents.Has(verifier) && verifier != specialist && verifier != analyzer {
		steps = append(steps, &workflow.Step{
			Agent:          verifier,
			Task:           "Verify the outcome against the original request.",
			OutputFormat:   "markdown",
			Dependencies:   []string{specialist},
			TimeoutSeconds: 300,
			Priority:       models.PriorityMedium,
			Context:        cloneContext(stepCtx),
			Status:         workflow.StepPending,
		})
	}
	return steps
}

// resolvePriority settles the plan priority: explicit route context override
// wins unconditionally, then the emergency flag, then urgency keywords from
// the text, then the intent default.
func (r *Router) resolvePriority(routeCtx *RouteContext, analysis NLUAnalysis, emergency bool) models.Priority {
	if routeCtx.Priority != "" && routeCtx.Priority.Valid() {
		return routeCtx.Priority
	}
	if emergency {
		return models.PriorityUrgent
	}
	if len(analysis.UrgencyHints) > 0 {
		// Hints are collected urgent-first, so the first hint carries the band.
		for _, kw := range r.keywords.UrgentKeywords {
			if strings.EqualFold(kw, analysis.UrgencyHints[0]) {
				return models.PriorityUrgent
			}
		}
		return models.PriorityHigh
	}
	if p, ok := intentPriorities[analysis.Intent]; ok {
		return p
	}
	return models.PriorityMedium
}

func estimateDuration(steps int, c Complexity) int {
	multiplier := 1
	switch c {
	case ComplexityMedium:
		multiplier = 2
	case ComplexityHigh:
		multiplier = 3
	}
	return (60 + 30*steps) * multiplier
}

// stepContext assembles the context every step inherits.
func stepContext(analysis NLUAnalysis, routeCtx *RouteContext) map[string]interface{} {
	ctx := make(map[string]interface{})
	if len(analysis.Entities) > 0 {
		ctx["entities"] = analysis.Entities
	}
	if len(analysis.Technologies) > 0 {
		ctx["technologies"] = analysis.Technologies
	}
	if routeCtx.WorkingDir != "" {
		ctx["working_dir"] = routeCtx.WorkingDir
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

func cloneContext(ctx map[string]interface{}) map[string]interface{} {
	if len(ctx) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

// taskFlagsEmergency reports whether the task context carries an emergency
// marker (set by callers of the dispatch API, never inferred from text).
func taskFlagsEmergency(task *models.Task) bool {
	if task.Context == nil {
		return false
	}
	switch v := task.Context["emergency"].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

func reasoning(analysis NLUAnalysis, workflowType string, primaries []string, priority models.Priority, emergency bool) string {
	var b strings.Builder
	if emergency {
		b.WriteString("emergency override; ")
	}
	fmt.Fprintf(&b, "intent %s with %s complexity selected workflow %s; %s leads %d primary agent(s)",
		analysis.Intent, analysis.Complexity, workflowType, primaries[0], len(primaries))
	if len(analysis.Technologies) > 0 {
		fmt.Fprintf(&b, "; technologies: %s", strings.Join(analysis.Technologies, ", "))
	}
	fmt.Fprintf(&b, "; priority %s", priority)
	if len(analysis.UrgencyHints) > 0 {
		fmt.Fprintf(&b, " (urgency: %s)", strings.Join(analysis.UrgencyHints, ", "))
	}
	return b.String()
}
