package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
)

// Engine materializes executions from workflow templates or router-built
// step plans and enforces the reordering policy.
type Engine struct {
	templates *config.TemplateRegistry
}

// NewEngine creates an engine over the configured template registry.
func NewEngine(templates *config.TemplateRegistry) *Engine {
	return &Engine{templates: templates}
}

// Templates exposes the registry for the read-only catalog endpoint.
func (e *Engine) Templates() *config.TemplateRegistry {
	return e.templates
}

// CreateExecution wraps pre-built steps into an execution after validating
// the dependency graph. Used for dynamic plans that have no template.
func (e *Engine) CreateExecution(taskID, workflowID string, mode config.ExecutionMode, steps []*Step) (*Execution, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("execution for task %s has no steps", taskID)
	}
	if _, err := ExecutionStages(steps); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		mode = config.ModeStaged
	}

	for _, s := range steps {
		if s.Status == "" {
			s.Status = StepPending
		}
	}

	return &Execution{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		WorkflowID: workflowID,
		Mode:       string(mode),
		Steps:      steps,
		Status:     ExecutionPending,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// FromTemplate materializes a registered template for a task. stepContext is
// attached to every step (entities, technologies, working directory hints).
func (e *Engine) FromTemplate(taskID, templateID string, stepContext map[string]interface{}) (*Execution, error) {
	tpl, err := e.templates.Get(templateID)
	if err != nil {
		return nil, err
	}

	mode := tpl.Mode
	if !mode.Valid() {
		mode = config.ModeStaged
	}

	return e.CreateExecution(taskID, templateID, mode, StepsFromTemplate(tpl, stepContext))
}

// StepsFromTemplate materializes a template's steps without creating an
// execution. The router uses this to embed template steps in a plan.
func StepsFromTemplate(tpl *config.WorkflowTemplate, stepContext map[string]interface{}) []*Step {
	steps := make([]*Step, 0, len(tpl.Steps))
	for _, st := range tpl.Steps {
		steps = append(steps, materializeStep(st, stepContext))
	}
	return steps
}

// materializeStep copies a template step into a live one.
func materializeStep(st config.StepTemplate, stepContext map[string]interface{}) *Step {
	deps := make([]string, len(st.Dependencies))
	copy(deps, st.Dependencies)

	var ctx map[string]interface{}
	if len(stepContext) > 0 {
		ctx = make(map[string]interface{}, len(stepContext))
		for k, v := range stepContext {
			ctx[k] = v
		}
	}

	priority := models.PriorityMedium
	if st.Priority != "" {
		priority = models.Priority(st.Priority)
	}

	return &Step{
		Agent:          st.Agent,
		Task:           st.Task,
		OutputFormat:   st.OutputFormat,
		Dependencies:   deps,
		TimeoutSeconds: st.StepTimeoutSeconds(),
		Priority:       priority,
		Context:        ctx,
		Status:         StepPending,
	}
}

// ReorderSteps reorders a pending execution's steps to the requested agent
// order. Refused unless the template opted in with allow_reordering and the
// order keeps every dependency ahead of its dependents. Dynamic executions
// (no template) always refuse.
func (e *Engine) ReorderSteps(exec *Execution, order []string) error {
	tpl, err := e.templates.Get(exec.WorkflowID)
	if err != nil {
		return ErrReorderNotAllowed
	}
	if !tpl.AllowReordering {
		return ErrReorderNotAllowed
	}

	exec.mu.Lock()
	defer exec.mu.Unlock()

	if len(order) != len(exec.Steps) {
		return fmt.Errorf("order names %d steps, execution has %d", len(order), len(exec.Steps))
	}

	byAgent := make(map[string]*Step, len(exec.Steps))
	for _, s := range exec.Steps {
		byAgent[s.Agent] = s
	}

	seen := make(map[string]bool, len(order))
	reordered := make([]*Step, 0, len(order))
	for _, agent := range order {
		s, ok := byAgent[agent]
		if !ok {
			return &UnknownStepError{Agent: agent}
		}
		if seen[agent] {
			return fmt.Errorf("agent %q appears twice in requested order", agent)
		}
		for _, dep := range s.Dependencies {
			if !seen[dep] {
				return ErrReorderBreaksDependencies
			}
		}
		seen[agent] = true
		reordered = append(reordered, s)
	}

	exec.Steps = reordered
	return nil
}
