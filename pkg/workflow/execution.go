// Package workflow materializes workflow templates into executions and
// tracks step state as the executor runs them. Executions are in-memory
// values owned by the worker that claimed the task; the final report is
// persisted on the task itself.
package workflow

import (
	"sync"
	"time"

	"github.com/taskwire/taskwire/pkg/models"
)

// StepStatus tracks a single step through execution.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// ExecutionStatus is derived from step statuses, never set directly.
type ExecutionStatus string

const (
	ExecutionPending   ExecutionStatus = "pending"
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionCompleted ExecutionStatus = "completed"
	ExecutionFailed    ExecutionStatus = "failed"
)

// Step is one unit of agent work inside an execution. Steps are identified
// by their agent id: a template never assigns two steps to the same agent.
type Step struct {
	Agent          string                 `json:"agent"`
	Task           string                 `json:"task"`
	OutputFormat   string                 `json:"output_format,omitempty"`
	Dependencies   []string               `json:"dependencies,omitempty"`
	TimeoutSeconds int                    `json:"timeout_seconds,omitempty"`
	Priority       models.Priority        `json:"priority,omitempty"`
	Context        map[string]interface{} `json:"context,omitempty"`

	Status      StepStatus `json:"status"`
	Result      string     `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Set by the executor when the response came from cache or a fallback.
	CacheHit bool   `json:"cache_hit,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
	ServedBy string `json:"served_by,omitempty"`
}

// Timeout returns the step deadline as a duration, falling back to the
// registry default when unset.
func (s *Step) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Execution is a materialized workflow for one task.
//
// Mutations go through UpdateStepStatus and AdvanceStage, which hold the
// internal lock and recompute the derived execution status. The executor
// reads step results only after the stage barrier that produced them, so
// plain field access on completed steps is safe.
type Execution struct {
	ID           string          `json:"execution_id"`
	TaskID       string          `json:"task_id"`
	WorkflowID   string          `json:"workflow_id"`
	Mode         string          `json:"mode"`
	Steps        []*Step         `json:"steps"`
	CurrentStage int             `json:"current_stage"`
	Status       ExecutionStatus `json:"status"`
	Summary      string          `json:"summary,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`

	mu sync.Mutex
}

// StepUpdate carries the optional fields recorded alongside a status change.
type StepUpdate struct {
	Result   string
	Error    string
	CacheHit bool
	Degraded bool
	ServedBy string
}

// step looks up a step by agent id. Caller holds the lock.
func (e *Execution) step(agentID string) *Step {
	for _, s := range e.Steps {
		if s.Agent == agentID {
			return s
		}
	}
	return nil
}

// UpdateStepStatus transitions one step and recomputes the derived execution
// status. Timestamps are stamped on the running and terminal transitions.
func (e *Execution) UpdateStepStatus(agentID string, status StepStatus, update StepUpdate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.step(agentID)
	if s == nil {
		return &UnknownStepError{Agent: agentID}
	}

	now := time.Now().UTC()
	switch status {
	case StepRunning:
		s.StartedAt = &now
	case StepCompleted, StepFailed:
		s.CompletedAt = &now
	}

	s.Status = status
	s.Result = update.Result
	s.Error = update.Error
	s.CacheHit = update.CacheHit
	s.Degraded = update.Degraded
	s.ServedBy = update.ServedBy

	e.recomputeStatus(now)
	return nil
}

// recomputeStatus derives the execution status from its steps: completed iff
// all steps completed; failed iff any failed; running iff any running; else
// pending. Caller holds the lock.
func (e *Execution) recomputeStatus(now time.Time) {
	var running, failed, completed int
	for _, s := range e.Steps {
		switch s.Status {
		case StepRunning:
			running++
		case StepFailed:
			failed++
		case StepCompleted:
			completed++
		}
	}

	switch {
	case failed > 0:
		e.Status = ExecutionFailed
		if e.CompletedAt == nil {
			e.CompletedAt = &now
		}
	case completed == len(e.Steps):
		e.Status = ExecutionCompleted
		if e.CompletedAt == nil {
			e.CompletedAt = &now
		}
	case running > 0 || completed > 0:
		e.Status = ExecutionRunning
		if e.StartedAt == nil {
			e.StartedAt = &now
		}
	default:
		e.Status = ExecutionPending
	}
}

// ReadySteps returns steps that are pending with every dependency completed.
func (e *Execution) ReadySteps() []*Step {
	e.mu.Lock()
	defer e.mu.Unlock()

	done := make(map[string]bool, len(e.Steps))
	for _, s := range e.Steps {
		if s.Status == StepCompleted {
			done[s.Agent] = true
		}
	}

	var ready []*Step
	for _, s := range e.Steps {
		if s.Status != StepPending {
			continue
		}
		ok := true
		for _, dep := range s.Dependencies {
			if !done[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, s)
		}
	}
	return ready
}

// AdvanceStage records that the executor moved past a stage barrier.
func (e *Execution) AdvanceStage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.CurrentStage++
}

// SetSummary stores the synthesized result text.
func (e *Execution) SetSummary(summary string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Summary = summary
}

// Progress returns completion as a 0-100 percentage of terminal steps.
func (e *Execution) Progress() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.Steps) == 0 {
		return 0
	}
	terminal := 0
	for _, s := range e.Steps {
		if s.Status == StepCompleted || s.Status == StepFailed {
			terminal++
		}
	}
	return terminal * 100 / len(e.Steps)
}

// CurrentStatus returns the derived status under the lock.
func (e *Execution) CurrentStatus() ExecutionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Status
}

// FailedSteps returns the agents whose steps failed, for error reporting.
func (e *Execution) FailedSteps() []*Step {
	e.mu.Lock()
	defer e.mu.Unlock()

	var failed []*Step
	for _, s := range e.Steps {
		if s.Status == StepFailed {
			failed = append(failed, s)
		}
	}
	return failed
}
