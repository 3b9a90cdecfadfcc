package workflow

import "time"

// StepReport is the per-step slice of an execution report.
type StepReport struct {
	Agent      string     `json:"agent"`
	Status     StepStatus `json:"status"`
	DurationMS int64      `json:"duration_ms"`
	CacheHit   bool       `json:"cache_hit,omitempty"`
	Degraded   bool       `json:"degraded,omitempty"`
	ServedBy   string     `json:"served_by,omitempty"`
	Error      string     `json:"error,omitempty"`
	Result     string     `json:"result,omitempty"`
}

// Report is the exportable summary of an execution, persisted into the task
// context and rendered into the delivery email.
type Report struct {
	ExecutionID string          `json:"execution_id"`
	TaskID      string          `json:"task_id"`
	WorkflowID  string          `json:"workflow_id"`
	Mode        string          `json:"mode"`
	Status      ExecutionStatus `json:"status"`
	Summary     string          `json:"summary,omitempty"`
	DurationMS  int64           `json:"duration_ms"`
	Steps       []StepReport    `json:"steps"`
	Degraded    bool            `json:"degraded,omitempty"`
	CacheHits   int             `json:"cache_hits,omitempty"`
}

// ExportReport snapshots the execution for persistence and delivery.
func (e *Execution) ExportReport() *Report {
	e.mu.Lock()
	defer e.mu.Unlock()

	report := &Report{
		ExecutionID: e.ID,
		TaskID:      e.TaskID,
		WorkflowID:  e.WorkflowID,
		Mode:        e.Mode,
		Status:      e.Status,
		Summary:     e.Summary,
		Steps:       make([]StepReport, 0, len(e.Steps)),
	}

	if e.StartedAt != nil {
		end := time.Now().UTC()
		if e.CompletedAt != nil {
			end = *e.CompletedAt
		}
		report.DurationMS = end.Sub(*e.StartedAt).Milliseconds()
	}

	for _, s := range e.Steps {
		sr := StepReport{
			Agent:    s.Agent,
			Status:   s.Status,
			CacheHit: s.CacheHit,
			Degraded: s.Degraded,
			ServedBy: s.ServedBy,
			Error:    s.Error,
			Result:   s.Result,
		}
		if s.StartedAt != nil && s.CompletedAt != nil {
			sr.DurationMS = s.CompletedAt.Sub(*s.StartedAt).Milliseconds()
		}
		if s.CacheHit {
			report.CacheHits++
		}
		if s.Degraded {
			report.Degraded = true
		}
		report.Steps = append(report.Steps, sr)
	}

	return report
}
