package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: agents → assignments → templates → defaults
	// This ensures dependencies are validated before dependents

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateAssignments(); err != nil {
		return fmt.Errorf("assignment validation failed: %w", err)
	}

	if err := v.validateTemplates(); err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	if v.cfg.AgentRegistry.Len() == 0 {
		return NewValidationError("agent", "", "agents", fmt.Errorf("at least one agent required"))
	}

	for id, agent := range v.cfg.AgentRegistry.GetAll() {
		if agent.Role == "" {
			return NewValidationError("agent", id, "role", fmt.Errorf("role required"))
		}
		if len(agent.Capabilities) == 0 {
			return NewValidationError("agent", id, "capabilities", fmt.Errorf("at least one capability required"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateAssignments() error {
	for taskType, assignment := range v.cfg.Assignments.GetAll() {
		if assignment.Primary == "" {
			return NewValidationError("assignment", taskType, "primary", fmt.Errorf("primary agent required"))
		}
		if !v.cfg.AgentRegistry.Has(assignment.Primary) {
			return NewValidationError("assignment", taskType, "primary", fmt.Errorf("agent '%s' not found", assignment.Primary))
		}

		for _, supporting := range assignment.Supporting {
			if !v.cfg.AgentRegistry.Has(supporting) {
				return NewValidationError("assignment", taskType, "supporting", fmt.Errorf("agent '%s' not found", supporting))
			}
			if supporting == assignment.Primary {
				return NewValidationError("assignment", taskType, "supporting", fmt.Errorf("agent '%s' is already primary", supporting))
			}
		}
	}

	// Unmapped task types fall back to the generalist, so it must exist
	if !v.cfg.AgentRegistry.Has(FallbackAgentID) {
		return NewValidationError("assignment", FallbackAgentID, "primary", fmt.Errorf("fallback agent '%s' not found", FallbackAgentID))
	}

	return nil
}

func (v *ConfigValidator) validateTemplates() error {
	for _, template := range v.cfg.TemplateRegistry.GetAll() {
		if err := v.validateTemplate(template.ID, template); err != nil {
			return err
		}
	}
	return nil
}

func (v *ConfigValidator) validateTemplate(id string, template *WorkflowTemplate) error {
	if len(template.Steps) == 0 {
		return NewValidationError("template", id, "steps", fmt.Errorf("at least one step required"))
	}

	if template.Mode != "" && !template.Mode.Valid() {
		return NewValidationError("template", id, "mode", fmt.Errorf("invalid execution mode: %s", template.Mode))
	}

	// Steps are keyed by agent within a template; dependencies reference
	// those keys, so each agent may appear at most once.
	seen := make(map[string]int, len(template.Steps))
	for i, step := range template.Steps {
		if step.Agent == "" {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].agent", i), fmt.Errorf("agent required"))
		}
		if !v.cfg.AgentRegistry.Has(step.Agent) {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].agent", i), fmt.Errorf("agent '%s' not found", step.Agent))
		}
		if prev, dup := seen[step.Agent]; dup {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].agent", i), fmt.Errorf("agent '%s' already used by step %d", step.Agent, prev))
		}
		seen[step.Agent] = i

		if step.Task == "" {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].task", i), fmt.Errorf("task required"))
		}
		if step.TimeoutSeconds < 0 {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].timeout_seconds", i), fmt.Errorf("must not be negative"))
		}
		if step.Priority != "" && !isKnownPriority(step.Priority) {
			return NewValidationError("template", id, fmt.Sprintf("steps[%d].priority", i), fmt.Errorf("invalid priority: %s", step.Priority))
		}
	}

	// Dependencies must reference other steps in the same template
	for i, step := range template.Steps {
		for _, dep := range step.Dependencies {
			if dep == step.Agent {
				return NewValidationError("template", id, fmt.Sprintf("steps[%d].dependencies", i), fmt.Errorf("step '%s' depends on itself", step.Agent))
			}
			if _, ok := seen[dep]; !ok {
				return NewValidationError("template", id, fmt.Sprintf("steps[%d].dependencies", i), fmt.Errorf("dependency '%s' is not a step in this template", dep))
			}
		}
	}

	// Reject dependency cycles: repeatedly peel steps whose dependencies are
	// all already peeled; a stall means a cycle.
	if cyclic := findCycle(template.Steps); cyclic != "" {
		return NewValidationError("template", id, "steps", fmt.Errorf("dependency cycle involving step '%s'", cyclic))
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return nil
	}

	if d.Priority != "" && !isKnownPriority(d.Priority) {
		return NewValidationError("defaults", "", "priority", fmt.Errorf("invalid priority: %s", d.Priority))
	}
	if d.WorkflowTemplate != "" && !v.cfg.TemplateRegistry.Has(d.WorkflowTemplate) {
		return NewValidationError("defaults", "", "workflow_template", fmt.Errorf("template '%s' not found", d.WorkflowTemplate))
	}

	return nil
}

// findCycle returns the agent ID of a step caught in a dependency cycle,
// or "" when the step graph is acyclic.
func findCycle(steps []StepTemplate) string {
	resolved := make(map[string]bool, len(steps))
	remaining := make([]StepTemplate, len(steps))
	copy(remaining, steps)

	for len(remaining) > 0 {
		progressed := false
		next := remaining[:0]
		for _, step := range remaining {
			ready := true
			for _, dep := range step.Dependencies {
				if !resolved[dep] {
					ready = false
					break
				}
			}
			if ready {
				resolved[step.Agent] = true
				progressed = true
			} else {
				next = append(next, step)
			}
		}
		if !progressed {
			return next[0].Agent
		}
		remaining = next
	}

	return ""
}

func isKnownPriority(p string) bool {
	switch p {
	case "urgent", "high", "medium", "low":
		return true
	}
	return false
}
