package config

import (
	"fmt"
	"sort"
	"sync"
)

// ExecutionMode selects how an executor runs a workflow's steps.
type ExecutionMode string

const (
	// ModeParallel runs every step concurrently, ignoring dependencies.
	ModeParallel ExecutionMode = "parallel"
	// ModeSequential runs steps in declared order, feeding prior outputs forward.
	ModeSequential ExecutionMode = "sequential"
	// ModeStaged partitions steps into dependency stages; stages run in
	// order, steps within a stage run concurrently.
	ModeStaged ExecutionMode = "staged"
)

// Valid reports whether m is a known execution mode.
func (m ExecutionMode) Valid() bool {
	switch m {
	case ModeParallel, ModeSequential, ModeStaged:
		return true
	}
	return false
}

// StepTemplate declares one agent invocation inside a workflow template.
type StepTemplate struct {
	Agent          string   `yaml:"agent" json:"agent"`
	Task           string   `yaml:"task" json:"task"`
	OutputFormat   string   `yaml:"output_format,omitempty" json:"output_format"`
	Dependencies   []string `yaml:"dependencies,omitempty" json:"dependencies"`
	TimeoutSeconds int      `yaml:"timeout_seconds,omitempty" json:"timeout_seconds"`
	Priority       string   `yaml:"priority,omitempty" json:"priority"`
}

// WorkflowTemplate is a named, validated workflow definition.
type WorkflowTemplate struct {
	ID              string         `yaml:"-" json:"id"`
	Name            string         `yaml:"name" json:"name"`
	Description     string         `yaml:"description,omitempty" json:"description"`
	Steps           []StepTemplate `yaml:"steps" json:"steps"`
	AllowReordering bool           `yaml:"allow_reordering,omitempty" json:"allow_reordering"`
	Mode            ExecutionMode  `yaml:"mode,omitempty" json:"mode"`
}

// DefaultStepTimeoutSeconds bounds a step whose template does not set one.
const DefaultStepTimeoutSeconds = 300

// StepTimeoutSeconds returns the step timeout, applying the default.
func (s *StepTemplate) StepTimeoutSeconds() int {
	if s.TimeoutSeconds > 0 {
		return s.TimeoutSeconds
	}
	return DefaultStepTimeoutSeconds
}

// AgentIDs returns the agents referenced by the template's steps, in order.
func (t *WorkflowTemplate) AgentIDs() []string {
	ids := make([]string, 0, len(t.Steps))
	for _, s := range t.Steps {
		ids = append(ids, s.Agent)
	}
	return ids
}

// TemplateRegistry stores workflow templates with thread-safe access.
type TemplateRegistry struct {
	templates map[string]*WorkflowTemplate
	mu        sync.RWMutex
}

// NewTemplateRegistry creates a registry from a template map (defensively
// copied). Each template's ID field is set to its map key.
func NewTemplateRegistry(templates map[string]*WorkflowTemplate) *TemplateRegistry {
	copied := make(map[string]*WorkflowTemplate, len(templates))
	for id, tpl := range templates {
		tpl.ID = id
		copied[id] = tpl
	}
	return &TemplateRegistry{templates: copied}
}

// Get retrieves a template by id.
func (r *TemplateRegistry) Get(id string) (*WorkflowTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, exists := r.templates[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return tpl, nil
}

// Has reports whether a template id is registered.
func (r *TemplateRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.templates[id]
	return exists
}

// GetAll returns every template sorted by id. Used by the read-only catalog
// endpoint, so the order must be stable.
func (r *TemplateRegistry) GetAll() []*WorkflowTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*WorkflowTemplate, 0, len(r.templates))
	for _, tpl := range r.templates {
		all = append(all, tpl)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of registered templates.
func (r *TemplateRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
