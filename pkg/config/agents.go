// Package config provides configuration management for taskwire: agent
// profiles, task-type assignments, keyword sets, workflow templates, and the
// resilience/queue/cache knobs the rest of the system reads.
package config

import (
	"fmt"
	"sort"
	"sync"
)

// AgentProfile describes one addressable agent capability.
type AgentProfile struct {
	// Role is the human-readable function ("Senior software engineer").
	Role string `yaml:"role,omitempty"`

	// Capabilities are free-form capability labels used by the router to
	// rank agents for an intent.
	Capabilities []string `yaml:"capabilities,omitempty"`

	// PreferredModel overrides the default LLM model for this agent.
	PreferredModel string `yaml:"preferred_model,omitempty"`

	// SystemPrompt is prepended to every invocation of this agent.
	// Fallback chains live in ResilienceConfig.FallbackChains.
	SystemPrompt string `yaml:"system_prompt,omitempty"`
}

// AgentAssignment maps one task type to its agent set.
type AgentAssignment struct {
	Primary    string   `yaml:"primary"`
	Supporting []string `yaml:"supporting,omitempty"`
	Reason     string   `yaml:"reason,omitempty"`
}

// AgentRegistry stores agent profiles with thread-safe access.
type AgentRegistry struct {
	agents map[string]*AgentProfile
	mu     sync.RWMutex
}

// NewAgentRegistry creates a registry from a profile map (defensively copied).
func NewAgentRegistry(agents map[string]*AgentProfile) *AgentRegistry {
	copied := make(map[string]*AgentProfile, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{agents: copied}
}

// Get retrieves an agent profile by id.
func (r *AgentRegistry) Get(id string) (*AgentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.agents[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	return profile, nil
}

// Has reports whether an agent id is registered.
func (r *AgentRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.agents[id]
	return exists
}

// IDs returns all registered agent ids, sorted.
func (r *AgentRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetAll returns a copy of the profile map.
func (r *AgentRegistry) GetAll() map[string]*AgentProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentProfile, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Len returns the number of registered agents.
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// AssignmentMap resolves task types to agent sets with thread-safe access.
type AssignmentMap struct {
	assignments map[string]*AgentAssignment
	fallback    AgentAssignment
	mu          sync.RWMutex
}

// FallbackAgentID is the agent every unmapped task type routes to.
const FallbackAgentID = "general"

// NewAssignmentMap creates an assignment map (defensively copied).
func NewAssignmentMap(assignments map[string]*AgentAssignment) *AssignmentMap {
	copied := make(map[string]*AgentAssignment, len(assignments))
	for k, v := range assignments {
		copied[k] = v
	}
	return &AssignmentMap{
		assignments: copied,
		fallback: AgentAssignment{
			Primary:    FallbackAgentID,
			Supporting: nil,
			Reason:     "no assignment configured for task type; using general agent",
		},
	}
}

// Resolve returns the assignment for a task type. Unmapped types resolve to
// the general fallback; the second return reports whether the type was mapped.
func (m *AssignmentMap) Resolve(taskType string) (AgentAssignment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if a, ok := m.assignments[taskType]; ok {
		// Copy so callers can't mutate registry state through the slice.
		out := *a
		out.Supporting = append([]string(nil), a.Supporting...)
		return out, true
	}
	return m.fallback, false
}

// GetAll returns a copy of the assignment map.
func (m *AssignmentMap) GetAll() map[string]*AgentAssignment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]*AgentAssignment, len(m.assignments))
	for k, v := range m.assignments {
		result[k] = v
	}
	return result
}

// TaskTypes returns the mapped task types, sorted.
func (m *AssignmentMap) TaskTypes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	types := make([]string, 0, len(m.assignments))
	for t := range m.assignments {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Len returns the number of mapped task types.
func (m *AssignmentMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.assignments)
}
