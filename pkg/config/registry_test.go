package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRegistry(t *testing.T) {
	registry := NewAgentRegistry(map[string]*AgentProfile{
		"zeta":  {Role: "Z", Capabilities: []string{"z"}},
		"alpha": {Role: "A", Capabilities: []string{"a"}},
	})

	t.Run("get existing", func(t *testing.T) {
		agent, err := registry.Get("alpha")
		require.NoError(t, err)
		assert.Equal(t, "A", agent.Role)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, registry.Has("zeta"))
		assert.False(t, registry.Has("ghost"))
	})

	t.Run("ids sorted", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "zeta"}, registry.IDs())
	})

	t.Run("get all returns copy", func(t *testing.T) {
		all := registry.GetAll()
		delete(all, "alpha")
		assert.True(t, registry.Has("alpha"))
	})

	t.Run("len", func(t *testing.T) {
		assert.Equal(t, 2, registry.Len())
	})
}

func TestAssignmentMapResolve(t *testing.T) {
	assignments := NewAssignmentMap(map[string]*AgentAssignment{
		"bug_report": {Primary: "bug", Supporting: []string{"coder"}, Reason: "diagnosis first"},
	})

	t.Run("mapped task type", func(t *testing.T) {
		assignment, mapped := assignments.Resolve("bug_report")
		assert.True(t, mapped)
		assert.Equal(t, "bug", assignment.Primary)
		assert.Equal(t, []string{"coder"}, assignment.Supporting)
	})

	t.Run("unmapped falls back to generalist", func(t *testing.T) {
		assignment, mapped := assignments.Resolve("interpretive_dance")
		assert.False(t, mapped)
		assert.Equal(t, FallbackAgentID, assignment.Primary)
		assert.Empty(t, assignment.Supporting)
		assert.NotEmpty(t, assignment.Reason)
	})

	t.Run("resolve returns copy", func(t *testing.T) {
		assignment, _ := assignments.Resolve("bug_report")
		assignment.Supporting[0] = "mutated"

		fresh, _ := assignments.Resolve("bug_report")
		assert.Equal(t, []string{"coder"}, fresh.Supporting)
	})
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry(map[string]*WorkflowTemplate{
		"zeta":  {Name: "Z", Steps: []StepTemplate{{Agent: "a", Task: "t"}}},
		"alpha": {Name: "A", Steps: []StepTemplate{{Agent: "a", Task: "t"}}},
	})

	t.Run("id set from map key", func(t *testing.T) {
		tmpl, err := registry.Get("alpha")
		require.NoError(t, err)
		assert.Equal(t, "alpha", tmpl.ID)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := registry.Get("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("get all sorted by id", func(t *testing.T) {
		all := registry.GetAll()
		require.Len(t, all, 2)
		assert.Equal(t, "alpha", all[0].ID)
		assert.Equal(t, "zeta", all[1].ID)
	})
}

func TestStepTemplateTimeout(t *testing.T) {
	step := StepTemplate{Agent: "a", Task: "t"}
	assert.Equal(t, DefaultStepTimeoutSeconds, step.StepTimeoutSeconds())

	step.TimeoutSeconds = 42
	assert.Equal(t, 42, step.StepTimeoutSeconds())
}

func TestWorkflowTemplateAgentIDs(t *testing.T) {
	tmpl := &WorkflowTemplate{
		Steps: []StepTemplate{
			{Agent: "coder", Task: "a"},
			{Agent: "tester", Task: "b"},
		},
	}
	assert.Equal(t, []string{"coder", "tester"}, tmpl.AgentIDs())
}
