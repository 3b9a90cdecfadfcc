package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a minimal Config that passes validation, for tests to
// break one piece at a time.
func validConfig() *Config {
	agents := map[string]*AgentProfile{
		"coder":   {Role: "Engineer", Capabilities: []string{"code_development"}},
		"tester":  {Role: "QA", Capabilities: []string{"testing"}},
		"general": {Role: "Generalist", Capabilities: []string{"general_query"}},
	}
	assignments := map[string]*AgentAssignment{
		"bug_report": {Primary: "coder", Supporting: []string{"tester"}},
	}
	templates := map[string]*WorkflowTemplate{
		"review": {
			ID:   "review",
			Name: "Review",
			Steps: []StepTemplate{
				{Agent: "coder", Task: "Review"},
				{Agent: "tester", Task: "Verify", Dependencies: []string{"coder"}},
			},
		},
	}

	return &Config{
		Defaults:         &Defaults{TaskType: "general", Priority: "medium"},
		AgentRegistry:    NewAgentRegistry(agents),
		Assignments:      NewAssignmentMap(assignments),
		TemplateRegistry: NewTemplateRegistry(templates),
	}
}

func TestValidateAllPasses(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAgents(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		cfg := validConfig()
		cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentProfile{
			"general": {Capabilities: []string{"x"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role required")
	})

	t.Run("missing capabilities", func(t *testing.T) {
		cfg := validConfig()
		cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentProfile{
			"general": {Role: "Generalist"},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "capability")
	})

	t.Run("no agents at all", func(t *testing.T) {
		cfg := validConfig()
		cfg.AgentRegistry = NewAgentRegistry(nil)
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
	})
}

func TestValidateAssignments(t *testing.T) {
	t.Run("unknown primary", func(t *testing.T) {
		cfg := validConfig()
		cfg.Assignments = NewAssignmentMap(map[string]*AgentAssignment{
			"bug_report": {Primary: "ghost"},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("unknown supporting", func(t *testing.T) {
		cfg := validConfig()
		cfg.Assignments = NewAssignmentMap(map[string]*AgentAssignment{
			"bug_report": {Primary: "coder", Supporting: []string{"ghost"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("primary repeated as supporting", func(t *testing.T) {
		cfg := validConfig()
		cfg.Assignments = NewAssignmentMap(map[string]*AgentAssignment{
			"bug_report": {Primary: "coder", Supporting: []string{"coder"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already primary")
	})

	t.Run("fallback agent must exist", func(t *testing.T) {
		cfg := validConfig()
		cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentProfile{
			"coder":  {Role: "Engineer", Capabilities: []string{"code_development"}},
			"tester": {Role: "QA", Capabilities: []string{"testing"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), FallbackAgentID)
	})
}

func TestValidateTemplates(t *testing.T) {
	withTemplate := func(tmpl *WorkflowTemplate) *Config {
		cfg := validConfig()
		tmpl.ID = "t"
		cfg.TemplateRegistry = NewTemplateRegistry(map[string]*WorkflowTemplate{"t": tmpl})
		return cfg
	}

	t.Run("no steps", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{Name: "Empty"})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one step")
	})

	t.Run("unknown agent", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name:  "Bad",
			Steps: []StepTemplate{{Agent: "ghost", Task: "x"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("duplicate agent", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name: "Dup",
			Steps: []StepTemplate{
				{Agent: "coder", Task: "a"},
				{Agent: "coder", Task: "b"},
			},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already used")
	})

	t.Run("dependency on missing step", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name: "Missing dep",
			Steps: []StepTemplate{
				{Agent: "coder", Task: "a", Dependencies: []string{"ghost"}},
			},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a step")
	})

	t.Run("self dependency", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name: "Self",
			Steps: []StepTemplate{
				{Agent: "coder", Task: "a", Dependencies: []string{"coder"}},
			},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depends on itself")
	})

	t.Run("dependency cycle", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name: "Cycle",
			Steps: []StepTemplate{
				{Agent: "coder", Task: "a", Dependencies: []string{"tester"}},
				{Agent: "tester", Task: "b", Dependencies: []string{"coder"}},
			},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("invalid mode", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name:  "Bad mode",
			Mode:  ExecutionMode("warp"),
			Steps: []StepTemplate{{Agent: "coder", Task: "a"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execution mode")
	})

	t.Run("invalid step priority", func(t *testing.T) {
		cfg := withTemplate(&WorkflowTemplate{
			Name:  "Bad priority",
			Steps: []StepTemplate{{Agent: "coder", Task: "a", Priority: "whenever"}},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
	})
}

func TestValidateDefaults(t *testing.T) {
	t.Run("invalid priority", func(t *testing.T) {
		cfg := validConfig()
		cfg.Defaults.Priority = "whenever"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
	})

	t.Run("unknown workflow template", func(t *testing.T) {
		cfg := validConfig()
		cfg.Defaults.WorkflowTemplate = "ghost"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestFindCycle(t *testing.T) {
	acyclic := []StepTemplate{
		{Agent: "a"},
		{Agent: "b", Dependencies: []string{"a"}},
		{Agent: "c", Dependencies: []string{"a", "b"}},
	}
	assert.Empty(t, findCycle(acyclic))

	cyclic := []StepTemplate{
		{Agent: "a", Dependencies: []string{"c"}},
		{Agent: "b", Dependencies: []string{"a"}},
		{Agent: "c", Dependencies: []string{"b"}},
	}
	assert.NotEmpty(t, findCycle(cyclic))
}
