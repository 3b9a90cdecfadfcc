package config

import "sync"

// BuiltinConfig holds the configuration taskwire ships with. Deployments
// override or extend it through taskwire.yaml; anything not overridden keeps
// these values.
type BuiltinConfig struct {
	Agents      map[string]*AgentProfile
	Assignments map[string]*AgentAssignment
	Templates   map[string]*WorkflowTemplate

	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string

	DefaultTaskType string
	DefaultPriority string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration.
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(func() {
		builtinConfig = &BuiltinConfig{
			Agents:          initBuiltinAgents(),
			Assignments:     initBuiltinAssignments(),
			Templates:       initBuiltinTemplates(),
			MaskingPatterns: initBuiltinMaskingPatterns(),
			PatternGroups:   initBuiltinPatternGroups(),
			DefaultTaskType: "general",
			DefaultPriority: "medium",
		}
	})
	return builtinConfig
}

func initBuiltinAgents() map[string]*AgentProfile {
	return map[string]*AgentProfile{
		"coder": {
			Role:         "Senior software engineer",
			Capabilities: []string{"code_development", "code_review", "bug_fixing", "refactoring"},
			SystemPrompt: "You are a senior software engineer. Write correct, maintainable code and explain the key decisions briefly.",
		},
		"bug": {
			Role:         "Bug triage and diagnosis specialist",
			Capabilities: []string{"bug_fixing", "investigation", "root_cause_analysis"},
			SystemPrompt: "You are a debugging specialist. Reproduce the problem from the report, isolate the root cause, and propose the smallest safe fix.",
		},
		"tester": {
			Role:         "QA engineer",
			Capabilities: []string{"testing", "verification", "bug_fixing"},
			SystemPrompt: "You are a QA engineer. Verify changes against the stated requirements and enumerate the cases you checked.",
		},
		"product": {
			Role:         "Product analyst",
			Capabilities: []string{"requirements", "code_development", "planning"},
			SystemPrompt: "You are a product analyst. Turn requests into concrete, testable requirements with explicit acceptance criteria.",
		},
		"docs": {
			Role:         "Technical writer",
			Capabilities: []string{"documentation", "writing"},
			SystemPrompt: "You are a technical writer. Produce clear, accurate documentation aimed at practicing engineers.",
		},
		"devops": {
			Role:         "Platform and deployment engineer",
			Capabilities: []string{"deployment", "infrastructure", "rollback"},
			SystemPrompt: "You are a platform engineer. Plan and execute deployments conservatively; always state the rollback path.",
		},
		"researcher": {
			Role:         "Research and investigation analyst",
			Capabilities: []string{"investigation", "analysis", "summarization"},
			SystemPrompt: "You are a research analyst. Gather the relevant facts, cite where they came from, and separate evidence from inference.",
		},
		"scheduler": {
			Role:         "Scheduling coordinator",
			Capabilities: []string{"scheduling", "coordination"},
			SystemPrompt: "You are a scheduling coordinator. Propose concrete times, surface conflicts, and keep responses short.",
		},
		"general": {
			Role:         "Generalist assistant",
			Capabilities: []string{"general_query", "summarization", "triage"},
			SystemPrompt: "You are a capable generalist. Handle the request directly, or break it down and state what a specialist should take over.",
		},
	}
}

func initBuiltinAssignments() map[string]*AgentAssignment {
	return map[string]*AgentAssignment{
		"code_review": {
			Primary:    "coder",
			Supporting: []string{"tester"},
			Reason:     "code review needs an engineer with test verification",
		},
		"bug_report": {
			Primary:    "bug",
			Supporting: []string{"coder", "tester"},
			Reason:     "bug reports start with diagnosis, then fix and verification",
		},
		"feature_request": {
			Primary:    "coder",
			Supporting: []string{"product", "tester"},
			Reason:     "features need requirements, implementation, and verification",
		},
		"documentation": {
			Primary:    "docs",
			Supporting: []string{"coder"},
			Reason:     "documentation with engineering review",
		},
		"deployment": {
			Primary:    "devops",
			Supporting: []string{"tester"},
			Reason:     "deployments need platform work with smoke verification",
		},
		"investigation": {
			Primary:    "researcher",
			Supporting: []string{"bug"},
			Reason:     "investigations pair research with diagnostic depth",
		},
		"calendar_event": {
			Primary:    "scheduler",
			Supporting: nil,
			Reason:     "scheduling requests are handled by the coordinator alone",
		},
		"general": {
			Primary:    "general",
			Supporting: nil,
			Reason:     "unclassified requests go to the generalist",
		},
	}
}

func initBuiltinTemplates() map[string]*WorkflowTemplate {
	return map[string]*WorkflowTemplate{
		"code_review": {
			Name:        "Code review",
			Description: "Parallel engineering and QA review with a combined summary",
			Mode:        ModeStaged,
			Steps: []StepTemplate{
				{Agent: "coder", Task: "Review the referenced change for correctness, design, and maintainability.", OutputFormat: "markdown", TimeoutSeconds: 300, Priority: "high"},
				{Agent: "tester", Task: "Review the referenced change for test coverage and regressions.", OutputFormat: "markdown", TimeoutSeconds: 300, Priority: "high"},
				{Agent: "general", Task: "Combine the engineering and QA reviews into a single verdict with action items.", OutputFormat: "markdown", Dependencies: []string{"coder", "tester"}, TimeoutSeconds: 180, Priority: "medium"},
			},
		},
		"bug_fix_workflow": {
			Name:        "Bug fix",
			Description: "Diagnose, fix, verify",
			Mode:        ModeStaged,
			Steps: []StepTemplate{
				{Agent: "bug", Task: "Reproduce the reported problem and isolate the root cause.", OutputFormat: "markdown", TimeoutSeconds: 600, Priority: "high"},
				{Agent: "coder", Task: "Implement the smallest safe fix for the diagnosed root cause.", OutputFormat: "diff", Dependencies: []string{"bug"}, TimeoutSeconds: 600, Priority: "high"},
				{Agent: "tester", Task: "Verify the fix resolves the report without regressions.", OutputFormat: "markdown", Dependencies: []string{"coder"}, TimeoutSeconds: 300, Priority: "medium"},
			},
		},
		"feature_development": {
			Name:        "Feature development",
			Description: "Requirements, implementation and docs, verification, summary",
			Mode:        ModeStaged,
			Steps: []StepTemplate{
				{Agent: "product", Task: "Turn the request into concrete requirements with acceptance criteria.", OutputFormat: "markdown", TimeoutSeconds: 300, Priority: "high"},
				{Agent: "coder", Task: "Implement the feature against the stated requirements.", OutputFormat: "diff", Dependencies: []string{"product"}, TimeoutSeconds: 900, Priority: "high"},
				{Agent: "docs", Task: "Draft user-facing documentation for the feature.", OutputFormat: "markdown", Dependencies: []string{"product"}, TimeoutSeconds: 300, Priority: "low"},
				{Agent: "tester", Task: "Verify the implementation against the acceptance criteria.", OutputFormat: "markdown", Dependencies: []string{"coder"}, TimeoutSeconds: 300, Priority: "medium"},
				{Agent: "general", Task: "Summarize what was built, how it was verified, and what the docs cover.", OutputFormat: "markdown", Dependencies: []string{"tester", "docs"}, TimeoutSeconds: 180, Priority: "low"},
			},
		},
		"emergency_fix": {
			Name:        "Emergency fix",
			Description: "Expedited diagnose, hotfix, deploy",
			Mode:        ModeStaged,
			Steps: []StepTemplate{
				{Agent: "bug", Task: "Triage the incident and identify the failing component.", OutputFormat: "markdown", TimeoutSeconds: 180, Priority: "urgent"},
				{Agent: "coder", Task: "Produce a minimal hotfix for the failing component.", OutputFormat: "diff", Dependencies: []string{"bug"}, TimeoutSeconds: 300, Priority: "urgent"},
				{Agent: "devops", Task: "Roll out the hotfix and confirm recovery, with a rollback path.", OutputFormat: "markdown", Dependencies: []string{"coder"}, TimeoutSeconds: 300, Priority: "urgent"},
			},
		},
		"investigation": {
			Name:            "Investigation",
			Description:     "Research, analysis, written findings",
			Mode:            ModeStaged,
			AllowReordering: true,
			Steps: []StepTemplate{
				{Agent: "researcher", Task: "Gather the facts relevant to the question.", OutputFormat: "markdown", TimeoutSeconds: 600, Priority: "medium"},
				{Agent: "bug", Task: "Analyze the gathered facts for causes and anomalies.", OutputFormat: "markdown", Dependencies: []string{"researcher"}, TimeoutSeconds: 600, Priority: "medium"},
				{Agent: "docs", Task: "Write up the findings and recommendations.", OutputFormat: "markdown", Dependencies: []string{"bug"}, TimeoutSeconds: 300, Priority: "low"},
			},
		},
		"documentation": {
			Name:        "Documentation",
			Description: "Single-writer documentation pass",
			Mode:        ModeSequential,
			Steps: []StepTemplate{
				{Agent: "docs", Task: "Write the requested documentation.", OutputFormat: "markdown", TimeoutSeconds: 600, Priority: "medium"},
			},
		},
		"deployment_rollout": {
			Name:        "Deployment rollout",
			Description: "Execute a deployment and announce the result",
			Mode:        ModeStaged,
			Steps: []StepTemplate{
				{Agent: "devops", Task: "Execute the requested deployment with pre/post checks.", OutputFormat: "markdown", TimeoutSeconds: 900, Priority: "high"},
				{Agent: "general", Task: "Announce the deployment outcome and any follow-ups.", OutputFormat: "markdown", Dependencies: []string{"devops"}, TimeoutSeconds: 120, Priority: "low"},
			},
		},
		"schedule_coordination": {
			Name:        "Schedule coordination",
			Description: "Propose meeting times from the request",
			Mode:        ModeSequential,
			Steps: []StepTemplate{
				{Agent: "scheduler", Task: "Propose concrete meeting times honoring the constraints in the request.", OutputFormat: "markdown", TimeoutSeconds: 180, Priority: "medium"},
			},
		},
	}
}
