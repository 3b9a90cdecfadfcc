// Package router turns parsed tasks into execution plans: a lightweight NLU
// pass over the email text, agent selection by intent and complexity, and a
// workflow choice backed by the template registry.
package router

import (
	"time"

	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// Intent is the coarse goal detected for a task.
type Intent string

const (
	IntentBugFixing       Intent = "bug_fixing"
	IntentCodeDevelopment Intent = "code_development"
	IntentCodeReview      Intent = "code_review"
	IntentDocumentation   Intent = "documentation"
	IntentDeployment      Intent = "deployment"
	IntentInvestigation   Intent = "investigation"
	IntentScheduling      Intent = "scheduling"
	IntentGeneralQuery    Intent = "general_query"
)

// Complexity buckets the estimated effort.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// NLUAnalysis is the router's reading of a task.
type NLUAnalysis struct {
	Intent       Intent     `json:"intent"`
	Complexity   Complexity `json:"complexity"`
	Entities     []string   `json:"entities,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	UrgencyHints []string   `json:"urgency_hints,omitempty"`
}

// RouteContext carries caller-provided routing hints (admin dispatch, task
// context). The explicit priority wins over everything the NLU detects.
type RouteContext struct {
	WorkingDir string
	Priority   models.Priority
	Emergency  bool
}

// RoutingDecision names the chosen workflow and agents.
type RoutingDecision struct {
	WorkflowType    string   `json:"workflow_type"`
	PrimaryAgents   []string `json:"primary_agents"`
	SecondaryAgents []string `json:"secondary_agents,omitempty"`
	Reasoning       string   `json:"reasoning"`
}

// TaskExecutionPlan is the router's output, consumed by the executor.
type TaskExecutionPlan struct {
	TaskID                   string           `json:"task_id"`
	RoutingDecision          RoutingDecision  `json:"routing_decision"`
	NLUAnalysis              NLUAnalysis      `json:"nlu_analysis"`
	ExecutionSteps           []*workflow.Step `json:"execution_steps"`
	Mode                     string           `json:"mode"`
	EstimatedDurationSeconds int              `json:"estimated_duration_seconds"`
	Priority                 models.Priority  `json:"priority"`
	CreatedAt                time.Time        `json:"created_at"`
}
