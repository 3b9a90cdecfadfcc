package agent

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// maxPriorOutputChars bounds each prior step result included in a prompt.
// Oversized outputs are cut, not summarized; the full text is still in the
// conversation log.
const maxPriorOutputChars = 8000

const genericSystemPrompt = "You are a capable generalist agent on a task " +
	"orchestration team. Complete the assignment precisely, state your " +
	"assumptions, and keep the response self-contained."

const responseDirective = "Provide your complete response to the assignment above. " +
	"Be specific and actionable. The response is delivered to the requester " +
	"as-is, so do not reference internal step or agent mechanics."

// PromptBuilder composes the system and user messages for one step
// invocation. Stateless — all state comes from parameters, and the output
// is deterministic for identical inputs because the executor keys the
// response cache on the prompt fingerprint.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// StepOutput is a completed step's result carried into later prompts.
type StepOutput struct {
	Agent  string
	Result string
}

// BuildStepInput assembles the full invocation for one step: the profile's
// system prompt and preferred model, plus a user message combining the task,
// the step assignment, and any prior agent output.
func (b *PromptBuilder) BuildStepInput(
	agentID string,
	profile *config.AgentProfile,
	task *models.Task,
	step *workflow.Step,
	prior []StepOutput,
) *GenerateInput {
	input := &GenerateInput{
		AgentID:      agentID,
		SystemPrompt: systemPromptFor(profile),
	}
	if profile != nil {
		input.Model = profile.PreferredModel
	}

	var sb strings.Builder
	sb.WriteString(FormatTaskSection(task))
	sb.WriteString("\n")
	sb.WriteString(FormatAssignmentSection(step))
	sb.WriteString("\n")
	sb.WriteString(FormatPriorOutputs(prior))
	sb.WriteString("\n")
	sb.WriteString(responseDirective)

	input.Messages = []Message{{Role: RoleUser, Content: sb.String()}}
	return input
}

func systemPromptFor(profile *config.AgentProfile) string {
	if profile == nil {
		return genericSystemPrompt
	}
	if profile.SystemPrompt != "" {
		return profile.SystemPrompt
	}
	if profile.Role != "" {
		return fmt.Sprintf("You are %s. Complete the assignment precisely and state your assumptions.", profile.Role)
	}
	return genericSystemPrompt
}

// FormatTaskSection builds the task details section.
func FormatTaskSection(task *models.Task) string {
	var sb strings.Builder
	sb.WriteString("## Task\n\n")
	sb.WriteString("**Title:** ")
	sb.WriteString(task.Title)
	sb.WriteString("\n**Type:** ")
	sb.WriteString(string(task.TaskType))
	sb.WriteString("\n**Priority:** ")
	sb.WriteString(string(task.Priority))
	sb.WriteString("\n")
	if task.Deadline != nil {
		sb.WriteString("**Deadline:** ")
		sb.WriteString(task.Deadline.UTC().Format(time.RFC3339))
		sb.WriteString("\n")
	}

	sb.WriteString("\n### Description\n")
	if strings.TrimSpace(task.Description) == "" {
		sb.WriteString("No description provided.\n")
	} else {
		sb.WriteString(task.Description)
		sb.WriteString("\n")
	}

	writeListSection(&sb, "Success criteria", task.SuccessCriteria)
	writeListSection(&sb, "Constraints", task.Constraints)
	writeListSection(&sb, "Deliverables", task.Deliverables)
	return sb.String()
}

func writeListSection(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n### ")
	sb.WriteString(heading)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}

// FormatAssignmentSection builds the per-step assignment section. Context
// keys are sorted so identical steps always produce identical prompts.
func FormatAssignmentSection(step *workflow.Step) string {
	var sb strings.Builder
	sb.WriteString("## Your Assignment\n\n")
	sb.WriteString(step.Task)
	sb.WriteString("\n")
	if step.OutputFormat != "" {
		sb.WriteString("\n**Output format:** ")
		sb.WriteString(step.OutputFormat)
		sb.WriteString("\n")
	}

	if len(step.Context) > 0 {
		keys := make([]string, 0, len(step.Context))
		for k := range step.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\n**Context:**\n")
		for _, k := range keys {
			sb.WriteString("- ")
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(fmt.Sprintf("%v", step.Context[k]))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatPriorOutputs builds the prior agent output section fed to dependent
// and sequential steps.
func FormatPriorOutputs(prior []StepOutput) string {
	if len(prior) == 0 {
		return "## Prior Agent Output\nNo prior agent output is available. You are the first agent on this task.\n"
	}

	var sb strings.Builder
	sb.WriteString("## Prior Agent Output\n")
	for _, p := range prior {
		sb.WriteString("\n### ")
		sb.WriteString(p.Agent)
		sb.WriteString("\n")
		result := p.Result
		if len(result) > maxPriorOutputChars {
			result = result[:maxPriorOutputChars] + "\n[output truncated]"
		}
		sb.WriteString(result)
		sb.WriteString("\n")
	}
	return sb.String()
}
