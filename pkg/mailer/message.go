package mailer

import (
	"fmt"
	"strings"

	"github.com/taskwire/taskwire/pkg/workflow"
)

// maxStepResultLength bounds the per-step digest in the rendered body so a
// verbose agent cannot balloon the result email.
const maxStepResultLength = 1200

var stepStatusLabel = map[workflow.StepStatus]string{
	workflow.StepCompleted: "completed",
	workflow.StepFailed:    "failed",
}

// DeliveryInput carries everything needed to render and address a result email.
type DeliveryInput struct {
	TaskID    string
	Title     string
	Recipient string
	CC        []string

	// Subject and MessageID come from the original email so the result
	// threads under the requester's message.
	Subject   string
	MessageID string

	Report *workflow.Report
}

// BuildResultMessage renders a completed execution into a plain-text reply.
func BuildResultMessage(from string, input DeliveryInput) OutboundMessage {
	var b strings.Builder

	fmt.Fprintf(&b, "Taskwire finished your request: %s\n\n", input.Title)

	report := input.Report
	if report != nil {
		fmt.Fprintf(&b, "Status: %s in %s (%s)\n", report.Status, formatDuration(report.DurationMS), stepCountLine(report))
		if report.Degraded {
			b.WriteString("Note: one or more steps were served by a fallback agent.\n")
		}
		b.WriteString("\n")

		if report.Summary != "" {
			b.WriteString("Summary\n\n")
			b.WriteString(strings.TrimSpace(report.Summary))
			b.WriteString("\n\n")
		}

		if len(report.Steps) > 0 {
			b.WriteString("Step results\n")
			for i, step := range report.Steps {
				b.WriteString("\n")
				fmt.Fprintf(&b, "%d. %s — %s (%s%s)\n", i+1, step.Agent, stepLabel(step.Status), formatDuration(step.DurationMS), stepQualifiers(step))
				if step.Error != "" {
					fmt.Fprintf(&b, "   error: %s\n", step.Error)
				}
				if digest := truncateBody(strings.TrimSpace(step.Result)); digest != "" {
					b.WriteString(indent(digest, "   "))
					b.WriteString("\n")
				}
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "--\nTaskwire task %s\n", input.TaskID)

	return OutboundMessage{
		From:       from,
		To:         []string{input.Recipient},
		CC:         input.CC,
		Subject:    replySubject(input.Subject, input.Title),
		Text:       b.String(),
		InReplyTo:  input.MessageID,
		References: input.MessageID,
		Tags:       []string{"task-result"},
	}
}

// replySubject threads the result under the original subject line.
func replySubject(original, title string) string {
	if original == "" {
		return "Taskwire result: " + title
	}
	if strings.HasPrefix(strings.ToLower(original), "re:") {
		return original
	}
	return "Re: " + original
}

func stepLabel(status workflow.StepStatus) string {
	if label, ok := stepStatusLabel[status]; ok {
		return label
	}
	return string(status)
}

func stepQualifiers(step workflow.StepReport) string {
	var parts []string
	if step.CacheHit {
		parts = append(parts, "cached")
	}
	if step.Degraded && step.ServedBy != "" {
		parts = append(parts, "served by "+step.ServedBy)
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}

func stepCountLine(report *workflow.Report) string {
	line := fmt.Sprintf("%d steps", len(report.Steps))
	if len(report.Steps) == 1 {
		line = "1 step"
	}
	if report.CacheHits > 0 {
		line += fmt.Sprintf(", %d from cache", report.CacheHits)
	}
	return line
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

func truncateBody(text string) string {
	if len(text) <= maxStepResultLength {
		return text
	}
	return text[:maxStepResultLength] + "\n... (truncated)"
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
