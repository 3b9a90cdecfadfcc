package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskwire/taskwire/pkg/workflow"
)

func sampleReport() *workflow.Report {
	return &workflow.Report{
		ExecutionID: "exec-1",
		TaskID:      "task-1",
		WorkflowID:  "standard_dev",
		Mode:        "sequential",
		Status:      workflow.ExecutionCompleted,
		Summary:     "Fixed the login redirect and added a regression test.",
		DurationMS:  12400,
		CacheHits:   1,
		Steps: []workflow.StepReport{
			{Agent: "coder", Status: workflow.StepCompleted, DurationMS: 4200, Result: "Patched session handling."},
			{Agent: "tester", Status: workflow.StepCompleted, DurationMS: 3100, CacheHit: true, Result: "All 42 tests green."},
			{Agent: "reviewer", Status: workflow.StepCompleted, DurationMS: 5100, Degraded: true, ServedBy: "general", Result: "Looks correct."},
		},
	}
}

func TestBuildResultMessage(t *testing.T) {
	input := DeliveryInput{
		TaskID:    "task-1",
		Title:     "Login broken on production",
		Recipient: "alice@example.com",
		CC:        []string{"team@example.com"},
		Subject:   "Login broken on production",
		MessageID: "<msg-1@example.com>",
		Report:    sampleReport(),
	}

	msg := BuildResultMessage("taskwire@mail.example.com", input)

	assert.Equal(t, "taskwire@mail.example.com", msg.From)
	assert.Equal(t, []string{"alice@example.com"}, msg.To)
	assert.Equal(t, []string{"team@example.com"}, msg.CC)
	assert.Equal(t, "Re: Login broken on production", msg.Subject)
	assert.Equal(t, "<msg-1@example.com>", msg.InReplyTo)
	assert.Equal(t, "<msg-1@example.com>", msg.References)

	body := msg.Text
	assert.Contains(t, body, "Login broken on production")
	assert.Contains(t, body, "completed in 12.4s (3 steps, 1 from cache)")
	assert.Contains(t, body, "Fixed the login redirect")
	assert.Contains(t, body, "1. coder — completed (4.2s)")
	assert.Contains(t, body, "2. tester — completed (3.1s, cached)")
	assert.Contains(t, body, "3. reviewer — completed (5.1s, served by general)")
	assert.Contains(t, body, "fallback agent")
	assert.Contains(t, body, "Taskwire task task-1")
}

func TestBuildResultMessage_SubjectThreading(t *testing.T) {
	t.Run("prefixes Re", func(t *testing.T) {
		msg := BuildResultMessage("f@x", DeliveryInput{Subject: "Deploy api", Title: "Deploy api", Recipient: "a@x"})
		assert.Equal(t, "Re: Deploy api", msg.Subject)
	})

	t.Run("keeps existing Re prefix", func(t *testing.T) {
		msg := BuildResultMessage("f@x", DeliveryInput{Subject: "RE: Deploy api", Title: "Deploy api", Recipient: "a@x"})
		assert.Equal(t, "RE: Deploy api", msg.Subject)
	})

	t.Run("falls back to title when subject missing", func(t *testing.T) {
		msg := BuildResultMessage("f@x", DeliveryInput{Title: "Deploy api", Recipient: "a@x"})
		assert.Equal(t, "Taskwire result: Deploy api", msg.Subject)
	})
}

func TestBuildResultMessage_TruncatesLongStepResults(t *testing.T) {
	report := sampleReport()
	report.Steps = []workflow.StepReport{
		{Agent: "coder", Status: workflow.StepCompleted, Result: strings.Repeat("y", 5000)},
	}

	msg := BuildResultMessage("f@x", DeliveryInput{
		TaskID:    "task-1",
		Title:     "Big output",
		Recipient: "a@x",
		Report:    report,
	})

	assert.Contains(t, msg.Text, "... (truncated)")
	assert.Less(t, len(msg.Text), 3000)
}

func TestBuildResultMessage_FailedStepShowsError(t *testing.T) {
	report := sampleReport()
	report.Status = workflow.ExecutionFailed
	report.Steps = []workflow.StepReport{
		{Agent: "coder", Status: workflow.StepFailed, Error: "agent timed out after 120s"},
	}

	msg := BuildResultMessage("f@x", DeliveryInput{
		TaskID:    "task-1",
		Title:     "Flaky",
		Recipient: "a@x",
		Report:    report,
	})

	assert.Contains(t, msg.Text, "1. coder — failed")
	assert.Contains(t, msg.Text, "error: agent timed out after 120s")
}
