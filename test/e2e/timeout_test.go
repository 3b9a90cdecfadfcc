package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// TestTaskTimeoutFailsWithoutParking lets the per-task deadline expire while
// an agent call hangs. Timeouts are deterministic configuration limits, not
// transient dispatch failures, so the task fails without a dead-letter entry.
func TestTaskTimeoutFailsWithoutParking(t *testing.T) {
	stall := make(chan struct{})
	defer close(stall)

	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "never delivered", WaitCh: stall, OnBlock: blocked})

	app := NewTestApp(t, WithLLMClient(llm), WithTaskTimeout(1500*time.Millisecond), WithoutMailer())

	resp := app.SendEmail(t, EmailFixture{
		Subject: "Draft the release changelog",
		Body:    "Please write up the changelog for the 2.4 release.",
	})
	taskID := taskIDFrom(t, resp)

	select {
	case <-blocked:
	case <-time.After(waitTimeout):
		t.Fatal("agent call never reached the scripted backend")
	}

	row := app.WaitForTaskStatus(t, taskID, models.StatusFailed)
	assert.Contains(t, row.ErrorMessage, "timed out")
	assert.True(t, row.Processed)

	n, err := app.EntClient.DeadLetter.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n, "timeouts must not park tasks in the dead-letter queue")
	assert.Equal(t, 0, app.Mailer.SentCount())
}
