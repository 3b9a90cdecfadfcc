package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// TestCancelRunningTask cancels a task while its agent call is in flight.
// The API writes the terminal state immediately; the worker notices its
// context died and leaves that state alone.
func TestCancelRunningTask(t *testing.T) {
	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.AddRouted("bug", LLMScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SendEmail(t, EmailFixture{
		Sender:  "dana@example.test",
		Subject: "Exports fail with a stack trace",
		Body:    "CSV exports are broken, every attempt crashes with a stack trace.",
	})
	taskID := taskIDFrom(t, resp)

	select {
	case <-blocked:
	case <-time.After(waitTimeout):
		t.Fatal("agent call never reached the scripted backend")
	}

	cancelResp := app.CancelTask(t, taskID, "requester withdrew the report")
	assert.Equal(t, taskID, cancelResp["task_id"])

	row := app.WaitForTaskStatus(t, taskID, models.StatusFailed)
	assert.Contains(t, row.ErrorMessage, "cancelled")
	assert.Contains(t, row.ErrorMessage, "requester withdrew the report")
	assert.True(t, row.Processed)
	require.NotNil(t, row.CompletedAt)

	notes := app.TaskNotes(t, taskID)
	assert.True(t, hasNoteContaining(notes, "Task cancelled"), "notes: %v", notes)

	// A cancellation is not a dispatch failure: the worker must unwind
	// without parking the task or mailing a partial result.
	assert.Never(t, func() bool {
		n, err := app.EntClient.DeadLetter.Query().Count(context.Background())
		return err != nil || n > 0
	}, 750*time.Millisecond, waitInterval, "cancelled task must not reach the dead-letter queue")
	assert.Equal(t, 0, app.Mailer.SentCount())
}

// TestCancelQueuedTask cancels a task that no worker has claimed yet.
func TestCancelQueuedTask(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)
	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "Decoy done.", WaitCh: release, OnBlock: blocked})

	app := NewTestApp(t, WithLLMClient(llm), WithoutMailer())

	// Occupy the single worker so the second task stays queued.
	decoy := app.SendEmail(t, EmailFixture{
		Subject: "Write up the incident review",
		Body:    "Please document the incident review for last night's outage.",
	})
	decoyID := taskIDFrom(t, decoy)
	select {
	case <-blocked:
	case <-time.After(waitTimeout):
		t.Fatal("decoy task never reached the scripted backend")
	}

	queued := app.SendEmail(t, EmailFixture{
		Subject: "Broken image uploads",
		Body:    "Image uploads error out with a 500, looks like a regression.",
	})
	queuedID := taskIDFrom(t, queued)

	app.CancelTask(t, queuedID, "")
	row := app.WaitForTaskStatus(t, queuedID, models.StatusFailed)
	assert.Equal(t, "cancelled", row.ErrorMessage)
	assert.Nil(t, row.StartedAt, "cancelled before any claim")

	close(release)
	app.WaitForTaskStatus(t, decoyID, models.StatusCompleted)

	// The cancelled task never consumed an agent call.
	assert.Equal(t, 1, llm.CallCount())
}
