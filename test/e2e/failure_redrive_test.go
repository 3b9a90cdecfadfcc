package e2e

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// TestDeadLetterRedriveRecovers parks a task whose every agent call fails,
// then redrives it through the admin API once the backend is healthy again.
func TestDeadLetterRedriveRecovers(t *testing.T) {
	// An empty script makes every Generate call fail, which exhausts the
	// step agent and its whole fallback chain.
	llm := NewScriptedLLMClient()
	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SendEmail(t, EmailFixture{
		Sender:  "ops@example.test",
		Subject: "Payment webhook handler is broken",
		Body:    "The payment webhook handler crashes with an exception on every delivery attempt.",
	})
	taskID := taskIDFrom(t, resp)

	app.WaitForTaskStatus(t, taskID, models.StatusFailed)

	entries := app.WaitForDeadLetters(t, 1)
	entry := entries[0]
	assert.Equal(t, taskID, entry.TaskID)
	assert.Equal(t, "bug", entry.AgentID)
	assert.Equal(t, "pending", string(entry.Status))
	assert.NotEmpty(t, entry.LastError)
	assert.Equal(t, 0, entry.Attempts)

	stats := app.GetDLQStats(t)
	assert.EqualValues(t, 1, stats["pending"])
	assert.EqualValues(t, 1, stats["total"])

	// A failed run never mails the requester.
	assert.Equal(t, 0, app.Mailer.SentCount())

	// Heal the backend, then redrive.
	llm.AddRouted("bug", LLMScriptEntry{Text: "Root cause: handler rejects the provider's new payload field."})
	llm.AddRouted("coder", LLMScriptEntry{Text: "Handler now tolerates unknown payload fields."})
	llm.AddRouted("tester", LLMScriptEntry{Text: "Replayed 50 captured deliveries, all accepted."})

	retryResp := app.RetryDLQ(t, 10)
	assert.EqualValues(t, 1, retryResp["processed"])

	redrive := app.WaitForRedriveTask(t, taskID)
	require.NotEqual(t, taskID, redrive.ID)
	assert.Equal(t, entry.ID, redrive.Context["dlq_entry_id"])
	assert.EqualValues(t, 1, redrive.Context["redrive_attempt"])

	redriveRow := app.WaitForTaskStatus(t, redrive.ID, models.StatusDispatched)
	assert.Contains(t, redriveRow.ResultSummary, "Replayed 50 captured deliveries")

	// A successful redrive settles the entry by deleting it.
	require.Eventually(t, func() bool {
		n, err := app.EntClient.DeadLetter.Query().Count(context.Background())
		return err == nil && n == 0
	}, waitTimeout, waitInterval, "dead-letter entry was not resolved")

	notes := app.TaskNotes(t, redrive.ID)
	assert.True(t, hasNoteContaining(notes, "Redriven from dead-letter queue"), "notes: %v", notes)

	// The original row keeps its failure; the redrive is a fresh task.
	orig, err := app.EntClient.Task.Get(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(orig.Status))

	// The redrive carries the original email metadata, so the result still
	// reaches the requester.
	sent := app.Mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ops@example.test"}, sent[0].To)
}

// TestAbandonedEntryIsSkippedByRedrive abandons a parked entry and checks
// the redrive loop leaves it alone.
func TestAbandonedEntryIsSkippedByRedrive(t *testing.T) {
	llm := NewScriptedLLMClient()
	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SendEmail(t, EmailFixture{
		Subject: "Search results page throws an error",
		Body:    "Search is failing with an exception whenever the query contains a quote character.",
	})
	taskID := taskIDFrom(t, resp)

	app.WaitForTaskStatus(t, taskID, models.StatusFailed)
	entries := app.WaitForDeadLetters(t, 1)
	entryID := entries[0].ID

	abandoned := app.AbandonDLQEntry(t, entryID, "duplicate of a tracked incident")
	assert.Equal(t, "abandoned", abandoned["status"])

	retryResp := app.RetryDLQ(t, 10)
	assert.EqualValues(t, 0, retryResp["processed"])

	listing := app.getJSON(t, "/api/v1/dlq?status=abandoned", http.StatusOK)
	rows, ok := listing["entries"].([]interface{})
	require.True(t, ok, "dlq listing has no entries array: %v", listing)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, entryID, row["id"])
	assert.Equal(t, "duplicate of a tracked incident", row["abandon_reason"])

	stats := app.GetDLQStats(t)
	assert.EqualValues(t, 0, stats["pending"])
	assert.EqualValues(t, 1, stats["abandoned"])
}

// TestDeliveryFailureKeepsResult breaks outbound mail and checks the run
// still lands as completed with the result intact, plus an operator warning.
func TestDeliveryFailureKeepsResult(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "Onboarding guide drafted."})

	app := NewTestApp(t, WithLLMClient(llm))
	app.Mailer.FailWith(errors.New("smtp 550 mailbox unavailable"))

	resp := app.SendEmail(t, EmailFixture{
		Sender:  "newhire@example.test",
		Subject: "Write the onboarding guide",
		Body:    "Please document the onboarding guide for new engineers.",
	})
	taskID := taskIDFrom(t, resp)

	row := app.WaitForTaskStatus(t, taskID, models.StatusCompleted)
	assert.Contains(t, row.ResultSummary, "Onboarding guide drafted")
	assert.Equal(t, 0, app.Mailer.SentCount())

	notes := app.TaskNotes(t, taskID)
	assert.True(t, hasNoteContaining(notes, "Result delivery failed"), "notes: %v", notes)

	warnings := app.GetSystemWarnings(t)
	items, ok := warnings["warnings"].([]interface{})
	require.True(t, ok, "warnings response has no warnings array: %v", warnings)
	found := false
	for _, it := range items {
		if w, ok := it.(map[string]interface{}); ok && w["category"] == "mail_delivery" {
			found = true
		}
	}
	assert.True(t, found, "no mail_delivery warning recorded: %v", items)
}
