package e2e

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// TestEmailPipelineDeliversResult walks the full path: signed webhook →
// parse/classify → queue claim → staged bug-fix workflow → result digest →
// threaded reply mail → dispatched.
func TestEmailPipelineDeliversResult(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("bug", LLMScriptEntry{Text: "Root cause: cart totals are recomputed after checkout submits."})
	llm.AddRouted("coder", LLMScriptEntry{Text: "Patched the totals module to freeze amounts at submit time."})
	llm.AddRouted("tester", LLMScriptEntry{Text: "Verified: checkout completes cleanly across 12 cart permutations."})

	app := NewTestApp(t, WithLLMClient(llm))

	fixture := EmailFixture{
		MessageID: "<checkout-crash-report@mail.example.test>",
		Sender:    "dana@example.test",
		Subject:   "Checkout crashes on submit",
		Body:      "The checkout page is broken: submitting the cart throws an exception and customers see a 500. Stack trace attached below.",
	}
	resp := app.SendEmail(t, fixture)
	require.Equal(t, "queued", resp["status"])
	taskID := taskIDFrom(t, resp)

	// Dispatched, not just completed: the capturing mailer accepted the reply.
	row := app.WaitForTaskStatus(t, taskID, models.StatusDispatched)

	assert.Equal(t, "bug_report", string(row.TaskType))
	assert.True(t, row.Processed)
	assert.Equal(t, 100, row.Progress)
	require.NotNil(t, row.CompletedAt)
	assert.Contains(t, row.ResultSummary, "bug_fix_workflow")
	assert.Contains(t, row.ResultSummary, "Verified: checkout completes cleanly")

	// Staged workflow: diagnosis, fix, verification, then the synthesis entry.
	entries := app.Conversation(t, taskID)
	require.Len(t, entries, 4)
	assert.Equal(t, "bug", entries[0].AgentID)
	assert.Equal(t, "coder", entries[1].AgentID)
	assert.Equal(t, "tester", entries[2].AgentID)
	for _, entry := range entries[:3] {
		assert.Equal(t, string(models.RoleResponse), string(entry.Role))
	}
	synthesis := entries[3]
	assert.Equal(t, "orchestrator", synthesis.AgentID)
	assert.Equal(t, string(models.RoleSynthesis), string(synthesis.Role))

	// Audit trail of the run.
	notes := app.TaskNotes(t, taskID)
	assert.True(t, hasNoteContaining(notes, "created from email"), "notes: %v", notes)
	assert.True(t, hasNoteContaining(notes, "Routing:"), "notes: %v", notes)
	assert.True(t, hasNoteContaining(notes, "Result delivered to dana@example.test"), "notes: %v", notes)

	// One threaded reply to the requester.
	sent := app.Mailer.Sent()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, []string{"dana@example.test"}, msg.To)
	assert.Equal(t, "Re: Checkout crashes on submit", msg.Subject)
	assert.Equal(t, strings.Trim(fixture.MessageID, "<>"), msg.InReplyTo)
	assert.Contains(t, msg.Text, "Taskwire finished your request")

	// Each step consulted the scripted backend exactly once, as itself.
	assert.Equal(t, 3, llm.CallCount())
	assert.Equal(t, 1, llm.CallsFor("bug"))
	assert.Equal(t, 1, llm.CallsFor("coder"))
	assert.Equal(t, 1, llm.CallsFor("tester"))

	// Status changes were broadcast over LISTEN/NOTIFY. The channel is
	// shared across tests, so filter for this task.
	require.Eventually(t, func() bool {
		for _, n := range app.Notifications() {
			if strings.Contains(string(n.Payload), taskID) {
				return true
			}
		}
		return false
	}, waitTimeout, waitInterval, "no NOTIFY broadcast mentioned task %s", taskID)
}

// TestWebhookDeduplication covers both dedupe layers: the replay cache
// rejects a re-posted envelope (same token), and the unique message id
// rejects a fresh envelope for an already-ingested email.
func TestWebhookDeduplication(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "Runbook drafted."})

	app := NewTestApp(t, WithLLMClient(llm))

	fixture := EmailFixture{
		MessageID: "<dedupe-probe@mail.example.test>",
		Subject:   "Write up the failover runbook",
		Body:      "Please document the database failover runbook for the on-call guide.",
	}

	envelope := app.SignedWebhook(fixture)
	first := app.postJSON(t, "/webhooks/email", envelope, http.StatusOK)
	require.Equal(t, "queued", first["status"])
	taskID := taskIDFrom(t, first)

	// Same envelope again: the replay cache has seen this token.
	replayed := app.postJSON(t, "/webhooks/email", envelope, http.StatusOK)
	assert.Equal(t, "duplicate", replayed["status"])

	// Fresh signature, same message id: provider retried the delivery.
	retried := app.postJSON(t, "/webhooks/email", app.SignedWebhook(fixture), http.StatusOK)
	assert.Equal(t, "duplicate", retried["status"])

	app.WaitForTaskStatus(t, taskID, models.StatusDispatched)
	assert.Equal(t, 1, app.TaskCount(t))
	assert.Equal(t, 1, app.Mailer.SentCount())
}

// TestWebhookRejectsBadSignature confirms unauthenticated deliveries never
// reach the parser.
func TestWebhookRejectsBadSignature(t *testing.T) {
	app := NewTestApp(t)

	envelope := app.SignedWebhook(EmailFixture{Subject: "Spoofed", Body: "forged delivery"})
	sig := envelope["signature"].(map[string]interface{})
	sig["signature"] = strings.Repeat("0", 64)

	app.postJSON(t, "/webhooks/email", envelope, http.StatusUnauthorized)
	assert.Equal(t, 0, app.TaskCount(t))
}

// TestSecretsMaskedBeforeStorage sends a body carrying credential material
// and verifies neither the stored task nor any agent prompt ever contains
// the raw secret.
func TestSecretsMaskedBeforeStorage(t *testing.T) {
	const secret = "sk_live_4242424242424242abcd"

	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "Rotation procedure documented."})

	app := NewTestApp(t, WithLLMClient(llm))

	resp := app.SendEmail(t, EmailFixture{
		Subject: "Document the key rotation runbook",
		Body:    "Our billing integration uses api_key = \"" + secret + "\". Please write a runbook for rotating it safely.",
	})
	taskID := taskIDFrom(t, resp)

	row := app.WaitForTaskStatus(t, taskID, models.StatusDispatched)
	assert.NotContains(t, row.Description, secret)
	assert.Contains(t, row.Description, "__MASKED_API_KEY__")

	for _, input := range app.LLMClient.Inputs() {
		assert.NotContains(t, input.SystemPrompt, secret)
		for _, m := range input.Messages {
			assert.NotContains(t, m.Content, secret)
		}
	}
}

// TestUrgentEmailClaimedBeforeBacklog checks that priority classes order the
// queue. A decoy task occupies the single worker while a low-priority and an
// urgent email are enqueued; the next claim must pick the urgent one.
func TestUrgentEmailClaimedBeforeBacklog(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddRouted("docs", LLMScriptEntry{Text: "Decoy written.", WaitCh: release, OnBlock: blocked})
	llm.AddRouted("docs", LLMScriptEntry{Text: "Sidebar tidied."})
	llm.AddRouted("bug", LLMScriptEntry{Text: "Mitigated."})
	llm.AddRouted("coder", LLMScriptEntry{Text: "Hotfix applied."})
	llm.AddRouted("tester", LLMScriptEntry{Text: "Smoke-tested."})

	app := NewTestApp(t, WithLLMClient(llm), WithoutMailer())

	decoy := app.SendEmail(t, EmailFixture{
		Subject: "Write up the sprint notes",
		Body:    "Please document this week's sprint notes for the wiki.",
	})
	decoyID := taskIDFrom(t, decoy)

	// Wait until the decoy holds the worker before enqueueing the rivals.
	select {
	case <-blocked:
	case <-time.After(waitTimeout):
		t.Fatal("decoy task never reached the scripted backend")
	}

	low := app.SendEmail(t, EmailFixture{
		Subject: "Tidy the wiki sidebar documentation",
		Body:    "No rush on this one, just tidy the sidebar docs when you get a chance.",
	})
	lowID := taskIDFrom(t, low)

	urgent := app.SendEmail(t, EmailFixture{
		Subject: "URGENT: production down, checkout broken",
		Body:    "Production is down with a crash in checkout. This is critical, fix immediately.",
	})
	urgentID := taskIDFrom(t, urgent)

	urgentRow, err := app.EntClient.Task.Get(context.Background(), urgentID)
	require.NoError(t, err)
	assert.Equal(t, "urgent", string(urgentRow.Priority))
	lowRow, err := app.EntClient.Task.Get(context.Background(), lowID)
	require.NoError(t, err)
	assert.Equal(t, "low", string(lowRow.Priority))

	close(release)

	app.WaitForTaskStatus(t, decoyID, models.StatusCompleted)
	urgentRow = app.WaitForTaskStatus(t, urgentID, models.StatusCompleted)
	lowRow = app.WaitForTaskStatus(t, lowID, models.StatusCompleted)

	require.NotNil(t, urgentRow.StartedAt)
	require.NotNil(t, lowRow.StartedAt)
	assert.True(t, urgentRow.StartedAt.Before(*lowRow.StartedAt),
		"urgent task started %s, low started %s", urgentRow.StartedAt, lowRow.StartedAt)
}
