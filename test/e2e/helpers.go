package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/tasknote"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/webhook"
)

const (
	waitTimeout  = 30 * time.Second
	waitInterval = 100 * time.Millisecond
)

// ────────────────────────────────────────────────────────────
// Webhook construction
// ────────────────────────────────────────────────────────────

// EmailFixture describes one inbound email. Zero-value fields get test
// defaults; MessageID gets a fresh unique id per fixture.
type EmailFixture struct {
	MessageID string
	Sender    string
	Recipient string
	Subject   string
	Body      string
	Headers   map[string]string // extra headers merged over the computed set
}

// SignedWebhook builds a fully signed delivery envelope for the fixture.
// Each call draws a fresh token, so posting the same returned envelope twice
// exercises the replay dedupe path.
func (app *TestApp) SignedWebhook(f EmailFixture) map[string]interface{} {
	if f.MessageID == "" {
		f.MessageID = fmt.Sprintf("<%s@mail.example.test>", uuid.NewString())
	}
	if f.Sender == "" {
		f.Sender = "reporter@example.test"
	}
	if f.Recipient == "" {
		f.Recipient = "tasks@taskwire.example.test"
	}

	headers := map[string]string{
		"message-id": f.MessageID,
		"from":       f.Sender,
		"to":         f.Recipient,
	}
	if f.Subject != "" {
		headers["subject"] = f.Subject
	}
	for k, v := range f.Headers {
		headers[k] = v
	}

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	token := uuid.NewString()
	verifier := webhook.NewVerifier(app.Config.Webhook.SigningKey, app.Config.Webhook.MaxAge)

	return map[string]interface{}{
		"signature": map[string]interface{}{
			"timestamp": ts,
			"token":     token,
			"signature": verifier.Sign(ts, token),
		},
		"event-data": map[string]interface{}{
			"event":     "delivered",
			"recipient": f.Recipient,
			"sender":    f.Sender,
			"message": map[string]interface{}{
				"headers":    headers,
				"body-plain": f.Body,
			},
		},
	}
}

// SendEmail posts a signed webhook for the fixture and returns the parsed
// response. The endpoint answers 200 for fresh and duplicate deliveries
// alike; the body's status field says which.
func (app *TestApp) SendEmail(t *testing.T, f EmailFixture) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/webhooks/email", app.SignedWebhook(f), http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, expectedStatus, false)
}

// postJSONAdmin is postJSON with the admin bearer token attached.
func (app *TestApp) postJSONAdmin(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, expectedStatus, true)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, nil, expectedStatus, false)
}

func (app *TestApp) doJSON(t *testing.T, method, path string, body interface{}, expectedStatus int, admin bool) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+app.Config.Server.AdminToken)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: unexpected status", method, path)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// GetHealth calls GET /health.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/health", http.StatusOK)
}

// GetTask calls GET /api/v1/tasks/:id.
func (app *TestApp) GetTask(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/tasks/"+taskID, http.StatusOK)
}

// CancelTask calls POST /api/v1/tasks/:id/cancel.
func (app *TestApp) CancelTask(t *testing.T, taskID, reason string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/v1/tasks/"+taskID+"/cancel", map[string]interface{}{"reason": reason}, http.StatusOK)
}

// GetSystemWarnings calls GET /api/v1/system/warnings.
func (app *TestApp) GetSystemWarnings(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/system/warnings", http.StatusOK)
}

// GetDLQStats calls GET /api/v1/dlq/stats.
func (app *TestApp) GetDLQStats(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/dlq/stats", http.StatusOK)
}

// RetryDLQ calls the admin redrive endpoint POST /api/v1/dlq/retry.
func (app *TestApp) RetryDLQ(t *testing.T, max int) map[string]interface{} {
	t.Helper()
	return app.postJSONAdmin(t, "/api/v1/dlq/retry", map[string]interface{}{"max": max}, http.StatusOK)
}

// AbandonDLQEntry calls the admin endpoint POST /api/v1/dlq/:id/abandon.
func (app *TestApp) AbandonDLQEntry(t *testing.T, entryID, reason string) map[string]interface{} {
	t.Helper()
	return app.postJSONAdmin(t, "/api/v1/dlq/"+entryID+"/abandon", map[string]interface{}{"reason": reason}, http.StatusOK)
}

// Dispatch calls the admin endpoint POST /api/v1/dispatch.
func (app *TestApp) Dispatch(t *testing.T, body map[string]interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.postJSONAdmin(t, "/api/v1/dispatch", body, expectedStatus)
}

// ────────────────────────────────────────────────────────────
// Database polling helpers
// ────────────────────────────────────────────────────────────

// WaitForTaskStatus polls until the task reaches one of the wanted statuses
// and returns the row. Polling reads the database directly so it also works
// while the HTTP server is saturated.
func (app *TestApp) WaitForTaskStatus(t *testing.T, taskID string, want ...models.TaskStatus) *ent.Task {
	t.Helper()
	var row *ent.Task
	require.Eventually(t, func() bool {
		got, err := app.EntClient.Task.Get(context.Background(), taskID)
		if err != nil {
			return false
		}
		row = got
		for _, s := range want {
			if string(got.Status) == string(s) {
				return true
			}
		}
		return false
	}, waitTimeout, waitInterval, "task %s never reached %v", taskID, want)
	return row
}

// WaitForDeadLetters polls until at least n dead-letter entries exist and
// returns them oldest-first.
func (app *TestApp) WaitForDeadLetters(t *testing.T, n int) []*ent.DeadLetter {
	t.Helper()
	var rows []*ent.DeadLetter
	require.Eventually(t, func() bool {
		got, err := app.EntClient.DeadLetter.Query().
			Order(ent.Asc(deadletter.FieldFirstSeenAt)).
			All(context.Background())
		if err != nil {
			return false
		}
		rows = got
		return len(got) >= n
	}, waitTimeout, waitInterval, "dead-letter queue never reached %d entries", n)
	return rows
}

// WaitForRedriveTask polls until a fresh task carrying the entry's redrive
// marker exists and returns it.
func (app *TestApp) WaitForRedriveTask(t *testing.T, originalTaskID string) *ent.Task {
	t.Helper()
	var row *ent.Task
	require.Eventually(t, func() bool {
		rows, err := app.EntClient.Task.Query().All(context.Background())
		if err != nil {
			return false
		}
		for _, got := range rows {
			if got.Context != nil && got.Context["redrive_of"] == originalTaskID {
				row = got
				return true
			}
		}
		return false
	}, waitTimeout, waitInterval, "no redrive task appeared for %s", originalTaskID)
	return row
}

// TaskNotes returns the task's processing notes oldest-first.
func (app *TestApp) TaskNotes(t *testing.T, taskID string) []string {
	t.Helper()
	rows, err := app.EntClient.TaskNote.Query().
		Where(tasknote.TaskID(taskID)).
		Order(ent.Asc(tasknote.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	notes := make([]string, len(rows))
	for i, r := range rows {
		notes[i] = r.Note
	}
	return notes
}

// Conversation returns the task's conversation entries in sequence order.
func (app *TestApp) Conversation(t *testing.T, taskID string) []*ent.ConversationEntry {
	t.Helper()
	rows, err := app.EntClient.ConversationEntry.Query().
		Where(conversationentry.TaskID(taskID)).
		Order(ent.Asc(conversationentry.FieldSequence)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

// TaskCount returns the number of task rows in this test's schema.
func (app *TestApp) TaskCount(t *testing.T) int {
	t.Helper()
	n, err := app.EntClient.Task.Query().Count(context.Background())
	require.NoError(t, err)
	return n
}

// taskIDFrom extracts the task id out of a webhook or dispatch response.
func taskIDFrom(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	id, _ := resp["task_id"].(string)
	require.NotEmpty(t, id, "response carries no task_id: %v", resp)
	return id
}

// hasNoteContaining reports whether any note contains the substring.
func hasNoteContaining(notes []string, substr string) bool {
	for _, n := range notes {
		if strings.Contains(n, substr) {
			return true
		}
	}
	return false
}
