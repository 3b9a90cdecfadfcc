package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// TestDispatchRequiresAdminToken verifies the admin gate on the dispatch
// endpoint: no bearer token is rejected outright, a wrong one is forbidden,
// and neither leaks whether the action itself was valid.
func TestDispatchRequiresAdminToken(t *testing.T) {
	app := NewTestApp(t)

	body := map[string]interface{}{
		"action":     "dispatch_task",
		"parameters": map[string]interface{}{"title": "should never be created"},
	}

	resp := app.postJSON(t, "/api/v1/dispatch", body, http.StatusUnauthorized)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "AUTHENTICATION_FAILED", resp["code"])

	// Wrong token: same code, but forbidden instead of unauthorized.
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+"/api/v1/dispatch", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-the-admin-token")
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = raw.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, raw.StatusCode)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(raw.Body).Decode(&envelope))
	assert.Equal(t, "AUTHENTICATION_FAILED", envelope["code"])

	assert.Zero(t, app.TaskCount(t), "rejected dispatches must not create tasks")
}

// TestDispatchedEmergencyTaskRunsHotfixWorkflow drives the dispatch_task
// action with the emergency context flag. The flag must override whatever the
// text would have routed to and run the expedited triage, hotfix, rollout
// chain. With no originating email the run settles at completed and nothing
// is mailed.
func TestDispatchedEmergencyTaskRunsHotfixWorkflow(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted("bug", LLMScriptEntry{Text: "Payment capture is rejecting every card token."})
	llm.AddRouted("coder", LLMScriptEntry{Text: "Hotfix: revert the token validation change in capture.go."})
	llm.AddRouted("devops", LLMScriptEntry{Text: "Hotfix rolled out to all regions; capture success rate recovered."})

	app := NewTestApp(t, WithLLMClient(llm))

	// The text deliberately avoids every routing keyword: only the context
	// flag selects the emergency workflow.
	resp := app.Dispatch(t, map[string]interface{}{
		"action": "dispatch_task",
		"parameters": map[string]interface{}{
			"title":       "Restore the checkout flow",
			"description": "Customers cannot complete payment. Get the storefront back on its feet.",
			"context":     map[string]interface{}{"emergency": true},
		},
	}, http.StatusAccepted)
	assert.Equal(t, "queued", resp["status"])
	assert.Equal(t, "dispatch_task", resp["action"])
	taskID := taskIDFrom(t, resp)

	row := app.WaitForTaskStatus(t, taskID, models.StatusCompleted)
	assert.True(t, row.Processed)
	assert.Contains(t, row.ResultSummary, "emergency_fix")
	assert.Contains(t, row.ResultSummary, "3 step(s) in staged mode")
	assert.Contains(t, row.ResultSummary, "capture success rate recovered")

	entries := app.Conversation(t, taskID)
	require.Len(t, entries, 4)
	assert.Equal(t, "bug", entries[0].AgentID)
	assert.Equal(t, "coder", entries[1].AgentID)
	assert.Equal(t, "devops", entries[2].AgentID)
	assert.Equal(t, "orchestrator", entries[3].AgentID)

	notes := app.TaskNotes(t, taskID)
	assert.True(t, hasNoteContaining(notes, "emergency override"),
		"routing note should record the override, got %v", notes)

	// Dispatch-created tasks carry no email metadata, so there is no reply.
	assert.Zero(t, app.Mailer.SentCount())
	assert.Equal(t, 3, llm.CallCount())
}

// TestDispatchParseEmailMasksWithoutPersisting checks the stateless parse
// action: the response carries the fully parsed task, secrets in the body are
// already masked, and neither the database nor the LLM backend is touched.
func TestDispatchParseEmailMasksWithoutPersisting(t *testing.T) {
	llm := NewScriptedLLMClient()
	app := NewTestApp(t, WithLLMClient(llm))

	const secret = "sk_live_4242424242424242abcd"

	resp := app.Dispatch(t, map[string]interface{}{
		"action": "parse_email",
		"parameters": map[string]interface{}{
			"message_id": "<parse-probe@mail.example.test>",
			"from":       "dana@example.test",
			"subject":    "Webhook relay crashes on startup",
			"body":       "The relay crashes when it boots. Config had api_key: " + secret + " baked in.",
		},
	}, http.StatusOK)

	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "parse_email", resp["action"])
	assert.Equal(t, "<parse-probe@mail.example.test>", resp["message_id"])

	task, ok := resp["task"].(map[string]interface{})
	require.True(t, ok, "response carries no task object: %v", resp)
	assert.Equal(t, "Webhook relay crashes on startup", task["title"])
	assert.Equal(t, string(models.TaskTypeBugReport), task["task_type"])

	description, _ := task["description"].(string)
	assert.NotContains(t, description, secret)
	assert.Contains(t, description, "__MASKED_API_KEY__")

	assert.Zero(t, app.TaskCount(t), "parse_email must not persist")
	assert.Zero(t, llm.CallCount(), "parse_email must not call the LLM backend")
}

// TestDispatchRejectsUnknownAction covers the action multiplexer's error
// paths: an unrecognized action and a missing parameters payload.
func TestDispatchRejectsUnknownAction(t *testing.T) {
	app := NewTestApp(t)

	resp := app.Dispatch(t, map[string]interface{}{
		"action":     "reboot",
		"parameters": map[string]interface{}{"target": "everything"},
	}, http.StatusBadRequest)
	assert.Equal(t, "INVALID_PARAMETER", resp["code"])
	assert.Contains(t, resp["message"], "unknown action")

	resp = app.Dispatch(t, map[string]interface{}{
		"action": "dispatch_task",
	}, http.StatusBadRequest)
	assert.Equal(t, "MISSING_PARAMETER", resp["code"])
}
