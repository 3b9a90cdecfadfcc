package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/parser"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
)

const testSigningKey = "test-signing-key"

// newWebhookTestServer wires the minimum the webhook handler requires. The
// nil-backed task service is never reached on rejection and replay paths;
// accepted deliveries are covered by the e2e suite against a real database.
func newWebhookTestServer(t *testing.T) *Server {
	t.Helper()
	builtin := config.GetBuiltinConfig()
	cfg := &config.Config{
		Defaults:    &config.Defaults{TaskType: "general", Priority: "medium"},
		Keywords:    config.DefaultKeywordConfig(),
		Assignments: config.NewAssignmentMap(builtin.Assignments),
	}
	replay := webhook.NewMemoryReplayCache(time.Minute)
	t.Cleanup(replay.Close)
	return &Server{
		cfg:         cfg,
		verifier:    webhook.NewVerifier(testSigningKey, 2*time.Minute),
		replayCache: replay,
		parser:      parser.NewParser(cfg),
		taskService: services.NewTaskService(nil, nil),
	}
}

// signedEnvelope builds a complete envelope signed at the given timestamp.
func signedEnvelope(t *testing.T, timestamp, token string) []byte {
	t.Helper()
	v := webhook.NewVerifier(testSigningKey, 2*time.Minute)
	env := map[string]interface{}{
		"signature": map[string]string{
			"timestamp": timestamp,
			"token":     token,
			"signature": v.Sign(timestamp, token),
		},
		"event-data": map[string]interface{}{
			"event":     "stored",
			"sender":    "ada@example.com",
			"recipient": "tasks@taskwire.example.com",
			"message": map[string]interface{}{
				"headers": map[string]string{
					"Message-Id": "<msg-1@example.com>",
					"Subject":    "URGENT: login broken",
				},
				"body-plain": "Users can't log in. Fix ASAP.",
			},
		},
	}
	body, err := json.Marshal(env)
	require.NoError(t, err)
	return body
}

func postWebhook(t *testing.T, s *Server, body []byte, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/email", bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, s.webhookHandler(c))
	return rec
}

func TestWebhookRejectsWrongContentType(t *testing.T) {
	s := newWebhookTestServer(t)
	rec := postWebhook(t, s, []byte("timestamp=1&token=t"), "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeUnsupportedMedia, resp.Code)
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	s := newWebhookTestServer(t)
	rec := postWebhook(t, s, []byte("{not json"), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeValidationFailed, resp.Code)
}

func TestWebhookRejectsIncompleteEnvelope(t *testing.T) {
	s := newWebhookTestServer(t)
	rec := postWebhook(t, s, []byte(`{"signature":{"timestamp":"123"}}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeMissingParameter, resp.Code)

	details, ok := resp.Details.(map[string]interface{})
	require.True(t, ok)
	errs, ok := details["errors"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "signature.token is required")
	assert.Contains(t, errs, "event-data.sender is required")
	assert.Contains(t, errs, "event-data.message.headers.message-id is required")
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	s := newWebhookTestServer(t)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	body := signedEnvelope(t, ts, "tok-1")
	tampered := bytes.Replace(body, []byte(`"token":"tok-1"`), []byte(`"token":"tok-2"`), 1)

	rec := postWebhook(t, s, tampered, "application/json")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeAuthenticationFailed, resp.Code)
}

func TestWebhookRejectsStaleTimestamp(t *testing.T) {
	s := newWebhookTestServer(t)
	stale := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	body := signedEnvelope(t, stale, "tok-stale")

	rec := postWebhook(t, s, body, "application/json")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeStaleTimestamp, resp.Code)
}

func TestWebhookReportsReplayAsDuplicate(t *testing.T) {
	s := newWebhookTestServer(t)

	seen, err := s.replayCache.Seen(context.Background(), "tok-replayed")
	require.NoError(t, err)
	require.False(t, seen)

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	rec := postWebhook(t, s, signedEnvelope(t, ts, "tok-replayed"), "application/json")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "duplicate", resp.Status)
	assert.Equal(t, "msg-1@example.com", resp.MessageID)
	assert.Empty(t, resp.TaskID)
}

func TestWebhookUnconfiguredPipeline(t *testing.T) {
	s := &Server{}
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	rec := postWebhook(t, s, signedEnvelope(t, ts, "tok-unwired"), "application/json")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeServiceUnavailable, resp.Code)
}
