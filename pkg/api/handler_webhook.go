package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
)

// webhookHandler handles POST /webhooks/email: verify the envelope, reject
// replays, parse the message into a task, and enqueue it. Nothing durable is
// written before the signature checks pass.
func (s *Server) webhookHandler(c *echo.Context) error {
	req := c.Request()
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		return apiError(c, http.StatusUnsupportedMediaType, CodeUnsupportedMedia,
			"request body must be application/json")
	}

	var env WebhookEnvelope
	if err := json.NewDecoder(req.Body).Decode(&env); err != nil {
		return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed JSON body")
	}
	if errs := env.validate(); len(errs) > 0 {
		return apiErrorDetails(c, http.StatusBadRequest, CodeMissingParameter,
			"webhook envelope is incomplete", map[string]interface{}{"errors": errs})
	}

	if s.verifier == nil || s.replayCache == nil || s.parser == nil || s.taskService == nil {
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"webhook pipeline is not configured")
	}

	if err := s.verifier.Verify(env.Signature.Timestamp, env.Signature.Token, env.Signature.Signature); err != nil {
		if errors.Is(err, webhook.ErrStaleTimestamp) {
			return apiError(c, http.StatusForbidden, CodeStaleTimestamp,
				"webhook timestamp outside acceptance window")
		}
		return apiError(c, http.StatusForbidden, CodeAuthenticationFailed,
			"webhook signature verification failed")
	}

	ctx := req.Context()
	email := env.inboundEmail()

	seen, err := s.replayCache.Seen(ctx, env.Signature.Token)
	if err != nil {
		slog.Error("Replay cache unavailable", "error", err)
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"replay cache unavailable")
	}
	if seen {
		return c.JSON(http.StatusOK, &WebhookResponse{Status: "duplicate", MessageID: email.MessageID})
	}

	task := s.parser.Parse(email)
	created, err := s.taskService.CreateTask(ctx, task)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return c.JSON(http.StatusOK, &WebhookResponse{Status: "duplicate", MessageID: email.MessageID})
		}
		// The write failed after the token was recorded. Release it so the
		// sender's retry is not rejected as a replay.
		if revokeErr := s.replayCache.Revoke(ctx, env.Signature.Token); revokeErr != nil {
			slog.Warn("Failed to revoke replay token", "error", revokeErr)
		}
		return mapServiceError(c, err)
	}

	s.auditWebhook(ctx, created.ID, email)

	slog.Info("Webhook accepted",
		"task_id", created.ID,
		"message_id", email.MessageID,
		"sender", email.From,
		"task_type", created.TaskType,
		"priority", created.Priority)

	return c.JSON(http.StatusOK, &WebhookResponse{
		Status:    "queued",
		TaskID:    created.ID,
		MessageID: email.MessageID,
	})
}

// auditWebhook records the inbound delivery on the audit trail, best effort.
func (s *Server) auditWebhook(ctx context.Context, taskID string, email *models.InboundEmail) {
	if s.auditService == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{
		"message_id": email.MessageID,
		"sender":     email.From,
		"recipient":  email.Recipient,
	})
	if _, err := s.auditService.RecordEvent(ctx, taskID, "webhook", string(payload)); err != nil {
		slog.Warn("Failed to record webhook audit event", "task_id", taskID, "error", err)
	}
}

// validate reports the envelope's missing required fields.
func (env *WebhookEnvelope) validate() []string {
	var errs []string
	if env.Signature.Timestamp == "" {
		errs = append(errs, "signature.timestamp is required")
	}
	if env.Signature.Token == "" {
		errs = append(errs, "signature.token is required")
	}
	if env.Signature.Signature == "" {
		errs = append(errs, "signature.signature is required")
	}
	if env.EventData.Sender == "" {
		errs = append(errs, "event-data.sender is required")
	}
	if env.header("message-id") == "" {
		errs = append(errs, "event-data.message.headers.message-id is required")
	}
	return errs
}

// header returns a message header by case-insensitive name.
func (env *WebhookEnvelope) header(name string) string {
	for k, v := range env.EventData.Message.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// inboundEmail maps the envelope onto the parser's input model.
func (env *WebhookEnvelope) inboundEmail() *models.InboundEmail {
	email := &models.InboundEmail{
		MessageID: strings.Trim(env.header("message-id"), "<>"),
		From:      env.EventData.Sender,
		Recipient: env.EventData.Recipient,
		Subject:   env.header("subject"),
		ReplyTo:   env.header("reply-to"),
		InReplyTo: strings.Trim(env.header("in-reply-to"), "<>"),
		BodyPlain: env.EventData.Message.BodyPlain,
		Headers:   env.EventData.Message.Headers,
	}
	if email.From == "" {
		email.From = env.header("from")
	}
	if email.Recipient == "" {
		email.Recipient = env.header("to")
	}
	if cc := env.header("cc"); cc != "" {
		for _, addr := range strings.Split(cc, ",") {
			if trimmed := strings.TrimSpace(addr); trimmed != "" {
				email.CC = append(email.CC, trimmed)
			}
		}
	}
	if unix, err := strconv.ParseInt(env.Signature.Timestamp, 10, 64); err == nil {
		email.Timestamp = time.Unix(unix, 0).UTC()
	} else {
		email.Timestamp = time.Now().UTC()
	}
	for _, att := range env.EventData.Message.Attachments {
		email.Attachments = append(email.Attachments, models.Attachment{
			Filename:    att.Filename,
			ContentType: att.ContentType,
			Size:        att.Size,
			URL:         att.URL,
		})
	}
	return email
}
