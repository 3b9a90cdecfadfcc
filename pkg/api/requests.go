package api

import (
	"encoding/json"
	"time"
)

// WebhookEnvelope is the Mailgun-style body of POST /webhooks/email.
type WebhookEnvelope struct {
	Signature WebhookSignature `json:"signature"`
	EventData WebhookEventData `json:"event-data"`
}

// WebhookSignature authenticates the envelope: HMAC-SHA256 over
// timestamp+token with the shared signing key.
type WebhookSignature struct {
	Timestamp string `json:"timestamp"`
	Token     string `json:"token"`
	Signature string `json:"signature"`
}

// WebhookEventData carries the delivered message.
type WebhookEventData struct {
	Event     string         `json:"event"`
	Recipient string         `json:"recipient"`
	Sender    string         `json:"sender"`
	Message   WebhookMessage `json:"message"`
}

// WebhookMessage is the message portion of the event payload.
type WebhookMessage struct {
	Headers     map[string]string   `json:"headers"`
	BodyPlain   string              `json:"body-plain"`
	Attachments []WebhookAttachment `json:"attachments,omitempty"`
}

// WebhookAttachment describes one stored attachment by reference.
type WebhookAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content-type,omitempty"`
	Size        int64  `json:"size,omitempty"`
	URL         string `json:"url,omitempty"`
}

// CancelTaskRequest is the optional body of POST /api/v1/tasks/:id/cancel.
type CancelTaskRequest struct {
	Reason string `json:"reason,omitempty"`
}

// DLQRetryRequest is the body of POST /api/v1/dlq/retry.
type DLQRetryRequest struct {
	Max int `json:"max"`
}

// DLQAbandonRequest is the body of POST /api/v1/dlq/:id/abandon.
type DLQAbandonRequest struct {
	Reason string `json:"reason"`
}

// DispatchRequest is the body of POST /api/v1/dispatch. Parameters is
// decoded per action.
type DispatchRequest struct {
	Action     string          `json:"action"`
	Parameters json.RawMessage `json:"parameters"`
}

// DispatchEmailParams feeds the parse_email, analyze_email, and ingest_email
// actions: a raw email supplied directly instead of via webhook.
type DispatchEmailParams struct {
	MessageID string            `json:"message_id,omitempty"`
	From      string            `json:"from"`
	Recipient string            `json:"recipient,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	CC        []string          `json:"cc,omitempty"`
	ReplyTo   string            `json:"reply_to,omitempty"`
	InReplyTo string            `json:"in_reply_to,omitempty"`
	Body      string            `json:"body,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// DispatchTaskParams feeds the dispatch_task action: a task created directly
// without an originating email.
type DispatchTaskParams struct {
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	TaskType         string         `json:"task_type,omitempty"`
	Priority         string         `json:"priority,omitempty"`
	PrimaryAgent     string         `json:"primary_agent,omitempty"`
	SupportingAgents []string       `json:"supporting_agents,omitempty"`
	Deadline         *time.Time     `json:"deadline,omitempty"`
	Tags             []string       `json:"tags,omitempty"`
	Context          map[string]any `json:"context,omitempty"`
}

// ComposeDraftParams feeds the compose_draft action.
type ComposeDraftParams struct {
	Instructions string `json:"instructions"`
	Recipient    string `json:"recipient,omitempty"`
	Subject      string `json:"subject,omitempty"`
	AgentID      string `json:"agent_id,omitempty"`
}

// SearchEmailsParams feeds the search_emails action.
type SearchEmailsParams struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}
