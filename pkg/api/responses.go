package api

import (
	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
)

// WebhookResponse is returned by POST /webhooks/email.
type WebhookResponse struct {
	Status    string `json:"status"` // "queued" or "duplicate"
	TaskID    string `json:"task_id,omitempty"`
	MessageID string `json:"message_id"`
}

// CancelResponse is returned by POST /api/v1/tasks/:id/cancel.
type CancelResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// TaskNotesResponse is returned by GET /api/v1/tasks/:id/notes.
type TaskNotesResponse struct {
	TaskID string          `json:"task_id"`
	Notes  []*ent.TaskNote `json:"notes"`
}

// ConversationResponse is returned by GET /api/v1/tasks/:id/conversation.
type ConversationResponse struct {
	TaskID       string                   `json:"task_id"`
	Conversation []*ent.ConversationEntry `json:"conversation"`
}

// DeadLetterListResponse is returned by GET /api/v1/dlq.
type DeadLetterListResponse struct {
	Entries []*ent.DeadLetter `json:"entries"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

// DLQRetryResponse is returned by POST /api/v1/dlq/retry. Each processed
// entry was either redriven as a fresh task or abandoned at the attempt
// ceiling; the entry status says which.
type DLQRetryResponse struct {
	Processed int               `json:"processed"`
	Entries   []*ent.DeadLetter `json:"entries"`
}

// DispatchResponse is the envelope returned by POST /api/v1/dispatch.
// Fields beyond Status and Action are populated per action.
type DispatchResponse struct {
	Status    string              `json:"status"`
	Action    string              `json:"action"`
	TaskID    string              `json:"task_id,omitempty"`
	MessageID string              `json:"message_id,omitempty"`
	Task      *models.Task        `json:"task,omitempty"`
	Analysis  *router.NLUAnalysis `json:"analysis,omitempty"`
	Draft     string              `json:"draft,omitempty"`
	Results   []*ent.Task         `json:"results,omitempty"`
	Count     int                 `json:"count,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version"`
	Components map[string]ComponentHealth `json:"components"`
	Warnings   []*services.SystemWarning  `json:"warnings,omitempty"`
}

// ComponentHealth is one entry in the health component map.
type ComponentHealth struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SystemWarningsResponse is returned by GET /api/v1/system/warnings.
type SystemWarningsResponse struct {
	Warnings []SystemWarningItem `json:"warnings"`
}

// SystemWarningItem is a single system warning.
type SystemWarningItem struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Details   string `json:"details"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
}

// CacheStatsResponse is returned by GET /api/v1/system/cache.
type CacheStatsResponse struct {
	Result []cache.NamespaceStats `json:"result"`
	Replay *webhook.ReplayStats   `json:"replay,omitempty"`
}

// BreakerStatusResponse is returned by GET /api/v1/system/breakers.
type BreakerStatusResponse struct {
	Breakers []resilience.Snapshot `json:"breakers"`
}

// BreakerResetResponse is returned by POST /api/v1/system/breakers/reset.
type BreakerResetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
