package models

import (
	"strings"
	"time"
)

// Attachment describes one email attachment as reported by the provider.
// Content is never stored; only descriptive metadata.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
	URL         string `json:"url,omitempty"`
}

// EmailMetadata captures where a task came from.
type EmailMetadata struct {
	MessageID   string            `json:"message_id"`
	Sender      string            `json:"sender"`
	Recipients  []string          `json:"recipients,omitempty"`
	Subject     string            `json:"subject"`
	Timestamp   time.Time         `json:"timestamp"`
	CC          []string          `json:"cc,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	ThreadID    string            `json:"thread_id,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// InboundEmail is the provider-agnostic envelope handed to the parser:
// headers plus an already-extracted plain-text body.
type InboundEmail struct {
	MessageID   string            `json:"message_id"`
	From        string            `json:"from"`
	Recipient   string            `json:"recipient,omitempty"`
	Subject     string            `json:"subject"`
	CC          []string          `json:"cc,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	InReplyTo   string            `json:"in_reply_to,omitempty"`
	BodyPlain   string            `json:"body_plain"`
	Timestamp   time.Time         `json:"timestamp"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// Metadata converts the inbound envelope into persistable email metadata.
func (e *InboundEmail) Metadata() *EmailMetadata {
	md := &EmailMetadata{
		MessageID:   e.MessageID,
		Sender:      e.From,
		Subject:     e.Subject,
		Timestamp:   e.Timestamp,
		CC:          e.CC,
		ReplyTo:     e.ReplyTo,
		ThreadID:    e.InReplyTo,
		Attachments: e.Attachments,
		Headers:     e.Headers,
	}
	if e.Recipient != "" {
		md.Recipients = []string{e.Recipient}
	}
	return md
}

// SenderAddress returns the bare address portion of From
// ("Ada L <ada@example.com>" → "ada@example.com").
func (e *InboundEmail) SenderAddress() string {
	from := strings.TrimSpace(e.From)
	if open := strings.LastIndex(from, "<"); open >= 0 {
		if close := strings.LastIndex(from, ">"); close > open {
			return strings.TrimSpace(from[open+1 : close])
		}
	}
	return from
}
