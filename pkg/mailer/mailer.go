// Package mailer delivers task results back to requesters over a
// Mailgun-style HTTP provider API.
package mailer

import (
	"context"
	"log/slog"
)

// OutboundMessage is a fully rendered mail ready for delivery.
type OutboundMessage struct {
	From    string
	To      []string
	CC      []string
	Subject string
	Text    string

	// InReplyTo and References carry the original Message-ID so mail
	// clients thread the result under the requester's email.
	InReplyTo  string
	References string

	// Tags are provider-side analytics labels (o:tag fields).
	Tags []string
}

// Mailer sends rendered messages through a delivery provider.
type Mailer interface {
	Send(ctx context.Context, msg OutboundMessage) error
}

// NoopMailer accepts and drops every message. Used by deployments without
// outbound delivery and as the default in tests.
type NoopMailer struct{}

// Send logs the message at debug level and reports success.
func (NoopMailer) Send(_ context.Context, msg OutboundMessage) error {
	slog.Debug("NoopMailer dropping message",
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}
