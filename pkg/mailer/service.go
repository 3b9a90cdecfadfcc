package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskwire/taskwire/pkg/config"
)

// Service handles result delivery.
// Nil-safe: all methods are no-ops when service is nil, so deployments
// without a mail provider simply skip the delivery step.
type Service struct {
	mailer Mailer
	from   string
	logger *slog.Logger
}

// NewService creates a delivery service from config.
// Returns nil when delivery is disabled or no provider is configured.
func NewService(cfg *config.MailerConfig) *Service {
	if !cfg.DeliveryEnabled() || cfg.BaseURL == "" || cfg.Domain == "" {
		return nil
	}
	return &Service{
		mailer: NewHTTPMailer(cfg),
		from:   cfg.From,
		logger: slog.Default().With("component", "mailer-service"),
	}
}

// NewServiceWithMailer creates a Service backed by a pre-built Mailer.
// Useful for tests with a fake provider.
func NewServiceWithMailer(m Mailer, from string) *Service {
	return &Service{
		mailer: m,
		from:   from,
		logger: slog.Default().With("component", "mailer-service"),
	}
}

// Enabled reports whether delivery can be attempted at all.
func (s *Service) Enabled() bool {
	return s != nil && s.mailer != nil
}

// DeliverResult renders the execution report and sends it to the requester.
// The error is returned so the caller's retry policy applies; a delivery
// failure must not be silently swallowed here because the task's dispatched
// status depends on the outcome.
func (s *Service) DeliverResult(ctx context.Context, input DeliveryInput) error {
	if s == nil {
		return nil
	}
	if input.Recipient == "" {
		return fmt.Errorf("delivery input has no recipient")
	}

	msg := BuildResultMessage(s.from, input)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("Result delivery failed",
			"task_id", input.TaskID,
			"recipient", input.Recipient,
			"error", err)
		return err
	}

	s.logger.Info("Result delivered",
		"task_id", input.TaskID,
		"recipient", input.Recipient)
	return nil
}
