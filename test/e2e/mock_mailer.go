package e2e

import (
	"context"
	"sync"

	"github.com/taskwire/taskwire/pkg/mailer"
)

// CapturingMailer implements mailer.Mailer by recording every message
// instead of sending it. FailWith turns subsequent sends into failures so
// tests can exercise the delivery retry and warning paths.
type CapturingMailer struct {
	mu      sync.Mutex
	sent    []mailer.OutboundMessage
	failErr error
}

// NewCapturingMailer creates an empty capturing mailer.
func NewCapturingMailer() *CapturingMailer {
	return &CapturingMailer{}
}

// Send implements mailer.Mailer.
func (m *CapturingMailer) Send(_ context.Context, msg mailer.OutboundMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

// FailWith makes every subsequent Send return err. Pass nil to restore
// normal capture.
func (m *CapturingMailer) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// Sent returns a copy of the captured messages in send order.
func (m *CapturingMailer) Sent() []mailer.OutboundMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.OutboundMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// SentCount returns how many messages were captured.
func (m *CapturingMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
