package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
)

// recordingMailer captures sent messages for assertions.
type recordingMailer struct {
	sent []OutboundMessage
	err  error
}

func (r *recordingMailer) Send(_ context.Context, msg OutboundMessage) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	assert.False(t, s.Enabled())

	err := s.DeliverResult(context.Background(), DeliveryInput{
		TaskID:    "task-1",
		Recipient: "alice@example.com",
	})
	assert.NoError(t, err, "nil service skips delivery")
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when delivery disabled", func(t *testing.T) {
		svc := NewService(&config.MailerConfig{
			Enabled: config.BoolPtr(false),
			BaseURL: "https://api.mailgun.net/v3",
			Domain:  "mail.example.com",
			APIKey:  "key-test",
		})
		assert.Nil(t, svc)
	})

	t.Run("returns nil without provider endpoint", func(t *testing.T) {
		svc := NewService(&config.MailerConfig{APIKey: "key-test"})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(&config.MailerConfig{
			BaseURL: "https://api.mailgun.net/v3",
			Domain:  "mail.example.com",
			APIKey:  "key-test",
			From:    "taskwire@mail.example.com",
		})
		require.NotNil(t, svc)
		assert.True(t, svc.Enabled())
	})
}

func TestService_DeliverResult(t *testing.T) {
	t.Run("renders and sends", func(t *testing.T) {
		rec := &recordingMailer{}
		svc := NewServiceWithMailer(rec, "taskwire@mail.example.com")

		err := svc.DeliverResult(context.Background(), DeliveryInput{
			TaskID:    "task-1",
			Title:     "Login broken",
			Recipient: "alice@example.com",
			Subject:   "Login broken",
			MessageID: "<msg-1@example.com>",
			Report:    sampleReport(),
		})
		require.NoError(t, err)
		require.Len(t, rec.sent, 1)
		assert.Equal(t, "taskwire@mail.example.com", rec.sent[0].From)
		assert.Equal(t, "Re: Login broken", rec.sent[0].Subject)
		assert.Equal(t, "<msg-1@example.com>", rec.sent[0].InReplyTo)
	})

	t.Run("propagates send errors for retry", func(t *testing.T) {
		rec := &recordingMailer{err: errors.New("provider down")}
		svc := NewServiceWithMailer(rec, "taskwire@mail.example.com")

		err := svc.DeliverResult(context.Background(), DeliveryInput{
			TaskID:    "task-1",
			Title:     "Login broken",
			Recipient: "alice@example.com",
		})
		assert.ErrorContains(t, err, "provider down")
	})

	t.Run("rejects missing recipient", func(t *testing.T) {
		rec := &recordingMailer{}
		svc := NewServiceWithMailer(rec, "taskwire@mail.example.com")

		err := svc.DeliverResult(context.Background(), DeliveryInput{TaskID: "task-1"})
		assert.Error(t, err)
		assert.Empty(t, rec.sent)
	})
}
