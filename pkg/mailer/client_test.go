package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/resilience"
)

func newTestMailer(t *testing.T, handler http.HandlerFunc) *HTTPMailer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPMailer(&config.MailerConfig{
		BaseURL: server.URL,
		Domain:  "mail.example.com",
		APIKey:  "key-test",
		From:    "taskwire@mail.example.com",
		Timeout: 5 * time.Second,
	})
}

func sampleMessage() OutboundMessage {
	return OutboundMessage{
		From:       "taskwire@mail.example.com",
		To:         []string{"alice@example.com"},
		CC:         []string{"team@example.com"},
		Subject:    "Re: Login broken",
		Text:       "All fixed.",
		InReplyTo:  "<msg-1@example.com>",
		References: "<msg-1@example.com>",
		Tags:       []string{"task-result"},
	}
}

func TestHTTPMailer_Send(t *testing.T) {
	t.Run("posts multipart form with basic auth", func(t *testing.T) {
		var gotPath, gotUser, gotPass string
		var gotForm map[string][]string

		m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotForm = r.MultipartForm.Value
			w.WriteHeader(http.StatusOK)
		})

		err := m.Send(context.Background(), sampleMessage())
		require.NoError(t, err)

		assert.Equal(t, "/mail.example.com/messages", gotPath)
		assert.Equal(t, "api", gotUser)
		assert.Equal(t, "key-test", gotPass)
		assert.Equal(t, []string{"alice@example.com"}, gotForm["to"])
		assert.Equal(t, []string{"team@example.com"}, gotForm["cc"])
		assert.Equal(t, []string{"Re: Login broken"}, gotForm["subject"])
		assert.Equal(t, []string{"All fixed."}, gotForm["text"])
		assert.Equal(t, []string{"<msg-1@example.com>"}, gotForm["h:In-Reply-To"])
		assert.Equal(t, []string{"<msg-1@example.com>"}, gotForm["h:References"])
		assert.Equal(t, []string{"task-result"}, gotForm["o:tag"])
	})

	t.Run("5xx is transient", func(t *testing.T) {
		m := newTestMailer(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream busted", http.StatusBadGateway)
		})

		err := m.Send(context.Background(), sampleMessage())
		require.Error(t, err)
		assert.True(t, resilience.IsTransient(err))
	})

	t.Run("429 is transient", func(t *testing.T) {
		m := newTestMailer(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		})

		err := m.Send(context.Background(), sampleMessage())
		require.Error(t, err)
		assert.True(t, resilience.IsTransient(err))
	})

	t.Run("401 is permanent", func(t *testing.T) {
		m := newTestMailer(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		})

		err := m.Send(context.Background(), sampleMessage())
		require.Error(t, err)
		assert.True(t, resilience.IsPermanent(err))
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("connection failure is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close() // refuse connections

		m := NewHTTPMailer(&config.MailerConfig{
			BaseURL: server.URL,
			Domain:  "mail.example.com",
			APIKey:  "key-test",
			Timeout: time.Second,
		})

		err := m.Send(context.Background(), sampleMessage())
		require.Error(t, err)
		assert.True(t, resilience.IsTransient(err))
	})

	t.Run("no recipients is permanent", func(t *testing.T) {
		var called atomic.Bool
		m := newTestMailer(t, func(w http.ResponseWriter, _ *http.Request) {
			called.Store(true)
			w.WriteHeader(http.StatusOK)
		})

		msg := sampleMessage()
		msg.To = nil
		err := m.Send(context.Background(), msg)
		require.Error(t, err)
		assert.True(t, resilience.IsPermanent(err))
		assert.False(t, called.Load(), "should not hit the provider without recipients")
	})
}

func TestNoopMailer(t *testing.T) {
	err := NoopMailer{}.Send(context.Background(), sampleMessage())
	assert.NoError(t, err)
}
