package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/resilience"
)

// HTTPMailer posts messages to a Mailgun-style provider endpoint:
// POST {base_url}/{domain}/messages as a multipart form, authenticated with
// basic auth user "api" and the API key as password.
type HTTPMailer struct {
	baseURL string
	domain  string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPMailer creates a mailer for the configured provider.
func NewHTTPMailer(cfg *config.MailerConfig) *HTTPMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPMailer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		domain:  cfg.Domain,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "http-mailer"),
	}
}

// Send posts the message. 429 and 5xx responses come back as transient
// errors so the caller's retry policy applies; other 4xx are permanent.
func (m *HTTPMailer) Send(ctx context.Context, msg OutboundMessage) error {
	if len(msg.To) == 0 {
		return resilience.NewPermanentError(nil, "outbound message has no recipients")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeMessageForm(w, msg); err != nil {
		return fmt.Errorf("failed to encode message form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize message form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", m.baseURL, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to build delivery request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.SetBasicAuth("api", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return resilience.NewTransientError(err, "mail provider unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		sendErr := fmt.Errorf("mail provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		m.logger.Warn("Delivery rejected by provider",
			"status", resp.StatusCode,
			"to", msg.To,
			"subject", msg.Subject)
		return resilience.ClassifyStatusCode(resp.StatusCode, sendErr)
	}

	m.logger.Info("Message delivered",
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}

// writeMessageForm encodes the message as Mailgun form fields.
func writeMessageForm(w *multipart.Writer, msg OutboundMessage) error {
	fields := [][2]string{
		{"from", msg.From},
		{"subject", msg.Subject},
		{"text", msg.Text},
	}
	for _, to := range msg.To {
		fields = append(fields, [2]string{"to", to})
	}
	for _, cc := range msg.CC {
		fields = append(fields, [2]string{"cc", cc})
	}
	if msg.InReplyTo != "" {
		fields = append(fields, [2]string{"h:In-Reply-To", msg.InReplyTo})
	}
	if msg.References != "" {
		fields = append(fields, [2]string{"h:References", msg.References})
	}
	for _, tag := range msg.Tags {
		fields = append(fields, [2]string{"o:tag", tag})
	}

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}
