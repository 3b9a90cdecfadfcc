package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`

	// AdminToken guards the /api/v1 admin surface. Empty disables admin
	// routes entirely rather than leaving them open.
	AdminToken string `yaml:"admin_token,omitempty"`

	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
}

// DefaultServerConfig returns the built-in server settings.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

// WebhookConfig holds inbound webhook authentication settings.
type WebhookConfig struct {
	// SigningKey is the shared HMAC key. Typically injected via
	// {{.TASKWIRE_WEBHOOK_SIGNING_KEY}} in YAML.
	SigningKey string `yaml:"signing_key,omitempty"`

	// MaxAge is the timestamp staleness window.
	MaxAge time.Duration `yaml:"max_age,omitempty"`
}

// DefaultWebhookConfig returns the built-in webhook settings.
func DefaultWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		MaxAge: 120 * time.Second,
	}
}

// MailerConfig holds outbound mail delivery settings.
type MailerConfig struct {
	// Enabled turns delivery on. nil means "enabled when APIKey is set".
	Enabled *bool `yaml:"enabled,omitempty"`

	// BaseURL is the provider messages endpoint
	// (e.g. https://api.mailgun.net/v3).
	BaseURL string `yaml:"base_url,omitempty"`

	// Domain is the sending domain appended to BaseURL.
	Domain string `yaml:"domain,omitempty"`

	// APIKey authenticates as basic-auth user "api".
	APIKey string `yaml:"api_key,omitempty"`

	// From is the sender address for result delivery.
	From string `yaml:"from,omitempty"`

	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// DeliveryEnabled reports whether results should be mailed out.
func (m *MailerConfig) DeliveryEnabled() bool {
	if m == nil {
		return false
	}
	if m.Enabled != nil {
		return *m.Enabled
	}
	return m.APIKey != ""
}

// DefaultMailerConfig returns the built-in mailer settings.
func DefaultMailerConfig() *MailerConfig {
	return &MailerConfig{
		Timeout: 30 * time.Second,
	}
}

// LLMConfig holds LLM sidecar transport settings.
type LLMConfig struct {
	// Address is the gRPC endpoint of the LLM service.
	Address string `yaml:"address,omitempty"`

	// DefaultModel is used when an agent profile has no preferred model.
	DefaultModel string `yaml:"default_model,omitempty"`

	// CallTimeout bounds a single generation call.
	CallTimeout time.Duration `yaml:"call_timeout,omitempty"`

	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM transport settings.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Address:      "localhost:50051",
		DefaultModel: "default",
		CallTimeout:  120 * time.Second,
		MaxTokens:    4096,
		Temperature:  0.2,
	}
}

// RetentionConfig controls background deletion of old records.
type RetentionConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`

	// TaskMaxAge is how long terminal tasks are kept.
	TaskMaxAge time.Duration `yaml:"task_max_age,omitempty"`

	// EventMaxAge is how long audit events are kept.
	EventMaxAge time.Duration `yaml:"event_max_age,omitempty"`

	// CheckInterval is how often the cleanup pass runs.
	CheckInterval time.Duration `yaml:"check_interval,omitempty"`
}

// RetentionEnabled reports whether cleanup should run (default on).
func (r *RetentionConfig) RetentionEnabled() bool {
	return r == nil || r.Enabled == nil || *r.Enabled
}

// DefaultRetentionConfig returns the built-in retention settings.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskMaxAge:    90 * 24 * time.Hour,
		EventMaxAge:   14 * 24 * time.Hour,
		CheckInterval: 1 * time.Hour,
	}
}

// MaskingConfig toggles secret masking of email bodies before persistence.
type MaskingConfig struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group,omitempty"`
}

// DefaultMaskingConfig returns the built-in masking settings.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled:      true,
		PatternGroup: "security",
	}
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }
