package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
)

func securityService(t *testing.T) *Service {
	t.Helper()
	s := NewService(&config.MaskingConfig{Enabled: true, PatternGroup: "security"})
	require.NotNil(t, s)
	return s
}

func TestService_MaskBody(t *testing.T) {
	s := securityService(t)

	t.Run("masks api keys", func(t *testing.T) {
		body := `Use api_key = "sk_live_abcdefghij1234567890" for staging.`
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_API_KEY__")
		assert.NotContains(t, masked, "sk_live_abcdefghij1234567890")
	})

	t.Run("masks passwords", func(t *testing.T) {
		body := "The db password: hunter2secret needs rotating."
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_PASSWORD__")
		assert.NotContains(t, masked, "hunter2secret")
	})

	t.Run("masks bearer tokens", func(t *testing.T) {
		body := `Authorization uses token=eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.payload`
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_TOKEN__")
		assert.NotContains(t, masked, "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9")
	})

	t.Run("masks PEM blocks", func(t *testing.T) {
		body := "attached cert:\n-----BEGIN CERTIFICATE-----\nMIIBIjANBg\nkqhkiG9w0B\n-----END CERTIFICATE-----\nplease check"
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_CERTIFICATE__")
		assert.NotContains(t, masked, "MIIBIjANBg")
		assert.Contains(t, masked, "please check")
	})

	t.Run("masks ssh keys", func(t *testing.T) {
		body := "add ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIFakeKeyMaterial to the bastion"
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_SSH_KEY__")
		assert.NotContains(t, masked, "AAAAC3NzaC1lZDI1NTE5")
	})

	t.Run("masks github tokens", func(t *testing.T) {
		body := "CI fails with ghp_" + strings.Repeat("a", 36) + " expired"
		masked := s.MaskBody(body)
		assert.Contains(t, masked, "__MASKED_GITHUB_TOKEN__")
	})

	t.Run("leaves email addresses intact", func(t *testing.T) {
		// The security group must not scrub addresses: the content IS email,
		// and "contact bob@example.com" is task content.
		body := "Please loop in bob@example.com on the fix."
		assert.Equal(t, body, s.MaskBody(body))
	})

	t.Run("leaves plain prose untouched", func(t *testing.T) {
		body := "The login page returns a 500 after the last deploy. Steps to reproduce are below."
		assert.Equal(t, body, s.MaskBody(body))
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Equal(t, "", s.MaskBody(""))
	})
}

func TestService_AllGroupMasksEmails(t *testing.T) {
	s := NewService(&config.MaskingConfig{Enabled: true, PatternGroup: "all"})
	require.NotNil(t, s)

	masked := s.MaskBody("forwarded from carol@example.com")
	assert.Contains(t, masked, "__MASKED_EMAIL__")
	assert.NotContains(t, masked, "carol@example.com")
}

func TestNewService(t *testing.T) {
	t.Run("nil when disabled", func(t *testing.T) {
		assert.Nil(t, NewService(&config.MaskingConfig{Enabled: false}))
		assert.Nil(t, NewService(nil))
	})

	t.Run("empty group defaults to security", func(t *testing.T) {
		s := NewService(&config.MaskingConfig{Enabled: true})
		require.NotNil(t, s)
		assert.NotEmpty(t, s.patterns)
	})

	t.Run("unknown group degrades to passthrough", func(t *testing.T) {
		s := NewService(&config.MaskingConfig{Enabled: true, PatternGroup: "nope"})
		require.NotNil(t, s)
		body := `api_key = "sk_live_abcdefghij1234567890"`
		assert.Equal(t, body, s.MaskBody(body))
	})
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service
	body := `password: hunter2secret`
	assert.Equal(t, body, s.MaskBody(body))
}
