// Package masking scrubs credential material out of email bodies before they
// are persisted or fed into agent prompts.
package masking

import (
	"log/slog"

	"github.com/taskwire/taskwire/pkg/config"
)

// Service applies secret masking to inbound email content.
// Created once at application startup. Thread-safe and stateless aside from
// compiled patterns; the pattern set is fixed because config is immutable.
//
// Nil-safe: all methods pass content through unchanged on a nil receiver.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service for the configured pattern group.
// Returns nil when masking is disabled.
func NewService(cfg *config.MaskingConfig) *Service {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	group := cfg.PatternGroup
	if group == "" {
		group = "security"
	}

	s := &Service{patterns: compileGroup(group)}

	slog.Info("Masking service initialized",
		"pattern_group", group,
		"compiled_patterns", len(s.patterns))

	return s
}

// MaskBody scrubs secrets from an email body. Fail-open: content the
// patterns cannot process is returned unchanged, since losing a task request
// is worse than storing a credential the operator chose patterns for.
func (s *Service) MaskBody(body string) string {
	if s == nil || body == "" || len(s.patterns) == 0 {
		return body
	}

	masked := body
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
