package webhook

import "errors"

// Verification failures. Handlers map all three to 403; none are retryable.
var (
	// ErrStaleTimestamp indicates the signed timestamp is outside the
	// acceptance window in either direction.
	ErrStaleTimestamp = errors.New("webhook timestamp outside acceptance window")

	// ErrBadSignature indicates the signature did not match, or the
	// timestamp/signature could not be parsed. Format errors fail closed.
	ErrBadSignature = errors.New("webhook signature mismatch")

	// ErrConfigMissing indicates no signing key is configured.
	ErrConfigMissing = errors.New("webhook signing key not configured")
)
