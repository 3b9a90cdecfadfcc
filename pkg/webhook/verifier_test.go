package webhook

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedVerifier(key string, maxAge time.Duration, now time.Time) *Verifier {
	v := NewVerifier(key, maxAge)
	v.now = func() time.Time { return now }
	return v
}

func TestVerifierAcceptsValidSignature(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	v := fixedVerifier("signing-key", 120*time.Second, now)

	ts := strconv.FormatInt(now.Unix(), 10)
	sig := v.Sign(ts, "token-abc")

	require.NoError(t, v.Verify(ts, "token-abc", sig))
}

func TestVerifierRejectsWrongKey(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	signer := fixedVerifier("key-one", 120*time.Second, now)
	verifier := fixedVerifier("key-two", 120*time.Second, now)

	ts := strconv.FormatInt(now.Unix(), 10)
	sig := signer.Sign(ts, "token-abc")

	assert.ErrorIs(t, verifier.Verify(ts, "token-abc", sig), ErrBadSignature)
}

func TestVerifierStaleTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	v := fixedVerifier("signing-key", 120*time.Second, now)

	tests := []struct {
		name string
		ts   time.Time
		ok   bool
	}{
		{"fresh", now.Add(-30 * time.Second), true},
		{"at boundary", now.Add(-120 * time.Second), true},
		{"just past boundary", now.Add(-121 * time.Second), false},
		{"far past", now.Add(-time.Hour), false},
		{"future beyond window", now.Add(121 * time.Second), false},
		{"slightly future", now.Add(60 * time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := strconv.FormatInt(tt.ts.Unix(), 10)
			err := v.Verify(ts, "tok", v.Sign(ts, "tok"))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrStaleTimestamp)
			}
		})
	}
}

func TestVerifierFailsClosedOnFormatErrors(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	v := fixedVerifier("signing-key", 120*time.Second, now)
	ts := strconv.FormatInt(now.Unix(), 10)

	t.Run("unparseable timestamp", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("yesterday", "tok", v.Sign(ts, "tok")), ErrBadSignature)
	})
	t.Run("non-hex signature", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(ts, "tok", "zz-not-hex"), ErrBadSignature)
	})
	t.Run("empty signature", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(ts, "tok", ""), ErrBadSignature)
	})
}

func TestVerifierMissingKey(t *testing.T) {
	v := NewVerifier("", 0)
	assert.ErrorIs(t, v.Verify("0", "tok", "00"), ErrConfigMissing)
}

// TestVerifierMutationProperty checks that any single-character corruption of
// a valid signature is rejected while the untouched signature is accepted.
func TestVerifierMutationProperty(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	const hexAlphabet = "0123456789abcdef"

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("valid signature accepted, 1-char mutation rejected", prop.ForAll(
		func(key, token string, idx, shift int) bool {
			v := fixedVerifier(key, 120*time.Second, now)
			ts := strconv.FormatInt(now.Unix(), 10)
			sig := v.Sign(ts, token)

			if v.Verify(ts, token, sig) != nil {
				return false
			}

			pos := idx % len(sig)
			orig := sig[pos]
			repl := orig
			for i := 1; i < len(hexAlphabet)+1 && repl == orig; i++ {
				repl = hexAlphabet[(shift+i)%len(hexAlphabet)]
			}
			mutated := fmt.Sprintf("%s%c%s", sig[:pos], repl, sig[pos+1:])

			return v.Verify(ts, token, mutated) != nil
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.IntRange(0, 63),
		gen.IntRange(0, 15),
	))

	properties.TestingRun(t)
}
