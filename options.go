package credvault

import "github.com/credvault/core-go/internal/crypto"

// hashConfig holds configuration for password hashing.
type hashConfig struct {
	params crypto.ScryptParams
}

// deriveConfig holds configuration for key derivation.
type deriveConfig struct {
	iterations int
}

// passphraseConfig holds configuration for passphrase generation.
type passphraseConfig struct {
	separator  string
	capitalize bool
	digits     int
}

// HashOption configures password hashing.
type HashOption func(*hashConfig)

// DeriveOption configures key derivation.
type DeriveOption func(*deriveConfig)

// PassphraseOption configures passphrase generation.
type PassphraseOption func(*passphraseConfig)

// WithScryptParams overrides the scrypt cost parameters used by Hash.
// The values are validated against the same bounds Verify enforces:
// n a power of two in [2^10, 2^20], r in [1, 32], p in [1, 16].
func WithScryptParams(n, r, p int) HashOption {
	return func(c *hashConfig) {
		c.params = crypto.ScryptParams{N: n, R: r, P: p}
	}
}

// WithIterations overrides the PBKDF2 iteration count used by DeriveKey.
func WithIterations(n int) DeriveOption {
	return func(c *deriveConfig) {
		c.iterations = n
	}
}

// WithSeparator sets the string joining passphrase words. Default "-".
func WithSeparator(sep string) PassphraseOption {
	return func(c *passphraseConfig) {
		c.separator = sep
	}
}

// WithCapitalize capitalizes the first letter of each passphrase word.
func WithCapitalize() PassphraseOption {
	return func(c *passphraseConfig) {
		c.capitalize = true
	}
}

// WithDigits appends n random digits to the passphrase. n is clamped to
// [0, 4].
func WithDigits(n int) PassphraseOption {
	return func(c *passphraseConfig) {
		c.digits = n
	}
}
