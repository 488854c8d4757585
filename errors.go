package credvault

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidInput is returned when a password or payload fails a basic
	// precondition, such as an empty master password.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRandomSourceUnavailable is returned when the operating system
	// secure random source cannot be read. It is fatal and non-recoverable:
	// there is never a fallback to a weaker generator.
	ErrRandomSourceUnavailable = errors.New("secure random source unavailable")

	// ErrMalformedEncoding is returned when an encoded password hash fails
	// structural validation. Verify never surfaces this error; it reports
	// false instead.
	ErrMalformedEncoding = errors.New("malformed hash encoding")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It is a single opaque kind covering tampered ciphertext, a wrong key,
	// and invalid envelope bytes, so callers cannot use it as an oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMissingSalt is returned when password-based decryption is attempted
	// on an envelope that carries no key-derivation salt.
	ErrMissingSalt = errors.New("envelope has no salt")

	// ErrInvalidParameter is returned for out-of-range iteration counts,
	// lengths, and other programmer-facing misuse.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoCharsetSelected is returned when password generation is requested
	// with every character class disabled.
	ErrNoCharsetSelected = errors.New("no character set selected")

	// ErrMalformedPayload is returned when an export container is
	// structurally invalid.
	ErrMalformedPayload = errors.New("malformed export payload")

	// ErrKeyDestroyed is returned when a destroyed symmetric key is used.
	ErrKeyDestroyed = errors.New("symmetric key has been destroyed")

	// ErrInvalidRecoveryKey is returned when recovery-kit key material has
	// the wrong size or encoding.
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")
)

// CredVaultError is implemented by all typed errors in this package.
type CredVaultError interface {
	error
	CredVaultError() // marker method
}

// ParameterError reports a rejected parameter value. It matches
// ErrInvalidParameter via errors.Is.
type ParameterError struct {
	Param   string
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// CredVaultError implements the CredVaultError interface.
func (e *ParameterError) CredVaultError() {}

// PayloadError reports a structurally invalid export container. It matches
// ErrMalformedPayload via errors.Is.
type PayloadError struct {
	Field   string
	Message string
}

func (e *PayloadError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed payload: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed payload: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// CredVaultError implements the CredVaultError interface.
func (e *PayloadError) CredVaultError() {}
