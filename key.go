package credvault

import (
	"fmt"

	"github.com/credvault/core-go/internal/crypto"
)

// KeySize is the size of a symmetric key in bytes (256 bits for AES-256).
const KeySize = crypto.AESKeySize

// DefaultIterations is the default PBKDF2-HMAC-SHA-256 iteration count used
// by DeriveKey.
const DefaultIterations = crypto.DefaultIterations

// SymmetricKey is an opaque handle around 32 raw key bytes, usable only for
// AES-256-GCM encryption and decryption. Treat it as opaque: the raw bytes
// leave the handle only through [SymmetricKey.ExportBytes], a controlled
// escape hatch for persistence layers.
//
// A key is owned by whichever component derived or generated it. Call
// [SymmetricKey.Destroy] when the key is superseded, e.g. on password
// change. Destruction is the owner's responsibility and is not synchronized
// with concurrent readers.
type SymmetricKey struct {
	raw       []byte
	destroyed bool
}

// DeriveKey derives a symmetric key from a password using
// PBKDF2-HMAC-SHA-256. The derivation is deterministic: the same password,
// salt, and iteration count always produce a byte-identical key.
//
// The default iteration count is 600000; [WithIterations] overrides it.
// Iteration counts below 1 and empty salts return errors matching
// ErrInvalidParameter. There is no upper iteration bound beyond platform
// performance.
func DeriveKey(password string, salt []byte, opts ...DeriveOption) (*SymmetricKey, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}
	if len(salt) == 0 {
		return nil, &ParameterError{Param: "salt", Message: "must not be empty"}
	}

	cfg := deriveConfig{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.iterations < 1 {
		return nil, &ParameterError{Param: "iterations", Message: fmt.Sprintf("must be at least 1, got %d", cfg.iterations)}
	}

	return &SymmetricKey{raw: crypto.DeriveKeyPBKDF2([]byte(password), salt, cfg.iterations)}, nil
}

// NewRandomKey generates a fresh random symmetric key.
func NewRandomKey() (*SymmetricKey, error) {
	raw, err := crypto.Bytes(KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return &SymmetricKey{raw: raw}, nil
}

// KeyFromBytes constructs a key handle from raw key bytes, e.g. bytes
// previously persisted via ExportBytes. The input must be exactly 32 bytes
// and is copied; the caller should wipe its own copy.
func KeyFromBytes(b []byte) (*SymmetricKey, error) {
	if len(b) != KeySize {
		return nil, &ParameterError{Param: "key", Message: fmt.Sprintf("must be %d bytes, got %d", KeySize, len(b))}
	}
	raw := make([]byte, KeySize)
	copy(raw, b)
	return &SymmetricKey{raw: raw}, nil
}

// ExportBytes returns a copy of the raw key bytes. This is the only
// sanctioned way key material leaves the handle; use it solely for
// controlled persistence.
func (k *SymmetricKey) ExportBytes() ([]byte, error) {
	raw, err := k.bytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Destroy wipes the key material (random overwrite, then zeros) and marks
// the handle unusable. Every subsequent use returns ErrKeyDestroyed.
// Destroy is idempotent.
func (k *SymmetricKey) Destroy() {
	if k.destroyed {
		return
	}
	crypto.Wipe(k.raw)
	k.destroyed = true
}

// bytes returns the raw key material for internal use.
func (k *SymmetricKey) bytes() ([]byte, error) {
	if k == nil || k.raw == nil {
		return nil, fmt.Errorf("%w: nil key", ErrInvalidParameter)
	}
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	return k.raw, nil
}
