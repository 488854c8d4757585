package credvault

import (
	"fmt"

	"github.com/credvault/core-go/internal/crypto"
)

// PasswordHash is the parsed form of an encoded password hash. It is
// immutable once constructed: created by [Hash] (via its encoded form) or
// [ParseHash], consumed read-only by verification and tooling.
type PasswordHash struct {
	// N is the scrypt CPU/memory cost parameter (a power of two).
	N int
	// R is the scrypt block size parameter.
	R int
	// P is the scrypt parallelization parameter.
	P int
	// Salt is the 16-byte random salt.
	Salt []byte
	// Digest is the 32-byte scrypt digest.
	Digest []byte
}

// Hash hashes a password with scrypt and returns the encoded form:
//
//	scrypt$<N>$<r>$<p>$<salt_base64>$<digest_base64>
//
// A fresh 16-byte salt is generated for every call, so hashing the same
// password twice produces different encoded strings that both verify.
// The default parameters are N=32768, r=8, p=1; [WithScryptParams]
// overrides them within the accepted bounds.
//
// An empty password returns ErrInvalidInput. A failed random source returns
// ErrRandomSourceUnavailable.
func Hash(password string, opts ...HashOption) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}

	cfg := hashConfig{params: crypto.DefaultScryptParams()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.params.Validate(); err != nil {
		return "", &ParameterError{Param: "scrypt", Message: err.Error()}
	}

	salt, err := crypto.Bytes(crypto.HashSaltSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	digest, err := crypto.ScryptDigest([]byte(password), salt, cfg.params)
	if err != nil {
		return "", err
	}

	return crypto.EncodeHash(cfg.params, salt, digest), nil
}

// Verify checks a password against an encoded hash. It never returns an
// error: any malformed, hostile, or out-of-bounds input yields false.
//
// Validation runs in a fixed order: field count and algorithm tag, integer
// parsing of N/r/p, parameter bounds (N a power of two within [2^10, 2^20],
// r within [1,32], p within [1,16]), then base64 decoding and digest sizing.
// Only after that is the expensive scrypt recomputation performed with the
// parsed parameters. The parameter bounds make it safe to verify against
// attacker-supplied hash strings: an encoded hash can never demand
// excessive memory or CPU.
//
// The digest comparison is constant-time over the fixed 32-byte digest
// length, which the structural validation has already enforced.
func Verify(password, encoded string) bool {
	params, salt, digest, err := crypto.ParseHash(encoded)
	if err != nil {
		return false
	}

	computed, err := crypto.ScryptDigest([]byte(password), salt, params)
	if err != nil {
		return false
	}
	defer crypto.Wipe(computed)

	return crypto.Equal(computed, digest)
}

// ParseHash parses an encoded hash into its structured form. Structural
// failures return an error matching ErrMalformedEncoding. This is a tooling
// surface; verification should go through [Verify], which converts parse
// failures to a boolean.
func ParseHash(encoded string) (*PasswordHash, error) {
	params, salt, digest, err := crypto.ParseHash(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	return &PasswordHash{
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Salt:   salt,
		Digest: digest,
	}, nil
}

// Encode reconstructs the six-field encoded string. Encoding is symmetric
// with [ParseHash]: parse followed by encode reproduces the input
// byte-for-byte.
func (h *PasswordHash) Encode() string {
	return crypto.EncodeHash(crypto.ScryptParams{N: h.N, R: h.R, P: h.P}, h.Salt, h.Digest)
}
