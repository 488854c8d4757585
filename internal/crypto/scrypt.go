package crypto

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// hashFieldCount is the number of $-separated fields in an encoded hash:
// tag, N, r, p, salt, digest.
const hashFieldCount = 6

// ScryptParams holds the scrypt cost parameters carried in an encoded hash.
type ScryptParams struct {
	// N is the CPU/memory cost parameter. Must be a power of two in
	// [ScryptMinN, ScryptMaxN].
	N int
	// R is the block size parameter, in [1, ScryptMaxR].
	R int
	// P is the parallelization parameter, in [1, ScryptMaxP].
	P int
}

// DefaultScryptParams returns the parameters used for newly created hashes.
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: ScryptN, R: ScryptR, P: ScryptP}
}

// Validate checks the parameters against the accepted bounds. The bounds
// exist so that attacker-supplied encoded hashes cannot demand excessive
// memory or CPU during verification.
func (p ScryptParams) Validate() error {
	if p.N < ScryptMinN || p.N > ScryptMaxN || !isPowerOfTwo(p.N) {
		return fmt.Errorf("%w: N=%d", ErrInvalidScryptParams, p.N)
	}
	if p.R < 1 || p.R > ScryptMaxR {
		return fmt.Errorf("%w: r=%d", ErrInvalidScryptParams, p.R)
	}
	if p.P < 1 || p.P > ScryptMaxP {
		return fmt.Errorf("%w: p=%d", ErrInvalidScryptParams, p.P)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ScryptDigest computes the scrypt digest of password under the given salt
// and parameters. The parameters must already be validated.
func ScryptDigest(password, salt []byte, params ScryptParams) ([]byte, error) {
	digest, err := scrypt.Key(password, salt, params.N, params.R, params.P, DigestSize)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	return digest, nil
}

// EncodeHash renders an encoded password hash:
//
//	scrypt$<N>$<r>$<p>$<salt_base64>$<digest_base64>
//
// Exactly five $ separators, six fields, no surrounding whitespace.
func EncodeHash(params ScryptParams, salt, digest []byte) string {
	return fmt.Sprintf("%s$%d$%d$%d$%s$%s",
		HashTag, params.N, params.R, params.P, ToBase64(salt), ToBase64(digest))
}

// ParseHash parses and validates an encoded password hash. The input is
// attacker-controlled text and is treated as opaque parameters throughout:
// structural validation happens in a fixed order, and every failure returns
// an error wrapping ErrMalformedHash before any expensive computation runs.
func ParseHash(encoded string) (ScryptParams, []byte, []byte, error) {
	var params ScryptParams

	fields := strings.Split(encoded, "$")
	if len(fields) != hashFieldCount {
		return params, nil, nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedHash, hashFieldCount, len(fields))
	}
	if fields[0] != HashTag {
		return params, nil, nil, fmt.Errorf("%w: unknown algorithm tag %q", ErrMalformedHash, fields[0])
	}

	n, err := parsePositiveInt(fields[1])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: N: %v", ErrMalformedHash, err)
	}
	r, err := parsePositiveInt(fields[2])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: r: %v", ErrMalformedHash, err)
	}
	p, err := parsePositiveInt(fields[3])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: p: %v", ErrMalformedHash, err)
	}

	params = ScryptParams{N: n, R: r, P: p}
	if err := params.Validate(); err != nil {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	salt, err := FromBase64(fields[4])
	if err != nil {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	if len(salt) == 0 {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: empty salt", ErrMalformedHash)
	}

	digest, err := FromBase64(fields[5])
	if err != nil {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: digest: %v", ErrMalformedHash, err)
	}
	if len(digest) != DigestSize {
		return ScryptParams{}, nil, nil, fmt.Errorf("%w: digest size %d, expected %d", ErrMalformedHash, len(digest), DigestSize)
	}

	return params, salt, digest, nil
}

// parsePositiveInt parses a base-10 positive integer. Signs, whitespace,
// leading-plus forms, and values that overflow int are all rejected.
func parsePositiveInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	// strconv.Atoi accepts a leading sign; an explicit digit check keeps
	// the accepted grammar to plain decimal digits.
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a base-10 integer: %q", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %v", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return int(n), nil
}
