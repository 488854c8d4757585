package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used by this package.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// reader returns the active random source.
func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// Bytes returns n cryptographically secure random bytes.
// It never falls back to a non-cryptographic generator: if the operating
// system source cannot be read, it returns ErrRandomUnavailable.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(reader(), b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return b, nil
}
