package crypto

import "crypto/subtle"

// Equal reports whether a and b are equal without leaking, through timing,
// the position of the first differing byte. A length mismatch returns false
// immediately: lengths are not secret here, only content is. Callers
// comparing digests must validate the expected length before calling so the
// comparison always runs over the fixed digest size.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
