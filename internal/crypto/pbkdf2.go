package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKeyPBKDF2 derives an AES-256 key from a password using
// PBKDF2-HMAC-SHA-256. The derivation is deterministic: identical password,
// salt, and iteration count always produce the same key, which is what lets
// the same export or master password unlock the same ciphertext.
func DeriveKeyPBKDF2(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, AESKeySize, sha256.New)
}
