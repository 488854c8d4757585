package crypto

import "errors"

var (
	// ErrRandomUnavailable is returned when the operating system secure
	// random source cannot be read.
	ErrRandomUnavailable = errors.New("secure random source unavailable")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when decryption fails. It is a single
	// opaque kind on purpose: callers must not learn whether the key was
	// wrong or the ciphertext was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMalformedHash is returned when an encoded password hash fails
	// structural validation.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrInvalidScryptParams is returned when scrypt parameters are out of
	// the accepted bounds.
	ErrInvalidScryptParams = errors.New("invalid scrypt parameters")

	// ErrInvalidSecretKeySize is returned when a recovery secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a recovery public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when a KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")
)
