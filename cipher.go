package credvault

import (
	"encoding/json"
	"fmt"

	"github.com/credvault/core-go/internal/crypto"
)

// IVSize is the size of an AES-GCM IV in bytes.
const IVSize = crypto.AESNonceSize

// EnvelopeSaltSize is the size of the key-derivation salt attached to
// password-mode envelopes, in bytes.
const EnvelopeSaltSize = crypto.KeySaltSize

// Base64Bytes is a byte slice that marshals to and from standard base64 in
// JSON. Serialized envelopes and export containers carry all binary fields
// in this form.
type Base64Bytes []byte

// MarshalJSON implements json.Marshaler for Base64Bytes.
func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(crypto.ToBase64(b))
}

// UnmarshalJSON implements json.Unmarshaler for Base64Bytes.
// It accepts standard base64 strings, with URL-safe base64 as a fallback.
func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	if encoded == "" {
		*b = nil
		return nil
	}

	decoded, err := crypto.FromBase64(encoded)
	if err != nil {
		decoded, err = crypto.FromBase64URL(encoded)
		if err != nil {
			return err
		}
	}
	*b = decoded
	return nil
}

// Envelope is the structured bundle needed to decrypt a payload: the
// AES-256-GCM ciphertext (authentication tag appended), the 12-byte IV,
// and, for password-based envelopes only, the 32-byte key-derivation salt.
//
// An envelope is immutable once created. Mutating any field before
// decryption causes the authentication check to fail.
type Envelope struct {
	// Ciphertext is the encrypted payload with the GCM tag appended.
	Ciphertext Base64Bytes `json:"ciphertext"`
	// IV is the 12-byte initialization vector, unique per encryption.
	IV Base64Bytes `json:"iv"`
	// Salt is the key-derivation salt. Present iff the envelope was
	// produced in password-based mode.
	Salt Base64Bytes `json:"salt,omitempty"`
}

// Encrypt encrypts plaintext under the given key with AES-256-GCM.
//
// A fresh 12-byte IV is generated from the secure random source on every
// call. The IV is never derived, never reused, and never accepted from the
// caller: IV reuse under one key breaks both confidentiality and integrity
// of GCM, so uniqueness is enforced structurally here.
func Encrypt(plaintext []byte, key *SymmetricKey) (*Envelope, error) {
	raw, err := key.bytes()
	if err != nil {
		return nil, err
	}

	iv, err := crypto.Bytes(IVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	ciphertext, err := crypto.SealAESGCM(raw, iv, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{Ciphertext: ciphertext, IV: iv}, nil
}

// Decrypt decrypts an envelope under the given key.
//
// Every failure mode (a nil or structurally invalid envelope, an IV of the
// wrong length, tampered ciphertext, a wrong key) returns the single
// opaque ErrDecryptionFailed. The caller learns that decryption failed,
// never why. A destroyed key returns ErrKeyDestroyed, which is caller
// misuse rather than an adversarial condition.
func Decrypt(env *Envelope, key *SymmetricKey) ([]byte, error) {
	raw, err := key.bytes()
	if err != nil {
		return nil, err
	}

	if env == nil || len(env.IV) != IVSize || len(env.Ciphertext) < crypto.AESTagSize {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := crypto.OpenAESGCM(raw, env.IV, env.Ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// EncryptWithPassword encrypts plaintext under a key derived from password.
// A fresh 32-byte salt is generated, a key is derived with the default
// iteration count, and the salt is attached to the returned envelope so
// that DecryptWithPassword can re-derive the same key. The derived key is
// destroyed before returning.
func EncryptWithPassword(plaintext []byte, password string) (*Envelope, error) {
	salt, err := crypto.Bytes(EnvelopeSaltSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	env, err := Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	env.Salt = salt
	return env, nil
}

// DecryptWithPassword decrypts a password-mode envelope. An envelope with
// no salt returns ErrMissingSalt; all decryption failures return the opaque
// ErrDecryptionFailed. The derived key is destroyed before returning.
func DecryptWithPassword(env *Envelope, password string) ([]byte, error) {
	if env == nil {
		return nil, ErrDecryptionFailed
	}
	if len(env.Salt) == 0 {
		return nil, ErrMissingSalt
	}

	key, err := DeriveKey(password, env.Salt)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return Decrypt(&Envelope{Ciphertext: env.Ciphertext, IV: env.IV}, key)
}
