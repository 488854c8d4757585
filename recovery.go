package credvault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/credvault/core-go/internal/crypto"
)

// SealedExportVersion is the current sealed export container format version.
const SealedExportVersion = 1

// RecoveryKit holds a locally generated ML-KEM-768 keypair that can open
// sealed exports without any password. The public key alone is enough to
// seal; the secret key is needed to open.
//
// WARNING: the secret key is equivalent to every password in a sealed
// export. Store it offline, printed or on removable media, never
// alongside the vault itself.
type RecoveryKit struct {
	// PublicKey is the raw ML-KEM-768 public key bytes (1184 bytes).
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes (2400 bytes).
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// sealedContainer is the versioned container wrapping a recovery-sealed
// credential collection. Binary fields are URL-safe base64 without padding.
type sealedContainer struct {
	Version    int    `json:"version"`
	Algs       string `json:"algs"`
	CtKem      string `json:"ctKem"`
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// GenerateRecoveryKit creates a new recovery keypair.
func GenerateRecoveryKit() (*RecoveryKit, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return &RecoveryKit{
		PublicKey:    kp.PublicKey,
		SecretKey:    kp.SecretKey,
		PublicKeyB64: kp.PublicKeyB64,
	}, nil
}

// RecoveryKitFromSecretKey reconstructs a kit from the secret key bytes.
// The public key is embedded in the secret key and is derived from it.
func RecoveryKitFromSecretKey(secretKey []byte) (*RecoveryKit, error) {
	kp, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecoveryKey, err)
	}
	return &RecoveryKit{
		PublicKey:    kp.PublicKey,
		SecretKey:    kp.SecretKey,
		PublicKeyB64: kp.PublicKeyB64,
	}, nil
}

// SealExport serializes a credential collection and seals it to a recovery
// public key: ML-KEM-768 encapsulation, HKDF-SHA-512 key derivation (salted
// with a hash of the KEM ciphertext, domain-separated), then AES-256-GCM
// with a fresh IV. Only the holder of the matching secret key can open the
// result; no password is involved.
func SealExport(credentials []Credential, recoveryPublicKey []byte) (string, error) {
	plaintext, err := json.Marshal(credentials)
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}
	defer crypto.Wipe(plaintext)

	ctKem, sharedSecret, err := crypto.Encapsulate(recoveryPublicKey)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPublicKeySize) {
			return "", fmt.Errorf("%w: %v", ErrInvalidRecoveryKey, err)
		}
		return "", err
	}
	defer crypto.Wipe(sharedSecret)

	key, err := crypto.SealKey(sharedSecret, ctKem)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key)

	iv, err := crypto.Bytes(IVSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	ciphertext, err := crypto.SealAESGCM(key, iv, plaintext)
	if err != nil {
		return "", err
	}

	container := sealedContainer{
		Version:    SealedExportVersion,
		Algs:       crypto.SealAlgs,
		CtKem:      crypto.ToBase64URL(ctKem),
		IV:         crypto.ToBase64URL(iv),
		Ciphertext: crypto.ToBase64URL(ciphertext),
	}

	payload, err := json.Marshal(container)
	if err != nil {
		return "", fmt.Errorf("encode container: %w", err)
	}

	return string(payload), nil
}

// OpenSealedExport opens a sealed export with the recovery kit's secret
// key. Structural failures match ErrMalformedPayload; any cryptographic
// failure is the opaque ErrDecryptionFailed.
func OpenSealedExport(payload string, kit *RecoveryKit) ([]Credential, error) {
	if kit == nil {
		return nil, fmt.Errorf("%w: nil recovery kit", ErrInvalidRecoveryKey)
	}

	var container sealedContainer
	if err := json.Unmarshal([]byte(payload), &container); err != nil {
		return nil, &PayloadError{Message: "invalid JSON container"}
	}
	if container.Version != SealedExportVersion {
		return nil, &PayloadError{Field: "version", Message: fmt.Sprintf("unsupported version %d, expected %d", container.Version, SealedExportVersion)}
	}
	if container.Algs != crypto.SealAlgs {
		return nil, &PayloadError{Field: "algs", Message: fmt.Sprintf("unsupported algorithm suite %q", container.Algs)}
	}

	ctKem, err := crypto.FromBase64URL(container.CtKem)
	if err != nil {
		return nil, &PayloadError{Field: "ctKem", Message: "invalid encoding"}
	}
	if len(ctKem) != crypto.MLKEMCiphertextSize {
		return nil, &PayloadError{Field: "ctKem", Message: fmt.Sprintf("size %d, expected %d", len(ctKem), crypto.MLKEMCiphertextSize)}
	}

	iv, err := crypto.FromBase64URL(container.IV)
	if err != nil {
		return nil, &PayloadError{Field: "iv", Message: "invalid encoding"}
	}
	if len(iv) != IVSize {
		return nil, &PayloadError{Field: "iv", Message: fmt.Sprintf("size %d, expected %d", len(iv), IVSize)}
	}

	ciphertext, err := crypto.FromBase64URL(container.Ciphertext)
	if err != nil {
		return nil, &PayloadError{Field: "ciphertext", Message: "invalid encoding"}
	}
	if len(ciphertext) < crypto.AESTagSize {
		return nil, &PayloadError{Field: "ciphertext", Message: "too short"}
	}

	kp, err := crypto.KeypairFromSecretKey(kit.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecoveryKey, err)
	}

	sharedSecret, err := kp.Decapsulate(ctKem)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer crypto.Wipe(sharedSecret)

	key, err := crypto.SealKey(sharedSecret, ctKem)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	plaintext, err := crypto.OpenAESGCM(key, iv, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer crypto.Wipe(plaintext)

	var credentials []Credential
	if err := json.Unmarshal(plaintext, &credentials); err != nil {
		return nil, &PayloadError{Message: "invalid credential list"}
	}

	return credentials, nil
}
