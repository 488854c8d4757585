package credvault

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/credvault/core-go/internal/crypto"
)

// ExportVersion is the current export container format version.
const ExportVersion = 1

// exportKDFName identifies the key-derivation function recorded in export
// containers.
const exportKDFName = "pbkdf2-sha256"

// maxExportIterations bounds the iteration count accepted from an export
// container. Attacker-supplied containers must not be able to demand
// arbitrary CPU during import.
const maxExportIterations = 10_000_000

// Credential is one entry of the exported credential collection.
type Credential struct {
	// ID is the unique credential identifier.
	ID string `json:"id"`
	// Service is the site or application the credential belongs to.
	Service string `json:"service"`
	// Username is the account name.
	Username string `json:"username"`
	// Password is the account secret.
	Password string `json:"password"`
	// URL is the service location, if any.
	URL string `json:"url,omitempty"`
	// Notes holds free-form notes.
	Notes string `json:"notes,omitempty"`
	// Tags are caller-defined labels.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt is when the credential was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the credential was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// exportKDF records the key-derivation parameters of an export container.
type exportKDF struct {
	Name       string      `json:"name"`
	Iterations int         `json:"iterations"`
	Salt       Base64Bytes `json:"salt"`
}

// exportContainer is the versioned container wrapping an encrypted
// credential collection.
type exportContainer struct {
	Version    int         `json:"version"`
	KDF        exportKDF   `json:"kdf"`
	IV         Base64Bytes `json:"iv"`
	Ciphertext Base64Bytes `json:"ciphertext"`
}

// validate checks the container structure. Checks run in a fixed order and
// every failure matches ErrMalformedPayload.
func (c *exportContainer) validate() error {
	if c.Version != ExportVersion {
		return &PayloadError{Field: "version", Message: fmt.Sprintf("unsupported version %d, expected %d", c.Version, ExportVersion)}
	}
	if c.KDF.Name != exportKDFName {
		return &PayloadError{Field: "kdf.name", Message: fmt.Sprintf("unsupported KDF %q", c.KDF.Name)}
	}
	if c.KDF.Iterations < 1 || c.KDF.Iterations > maxExportIterations {
		return &PayloadError{Field: "kdf.iterations", Message: fmt.Sprintf("out of range: %d", c.KDF.Iterations)}
	}
	if len(c.KDF.Salt) != EnvelopeSaltSize {
		return &PayloadError{Field: "kdf.salt", Message: fmt.Sprintf("size %d, expected %d", len(c.KDF.Salt), EnvelopeSaltSize)}
	}
	if len(c.IV) != IVSize {
		return &PayloadError{Field: "iv", Message: fmt.Sprintf("size %d, expected %d", len(c.IV), IVSize)}
	}
	if len(c.Ciphertext) < crypto.AESTagSize {
		return &PayloadError{Field: "ciphertext", Message: "too short"}
	}
	return nil
}

// SerializeExport serializes a credential collection into a versioned,
// password-protected export container. The collection is JSON-encoded,
// encrypted with a key derived from exportPassword (fresh 32-byte salt,
// default iteration count), and wrapped in a JSON container recording the
// format version and key-derivation parameters.
//
// The export password should be distinct from the master password; the
// container gives an attacker an offline cracking target.
func SerializeExport(credentials []Credential, exportPassword string) (string, error) {
	if exportPassword == "" {
		return "", fmt.Errorf("%w: export password must not be empty", ErrInvalidInput)
	}

	plaintext, err := json.Marshal(credentials)
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}
	defer crypto.Wipe(plaintext)

	env, err := EncryptWithPassword(plaintext, exportPassword)
	if err != nil {
		return "", err
	}

	container := exportContainer{
		Version: ExportVersion,
		KDF: exportKDF{
			Name:       exportKDFName,
			Iterations: DefaultIterations,
			Salt:       env.Salt,
		},
		IV:         env.IV,
		Ciphertext: env.Ciphertext,
	}

	payload, err := json.Marshal(container)
	if err != nil {
		return "", fmt.Errorf("encode container: %w", err)
	}

	return string(payload), nil
}

// DeserializeExport reverses SerializeExport. Structurally invalid
// containers return errors matching ErrMalformedPayload; a wrong password
// or tampered ciphertext returns ErrDecryptionFailed with no further
// detail.
func DeserializeExport(payload, exportPassword string) ([]Credential, error) {
	var container exportContainer
	if err := json.Unmarshal([]byte(payload), &container); err != nil {
		return nil, &PayloadError{Message: "invalid JSON container"}
	}
	if err := container.validate(); err != nil {
		return nil, err
	}

	key, err := DeriveKey(exportPassword, container.KDF.Salt, WithIterations(container.KDF.Iterations))
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	plaintext, err := Decrypt(&Envelope{Ciphertext: container.Ciphertext, IV: container.IV}, key)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(plaintext)

	var credentials []Credential
	if err := json.Unmarshal(plaintext, &credentials); err != nil {
		return nil, &PayloadError{Message: "invalid credential list"}
	}

	return credentials, nil
}
