package credvault

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/credvault/core-go/internal/crypto"
)

func TestGenerateRecoveryKit(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatalf("GenerateRecoveryKit() error = %v", err)
	}

	if len(kit.PublicKey) != crypto.MLKEMPublicKeySize {
		t.Errorf("public key size = %d, want %d", len(kit.PublicKey), crypto.MLKEMPublicKeySize)
	}
	if len(kit.SecretKey) != crypto.MLKEMSecretKeySize {
		t.Errorf("secret key size = %d, want %d", len(kit.SecretKey), crypto.MLKEMSecretKeySize)
	}
	if kit.PublicKeyB64 == "" {
		t.Error("public key base64 is empty")
	}

	other, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(kit.SecretKey, other.SecretKey) {
		t.Error("two generated kits share a secret key")
	}
}

func TestRecoveryKitFromSecretKey(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}

	restored, err := RecoveryKitFromSecretKey(kit.SecretKey)
	if err != nil {
		t.Fatalf("RecoveryKitFromSecretKey() error = %v", err)
	}
	if !bytes.Equal(restored.PublicKey, kit.PublicKey) {
		t.Error("restored public key differs from original")
	}
	if restored.PublicKeyB64 != kit.PublicKeyB64 {
		t.Error("restored public key encoding differs from original")
	}
}

func TestRecoveryKitFromSecretKey_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		secretKey []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"short", make([]byte, crypto.MLKEMSecretKeySize-1)},
		{"long", make([]byte, crypto.MLKEMSecretKeySize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RecoveryKitFromSecretKey(tt.secretKey); !errors.Is(err, ErrInvalidRecoveryKey) {
				t.Errorf("error = %v, want ErrInvalidRecoveryKey", err)
			}
		})
	}
}

func TestSealedExportRoundTrip(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}
	credentials := testCredentials()

	payload, err := SealExport(credentials, kit.PublicKey)
	if err != nil {
		t.Fatalf("SealExport() error = %v", err)
	}

	restored, err := OpenSealedExport(payload, kit)
	if err != nil {
		t.Fatalf("OpenSealedExport() error = %v", err)
	}
	if !reflect.DeepEqual(restored, credentials) {
		t.Errorf("restored credentials differ:\ngot  %+v\nwant %+v", restored, credentials)
	}
}

func TestSealedExportContainerShape(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}

	payload, err := SealExport(testCredentials(), kit.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	var container sealedContainer
	if err := json.Unmarshal([]byte(payload), &container); err != nil {
		t.Fatalf("container is not valid JSON: %v", err)
	}
	if container.Version != SealedExportVersion {
		t.Errorf("version = %d, want %d", container.Version, SealedExportVersion)
	}
	if container.Algs != crypto.SealAlgs {
		t.Errorf("algs = %q, want %q", container.Algs, crypto.SealAlgs)
	}

	ctKem, err := crypto.FromBase64URL(container.CtKem)
	if err != nil {
		t.Fatalf("ctKem encoding: %v", err)
	}
	if len(ctKem) != crypto.MLKEMCiphertextSize {
		t.Errorf("ctKem size = %d, want %d", len(ctKem), crypto.MLKEMCiphertextSize)
	}
}

func TestSealExport_InvalidPublicKey(t *testing.T) {
	tests := []struct {
		name      string
		publicKey []byte
	}{
		{"nil", nil},
		{"short", make([]byte, crypto.MLKEMPublicKeySize-1)},
		{"long", make([]byte, crypto.MLKEMPublicKeySize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SealExport(testCredentials(), tt.publicKey); !errors.Is(err, ErrInvalidRecoveryKey) {
				t.Errorf("error = %v, want ErrInvalidRecoveryKey", err)
			}
		})
	}
}

func TestOpenSealedExport_WrongKit(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}
	wrongKit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}

	payload, err := SealExport(testCredentials(), kit.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := OpenSealedExport(payload, wrongKit); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpenSealedExport_NilKit(t *testing.T) {
	if _, err := OpenSealedExport("{}", nil); !errors.Is(err, ErrInvalidRecoveryKey) {
		t.Errorf("error = %v, want ErrInvalidRecoveryKey", err)
	}
}

func TestOpenSealedExport_Tampered(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}
	payload, err := SealExport(testCredentials(), kit.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	var base sealedContainer
	if err := json.Unmarshal([]byte(payload), &base); err != nil {
		t.Fatal(err)
	}

	flip := func(encoded string) string {
		raw, err := crypto.FromBase64URL(encoded)
		if err != nil {
			t.Fatal(err)
		}
		raw[0] ^= 0x01
		return crypto.ToBase64URL(raw)
	}

	tests := []struct {
		name   string
		mutate func(c *sealedContainer)
	}{
		{"ciphertext bit flip", func(c *sealedContainer) { c.Ciphertext = flip(c.Ciphertext) }},
		{"iv bit flip", func(c *sealedContainer) { c.IV = flip(c.IV) }},
		{"kem ciphertext bit flip", func(c *sealedContainer) { c.CtKem = flip(c.CtKem) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := base
			tt.mutate(&container)

			tampered, err := json.Marshal(container)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := OpenSealedExport(string(tampered), kit); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("error = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestOpenSealedExport_Malformed(t *testing.T) {
	kit, err := GenerateRecoveryKit()
	if err != nil {
		t.Fatal(err)
	}
	payload, err := SealExport(testCredentials(), kit.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	var base sealedContainer
	if err := json.Unmarshal([]byte(payload), &base); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(c *sealedContainer)
	}{
		{"wrong version", func(c *sealedContainer) { c.Version = 99 }},
		{"unknown algs", func(c *sealedContainer) { c.Algs = "RSA-OAEP:AES-128-CBC" }},
		{"bad ctKem encoding", func(c *sealedContainer) { c.CtKem = "!!!" }},
		{"short ctKem", func(c *sealedContainer) { c.CtKem = crypto.ToBase64URL([]byte{1, 2, 3}) }},
		{"bad iv encoding", func(c *sealedContainer) { c.IV = "!!!" }},
		{"short iv", func(c *sealedContainer) { c.IV = crypto.ToBase64URL(make([]byte, 8)) }},
		{"bad ciphertext encoding", func(c *sealedContainer) { c.Ciphertext = "!!!" }},
		{"short ciphertext", func(c *sealedContainer) { c.Ciphertext = crypto.ToBase64URL(make([]byte, 8)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := base
			tt.mutate(&container)

			mangled, err := json.Marshal(container)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := OpenSealedExport(string(mangled), kit); !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("error = %v, want ErrMalformedPayload", err)
			}
		})
	}

	t.Run("not json", func(t *testing.T) {
		if _, err := OpenSealedExport("not json", kit); !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("error = %v, want ErrMalformedPayload", err)
		}
	})
}
