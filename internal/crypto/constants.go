package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation of sealed exports.
	HKDFContext = "credvault:export:v1"

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// HashSaltSize is the size of a password-hash salt in bytes.
	HashSaltSize = 16
	// DigestSize is the size of a scrypt password digest in bytes.
	DigestSize = 32

	// ScryptN is the default scrypt CPU/memory cost parameter.
	ScryptN = 32768
	// ScryptR is the default scrypt block size parameter.
	ScryptR = 8
	// ScryptP is the default scrypt parallelization parameter.
	ScryptP = 1

	// ScryptMinN and ScryptMaxN bound the accepted cost parameter when
	// parsing encoded hashes. Values outside this range are rejected to
	// defend against resource exhaustion via attacker-supplied strings.
	ScryptMinN = 1 << 10
	ScryptMaxN = 1 << 20
	// ScryptMaxR is the largest accepted block size parameter.
	ScryptMaxR = 32
	// ScryptMaxP is the largest accepted parallelization parameter.
	ScryptMaxP = 16

	// KeySaltSize is the size of a key-derivation salt in bytes.
	KeySaltSize = 32
	// DefaultIterations is the default PBKDF2-HMAC-SHA-256 iteration count.
	DefaultIterations = 600000

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	PublicKeyOffset = 1152
)

// HashTag is the algorithm tag on encoded password hashes.
const HashTag = "scrypt"

// SealAlgs is the canonical string representation of the sealed-export
// algorithm suite.
var SealAlgs = "ML-KEM-768:AES-256-GCM:HKDF-SHA-512"
