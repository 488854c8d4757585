// Package crypto provides the cryptographic primitives for the CredVault core.
// It implements memory-hard password hashing, symmetric key derivation,
// authenticated encryption, and recovery-key encapsulation using modern,
// standardized algorithms.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - scrypt (RFC 7914): Memory-hard password hashing for master and account
//     passwords. Deliberately expensive in memory and CPU to resist
//     brute-force and GPU attacks.
//
//   - PBKDF2-HMAC-SHA-256 (RFC 8018): Key derivation from passwords for
//     vault content encryption. Deterministic: the same password, salt, and
//     iteration count always produce the same key.
//
//   - AES-256-GCM: Authenticated encryption (AEAD) for vault contents.
//     Provides confidentiality and integrity in one primitive.
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation mechanism
//     for the recovery-kit sealed export path.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation from KEM shared secrets with
//     domain separation.
//
// # Security Model
//
// Password hashing and key derivation are distinct paths and must never be
// conflated: scrypt output is a comparison digest, never an encryption key;
// PBKDF2 output is an encryption key, never stored.
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. Nonces are therefore
// generated inside the seal path and never accepted from callers of the
// public API.
//
// Digest comparison uses constant-time equality over the fixed digest
// length. Parsing of encoded hashes validates parameter bounds before any
// expensive computation, so attacker-supplied strings cannot trigger
// resource exhaustion.
//
// # Randomness
//
// All salts, nonces, and generated secrets come from crypto/rand via
// [Bytes]. There is no fallback source: if the operating system generator
// fails, the operation fails.
package crypto
