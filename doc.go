// Package credvault is the cryptographic core of the CredVault credential
// vault. It hashes and verifies master and account passwords, derives and
// manages symmetric keys, performs authenticated encryption of vault
// contents, and serializes credential collections into password-protected
// or recovery-key-sealed export containers.
//
// The package treats every encoded input as hostile: hash strings and
// export containers are validated structurally, with bounded parameters,
// before any expensive computation runs, and all secret comparisons are
// constant-time.
//
// # Password Hashing
//
// [Hash] produces a self-describing scrypt hash string and [Verify] checks
// a password against one:
//
//	encoded, err := credvault.Hash(masterPassword)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if credvault.Verify(masterPassword, encoded) {
//	    // unlock the vault
//	}
//
// Verify never returns an error: malformed or hostile hash strings simply
// fail verification.
//
// # Encryption
//
// Vault contents are encrypted with AES-256-GCM under either a derived key
// or a random one:
//
//	env, err := credvault.EncryptWithPassword(secret, masterPassword)
//	...
//	plaintext, err := credvault.DecryptWithPassword(env, masterPassword)
//
// Every encryption call generates a fresh IV internally. Callers can never
// supply one, so an IV cannot be reused under the same key.
//
// # Key Handling
//
// [SymmetricKey] is an opaque 32-byte AES-256 key handle. Keys are
// deterministic for the same password, salt, and iteration count (see
// [DeriveKey]), which is what lets the same master password unlock the same
// ciphertext. Call [SymmetricKey.Destroy] when a key is superseded, e.g. on
// password change.
//
// Keep secret material secure. Keys, passwords, and digests should never be
// logged, transmitted in plaintext, or stored in version control.
//
// # Generation and Strength
//
// [GeneratePassword] and [GeneratePassphrase] draw from the system secure
// random source with unbiased sampling. Password quality scoring lives in
// the independent strength subpackage.
package credvault
