// Package crypto provides the cryptographic primitives for the Farewell
// claim-package scheme.
//
// # Algorithm Suite
//
// The package uses the following algorithms:
//
//   - XOR key split: the symmetric key is never stored whole. The on-chain
//     key share XORed with the off-chain secret reconstructs it. Only the
//     holder of the correct secret recovers the correct key.
//
//   - AES-128-GCM: authenticated encryption of the message payload. The
//     encoded payload layout is nonce (12 bytes) || ciphertext || tag (16 bytes).
//
//   - Keccak-256: recipient commitments. This is the hash used by the
//     on-chain verifier, so commitments computed here match the contract's
//     records byte for byte.
//
// # Security Model
//
// Decryption is authenticated: any tampering with the ciphertext, the tag,
// the nonce, or use of a wrong key causes [DecryptPayload] to fail with
// [ErrDecryptionFailed]. No partial plaintext is ever returned.
//
// All functions are pure and deterministic. The package holds no state and
// performs no I/O, so everything here is safe for concurrent use.
package crypto
