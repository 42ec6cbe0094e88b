package crypto

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

// RecipientCommitment computes the deterministic commitment hash for a
// recipient address, matching the record the on-chain contract stores.
//
// The address is normalized (surrounding whitespace stripped, lower-cased)
// before hashing, so commitments are case-insensitive. The digest is
// Keccak-256 — the hash the EVM-side verifier uses — returned as a 0x-prefixed
// hex string of CommitmentSize bytes.
func RecipientCommitment(address string) string {
	normalized := strings.ToLower(strings.TrimSpace(address))
	return ToHex(Keccak256([]byte(normalized)))
}

// Keccak256 computes the legacy Keccak-256 digest over the concatenation of
// the given byte slices. Legacy Keccak (not NIST SHA3-256) is used because
// that is what the EVM exposes as keccak256.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
