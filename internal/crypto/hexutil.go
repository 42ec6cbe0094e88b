package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FromHex decodes a hex string, accepting an optional 0x/0X prefix.
func FromHex(s string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return data, nil
}

// ToHex encodes bytes as a lowercase hex string with a 0x prefix, matching
// the encoding used by the on-chain contract and the claim-package export.
func ToHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}
