package crypto

import "fmt"

// ReconstructKey combines the on-chain key share with the off-chain secret
// into the AES-128 payload key. Both inputs are hex strings (0x prefix
// optional) and must decode to exactly KeySize bytes.
//
// The combination is a byte-wise XOR, so reconstruction is commutative and
// self-inverse: share XOR secret recovers the key, and key XOR secret
// recovers the share. Only the correct secret yields the correct key.
func ReconstructKey(shareHex, secretHex string) ([]byte, error) {
	share, err := FromHex(shareHex)
	if err != nil {
		return nil, fmt.Errorf("%w: key share: %v", ErrKeyLengthMismatch, err)
	}

	secret, err := FromHex(secretHex)
	if err != nil {
		return nil, fmt.Errorf("%w: secret: %v", ErrKeyLengthMismatch, err)
	}

	if len(share) != KeySize {
		return nil, fmt.Errorf("%w: key share is %d bytes, want %d", ErrKeyLengthMismatch, len(share), KeySize)
	}
	if len(secret) != KeySize {
		return nil, fmt.Errorf("%w: secret is %d bytes, want %d", ErrKeyLengthMismatch, len(secret), KeySize)
	}

	key := make([]byte, KeySize)
	for i := range share {
		key[i] = share[i] ^ secret[i]
	}

	return key, nil
}
