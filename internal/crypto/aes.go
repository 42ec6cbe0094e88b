package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// DecryptPayload decrypts an encoded claim-package payload using AES-128-GCM.
// The payload layout is: nonce (12 bytes) || ciphertext || tag (16 bytes).
//
// Payloads shorter than MinPayloadSize are rejected with ErrMalformedPayload.
// A tag that does not verify is rejected with ErrDecryptionFailed; no partial
// plaintext is returned in that case.
func DecryptPayload(key, payload []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(payload) < MinPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d (nonce + tag)", ErrMalformedPayload, len(payload), MinPayloadSize)
	}

	nonce := payload[:NonceSize]
	ciphertextWithTag := payload[NonceSize:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertextWithTag, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// EncryptPayload encrypts plaintext using AES-128-GCM and returns the encoded
// payload: nonce (12 bytes) || ciphertext || tag (16 bytes). The claimer only
// ever decrypts; this is the conforming reference used for test fixtures.
func EncryptPayload(key, plaintext, nonce []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(append([]byte{}, nonce...), ciphertext...), nil
}
