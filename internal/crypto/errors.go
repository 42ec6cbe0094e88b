package crypto

import "errors"

var (
	// ErrKeyLengthMismatch is returned when the key share or the secret does
	// not decode to the AES-128 key size, or when the two decode to different
	// lengths. No key can be derived in that case.
	ErrKeyLengthMismatch = errors.New("key length mismatch")

	// ErrInvalidKeySize is returned when a reconstructed key of the wrong
	// size is handed to the payload cipher.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrMalformedPayload is returned when the encoded payload is not valid
	// hex or is too short to contain a nonce and an authentication tag.
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify: tampered ciphertext, wrong key, or wrong nonce.
	ErrDecryptionFailed = errors.New("payload authentication failed")

	// ErrInvalidHex is returned when a hex-encoded value cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex encoding")
)
