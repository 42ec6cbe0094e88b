package farewell

import (
	"errors"
	"unicode/utf8"

	"github.com/farewellmail/claimer-go/internal/crypto"
)

// Decrypt recovers the plaintext body of the claim package using the
// off-chain secret.
//
// The pipeline is: reconstruct the payload key (skShare XOR secret, both
// 16-byte hex values), then open the encoded payload
// (nonce || ciphertext || tag, AES-128-GCM), then decode the plaintext as
// UTF-8 text. Each stage fails with a distinct error; see DecryptionError.
func (p *ClaimPackage) Decrypt(secretHex string) (string, error) {
	if p.SkShare == "" {
		return "", &MissingFieldError{Field: "skShare"}
	}
	if p.EncryptedPayload == "" {
		return "", &MissingFieldError{Field: "encryptedPayload"}
	}

	key, err := crypto.ReconstructKey(p.SkShare, secretHex)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	payload, err := crypto.FromHex(p.EncryptedPayload)
	if err != nil {
		return "", &DecryptionError{Stage: StagePayloadDecode, Err: err}
	}

	plaintext, err := crypto.DecryptPayload(key, payload)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	if !utf8.Valid(plaintext) {
		return "", &DecryptionError{Stage: StagePlaintextDecode, Err: ErrInvalidEncoding}
	}

	return string(plaintext), nil
}

// wrapCryptoError converts internal crypto errors to public typed errors
// so that errors.Is() checks work correctly.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrKeyLengthMismatch):
		return &DecryptionError{Stage: StageKeyReconstruction, Err: err}
	case errors.Is(err, crypto.ErrMalformedPayload), errors.Is(err, crypto.ErrInvalidKeySize):
		return &DecryptionError{Stage: StagePayloadDecode, Err: err}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return &DecryptionError{Stage: StageAuthentication, Err: err}
	}

	return err
}
