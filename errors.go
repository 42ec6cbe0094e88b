package farewell

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingField is returned when a required field is absent from the
	// message input.
	ErrMissingField = errors.New("required field is missing")

	// ErrMalformedInput is returned when the message input is not valid JSON,
	// has an empty recipient list, or contains a malformed address.
	ErrMalformedInput = errors.New("malformed message input")

	// ErrKeyLengthMismatch is returned when the key share and the off-chain
	// secret do not both decode to the 16-byte key size.
	ErrKeyLengthMismatch = errors.New("key share and secret must both be 16-byte hex values")

	// ErrMalformedPayload is returned when the encrypted payload is not valid
	// hex or is too short to contain a nonce and an authentication tag.
	ErrMalformedPayload = errors.New("encrypted payload is malformed")

	// ErrDecryptionAuthFailed is returned when the payload authentication tag
	// does not verify: tampered ciphertext, wrong key, or wrong nonce.
	ErrDecryptionAuthFailed = errors.New("payload authentication failed")

	// ErrInvalidEncoding is returned when decryption succeeds but the
	// plaintext is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("plaintext is not valid UTF-8")
)

// FarewellError is implemented by all SDK errors.
type FarewellError interface {
	error
	FarewellError() // marker method
}

// MissingFieldError names a required field absent from the message input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// FarewellError implements the FarewellError interface.
func (e *MissingFieldError) FarewellError() {}

// MalformedInputError describes why the message input was rejected.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed message input: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// FarewellError implements the FarewellError interface.
func (e *MalformedInputError) FarewellError() {}

// Decryption pipeline stages, reported by DecryptionError.
const (
	StageKeyReconstruction = "key reconstruction"
	StagePayloadDecode     = "payload decoding"
	StageAuthentication    = "authenticated decryption"
	StagePlaintextDecode   = "plaintext decoding"
)

// DecryptionError represents a failure in the claim-package decryption
// pipeline. Stage identifies which cipher check failed so an operator can
// fix the offending input without inspecting internals.
type DecryptionError struct {
	Stage string // one of the Stage* constants
	Err   error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("decryption failed at %s", e.Stage)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	switch e.Stage {
	case StageKeyReconstruction:
		return target == ErrKeyLengthMismatch
	case StagePayloadDecode:
		return target == ErrMalformedPayload
	case StageAuthentication:
		return target == ErrDecryptionAuthFailed
	case StagePlaintextDecode:
		return target == ErrInvalidEncoding
	}
	return false
}

// FarewellError implements the FarewellError interface.
func (e *DecryptionError) FarewellError() {}
