// Package deliveryproof assembles and validates the delivery-proof envelope
// submitted on-chain to prove that a Farewell message reached its recipients.
//
// Each recipient gets one RecipientProof whose pA/pB/pC arrays and public
// signals match the shape the verifier contract expects. The numeric content
// of those fields is pinned by the external proving circuit; this package
// guarantees shape and presence, not cryptographic validity of a real proof.
package deliveryproof

import (
	"errors"
	"time"
)

const (
	// EnvelopeType is the format discriminator of a delivery-proof envelope.
	EnvelopeType = "farewell-delivery-proof"

	// EnvelopeVersion is the current envelope format version.
	EnvelopeVersion = 1

	// PublicSignalCount is the number of public signals the assembler emits:
	// recipient hash, sender key hash, content hash, in that order. The
	// ordering is the external circuit's interface contract.
	PublicSignalCount = 3

	// ProofPointSize is the element count of a proof point: pA and pC have
	// exactly this many elements, pB is a ProofPointSize x ProofPointSize
	// matrix.
	ProofPointSize = 2
)

var (
	// ErrRecipientCountMismatch is returned when the number of recipient
	// proofs does not match the expected recipient count.
	ErrRecipientCountMismatch = errors.New("recipient proof count does not match recipient count")

	// ErrDuplicateRecipient is returned when two proofs commit the same
	// recipient.
	ErrDuplicateRecipient = errors.New("duplicate recipient in delivery proof")
)

// RecipientProof is the proof record for a single recipient.
type RecipientProof struct {
	// RecipientHash is the commitment to the normalized recipient address,
	// matching the on-chain record.
	RecipientHash string `json:"recipientHash"`
	// PA is the first proof point (exactly 2 elements).
	PA []string `json:"pA"`
	// PB is the second proof point (exactly 2x2 elements).
	PB [][]string `json:"pB"`
	// PC is the third proof point (exactly 2 elements).
	PC []string `json:"pC"`
	// PublicSignals are the circuit-visible values accompanying the proof,
	// opaque to this package beyond count and ordering.
	PublicSignals []string `json:"publicSignals"`
}

// Metadata carries informational envelope fields not read by the contract.
type Metadata struct {
	// GeneratedAt is the envelope assembly timestamp (ISO 8601).
	GeneratedAt time.Time `json:"generatedAt"`
	// RecipientCount mirrors len(RecipientProofs).
	RecipientCount int `json:"recipientCount"`
}

// DeliveryProof is the envelope bundling one proof per recipient, in the
// same order as the source recipient list.
type DeliveryProof struct {
	// Type is the format discriminator. MUST be EnvelopeType.
	Type string `json:"type"`
	// Version is the envelope format version. MUST be EnvelopeVersion.
	Version int `json:"version"`
	// Owner is the address that owns the on-chain message.
	Owner string `json:"owner"`
	// MessageIndex is the non-negative index of the message in the owner's
	// on-chain message list.
	MessageIndex uint64 `json:"messageIndex"`
	// RecipientProofs holds one proof per recipient, order-preserving.
	RecipientProofs []*RecipientProof `json:"recipientProofs"`
	// Metadata is informational only.
	Metadata *Metadata `json:"metadata,omitempty"`
}
