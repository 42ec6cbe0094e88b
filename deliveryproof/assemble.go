package deliveryproof

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/farewellmail/claimer-go/internal/crypto"
)

// GenerateRecipientProof builds the proof record for one recipient from the
// raw text of the message actually sent to them, the recipient address, and
// the content commitment from the claim.
//
// The proof points are filled with deterministic placeholder values derived
// from the recipient commitment and content hash; real proof generation is
// delegated to the external prover, which replaces them in place.
func GenerateRecipientProof(rawMessage, recipientEmail, contentHash string) *RecipientProof {
	recipientHash := crypto.RecipientCommitment(recipientEmail)
	keyHash := senderKeyHash(rawMessage)

	return &RecipientProof{
		RecipientHash: recipientHash,
		PA: []string{
			proofElement("pA/0", recipientHash, contentHash),
			proofElement("pA/1", recipientHash, contentHash),
		},
		PB: [][]string{
			{proofElement("pB/0/0", recipientHash, contentHash), proofElement("pB/0/1", recipientHash, contentHash)},
			{proofElement("pB/1/0", recipientHash, contentHash), proofElement("pB/1/1", recipientHash, contentHash)},
		},
		PC: []string{
			proofElement("pC/0", recipientHash, contentHash),
			proofElement("pC/1", recipientHash, contentHash),
		},
		PublicSignals: []string{recipientHash, keyHash, contentHash},
	}
}

// GenerateRecipientProofs assembles one proof per recipient concurrently.
// Proof i depends only on rawMessages[i] and recipients[i], so assembly fans
// out across goroutines; results land in an index-addressed slice, keeping
// output order identical to the recipient list.
func GenerateRecipientProofs(rawMessages, recipients []string, contentHash string) ([]*RecipientProof, error) {
	if len(rawMessages) != len(recipients) {
		return nil, fmt.Errorf("%w: %d sent messages for %d recipients",
			ErrRecipientCountMismatch, len(rawMessages), len(recipients))
	}

	proofs := make([]*RecipientProof, len(recipients))
	var wg sync.WaitGroup
	for i := range recipients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			proofs[i] = GenerateRecipientProof(rawMessages[i], recipients[i], contentHash)
		}(i)
	}
	wg.Wait()

	return proofs, nil
}

// BuildDeliveryProof wraps the per-recipient proofs into the envelope
// submitted on-chain. The proof sequence must match the source recipient
// list: same count, same order, no recipient committed twice.
func BuildDeliveryProof(owner string, messageIndex uint64, proofs []*RecipientProof, expectedRecipients int) (*DeliveryProof, error) {
	if len(proofs) != expectedRecipients {
		return nil, fmt.Errorf("%w: got %d proofs for %d recipients",
			ErrRecipientCountMismatch, len(proofs), expectedRecipients)
	}
	if len(proofs) == 0 {
		return nil, fmt.Errorf("%w: a delivery proof needs at least one recipient", ErrRecipientCountMismatch)
	}

	seen := make(map[string]struct{}, len(proofs))
	for i, p := range proofs {
		if _, dup := seen[p.RecipientHash]; dup {
			return nil, fmt.Errorf("%w: recipient %d", ErrDuplicateRecipient, i)
		}
		seen[p.RecipientHash] = struct{}{}
	}

	return &DeliveryProof{
		Type:            EnvelopeType,
		Version:         EnvelopeVersion,
		Owner:           owner,
		MessageIndex:    messageIndex,
		RecipientProofs: proofs,
		Metadata: &Metadata{
			GeneratedAt:    time.Now().UTC(),
			RecipientCount: len(proofs),
		},
	}, nil
}

// Assembler accumulates per-recipient proofs for one message and finalizes
// the envelope. Sent messages must be appended in recipient-list order; the
// envelope cannot be finalized until every recipient has a proof.
type Assembler struct {
	contentHash string
	recipients  []string
	proofs      []*RecipientProof
}

// NewAssembler creates an assembler for a message with the given content
// commitment and ordered recipient list.
func NewAssembler(contentHash string, recipients []string) *Assembler {
	return &Assembler{
		contentHash: contentHash,
		recipients:  recipients,
		proofs:      make([]*RecipientProof, 0, len(recipients)),
	}
}

// Append generates and records the proof for the next recipient in order,
// given the raw text of the message sent to them.
func (a *Assembler) Append(rawMessage string) error {
	if len(a.proofs) >= len(a.recipients) {
		return fmt.Errorf("%w: all %d recipients already have proofs",
			ErrRecipientCountMismatch, len(a.recipients))
	}

	recipient := a.recipients[len(a.proofs)]
	a.proofs = append(a.proofs, GenerateRecipientProof(rawMessage, recipient, a.contentHash))
	return nil
}

// Finalize builds the delivery-proof envelope from the accumulated proofs.
func (a *Assembler) Finalize(owner string, messageIndex uint64) (*DeliveryProof, error) {
	return BuildDeliveryProof(owner, messageIndex, a.proofs, len(a.recipients))
}

// senderKeyHash commits the sending-key material of the raw sent message:
// the digest of its DKIM-Signature header, or of the whole message when no
// such header is present.
func senderKeyHash(rawMessage string) string {
	if header := dkimSignatureHeader(rawMessage); header != "" {
		return crypto.ToHex(crypto.Keccak256([]byte(header)))
	}
	return crypto.ToHex(crypto.Keccak256([]byte(rawMessage)))
}

// dkimSignatureHeader extracts the unfolded DKIM-Signature header value from
// a raw RFC 5322 message, or "" when the message carries none.
func dkimSignatureHeader(raw string) string {
	lines := strings.Split(raw, "\n")

	var value strings.Builder
	inHeader := false
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break // end of header block
		}

		if inHeader {
			if line[0] == ' ' || line[0] == '\t' {
				value.WriteString(strings.TrimSpace(line))
				continue
			}
			break
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "dkim-signature:") {
			inHeader = true
			value.WriteString(strings.TrimSpace(line[len("dkim-signature:"):]))
		}
	}

	return value.String()
}

// proofElement derives a deterministic placeholder field element bound to
// the recipient commitment and content hash.
func proofElement(label, recipientHash, contentHash string) string {
	return crypto.ToHex(crypto.Keccak256([]byte(label), []byte(recipientHash), []byte(contentHash)))
}
