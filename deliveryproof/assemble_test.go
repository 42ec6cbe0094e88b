package deliveryproof

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const sampleRawMessage = "From: sender@farewell.example\r\n" +
	"To: recipient@test.com\r\n" +
	"DKIM-Signature: v=1; a=rsa-sha256; d=farewell.example; s=mail;\r\n" +
	" bh=abc123;\r\n" +
	" b=def456\r\n" +
	"Subject: farewell\r\n" +
	"\r\n" +
	"Goodbye.\r\n"

func TestGenerateRecipientProof_Shapes(t *testing.T) {
	proof := GenerateRecipientProof(sampleRawMessage, "recipient@test.com", "0x1234")

	if len(proof.PA) != ProofPointSize {
		t.Errorf("len(pA) = %d, want %d", len(proof.PA), ProofPointSize)
	}
	if len(proof.PB) != ProofPointSize {
		t.Fatalf("len(pB) = %d, want %d", len(proof.PB), ProofPointSize)
	}
	for i, row := range proof.PB {
		if len(row) != ProofPointSize {
			t.Errorf("len(pB[%d]) = %d, want %d", i, len(row), ProofPointSize)
		}
	}
	if len(proof.PC) != ProofPointSize {
		t.Errorf("len(pC) = %d, want %d", len(proof.PC), ProofPointSize)
	}
	if len(proof.PublicSignals) != PublicSignalCount {
		t.Errorf("len(publicSignals) = %d, want %d", len(proof.PublicSignals), PublicSignalCount)
	}
}

func TestGenerateRecipientProof_RecipientHashFormat(t *testing.T) {
	proof := GenerateRecipientProof(sampleRawMessage, "recipient@test.com", "0x1234")

	if !strings.HasPrefix(proof.RecipientHash, "0x") {
		t.Errorf("recipientHash %q missing 0x prefix", proof.RecipientHash)
	}
	if len(proof.RecipientHash) != 66 { // 0x + 64 hex chars
		t.Errorf("recipientHash length = %d, want 66", len(proof.RecipientHash))
	}
	if proof.PublicSignals[0] != proof.RecipientHash {
		t.Error("publicSignals[0] does not match recipientHash")
	}
}

func TestGenerateRecipientProof_NormalizesEmail(t *testing.T) {
	p1 := GenerateRecipientProof(sampleRawMessage, "Test@Example.COM  ", "0x1234")
	p2 := GenerateRecipientProof(sampleRawMessage, "test@example.com", "0x1234")

	if p1.RecipientHash != p2.RecipientHash {
		t.Errorf("normalized emails produced different hashes: %s vs %s", p1.RecipientHash, p2.RecipientHash)
	}
}

func TestGenerateRecipientProof_DistinctEmails(t *testing.T) {
	p1 := GenerateRecipientProof(sampleRawMessage, "user1@test.com", "0x1234")
	p2 := GenerateRecipientProof(sampleRawMessage, "user2@test.com", "0x1234")

	if p1.RecipientHash == p2.RecipientHash {
		t.Error("distinct emails produced identical recipient hashes")
	}
}

func TestGenerateRecipientProof_ContentHashPassthrough(t *testing.T) {
	contentHash := "0x" + strings.Repeat("ff", 32)
	proof := GenerateRecipientProof(sampleRawMessage, "a@b.com", contentHash)

	if proof.PublicSignals[2] != contentHash {
		t.Errorf("publicSignals[2] = %s, want %s", proof.PublicSignals[2], contentHash)
	}
}

func TestGenerateRecipientProof_SenderKeyHash(t *testing.T) {
	withDKIM := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")

	// Same DKIM-Signature header, different body: the sender key commitment
	// must not change.
	differentBody := strings.Replace(sampleRawMessage, "Goodbye.", "So long.", 1)
	sameHeader := GenerateRecipientProof(differentBody, "a@b.com", "0x1234")
	if withDKIM.PublicSignals[1] != sameHeader.PublicSignals[1] {
		t.Error("sender key hash changed with body despite identical DKIM-Signature header")
	}

	// No DKIM-Signature header: fall back to hashing the whole message.
	noDKIM := GenerateRecipientProof("Subject: plain\r\n\r\nhi\r\n", "a@b.com", "0x1234")
	if withDKIM.PublicSignals[1] == noDKIM.PublicSignals[1] {
		t.Error("expected different sender key hash without DKIM-Signature header")
	}
}

func TestGenerateRecipientProof_Deterministic(t *testing.T) {
	first := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")
	again := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")

	if first.PA[0] != again.PA[0] || first.PB[1][0] != again.PB[1][0] || first.PC[1] != again.PC[1] {
		t.Error("proof placeholder values are not deterministic")
	}
}

func TestGenerateRecipientProofs_PreservesOrder(t *testing.T) {
	const n = 50
	recipients := make([]string, n)
	rawMessages := make([]string, n)
	for i := range recipients {
		recipients[i] = fmt.Sprintf("user%d@test.com", i)
		rawMessages[i] = fmt.Sprintf("To: user%d@test.com\r\n\r\nbye\r\n", i)
	}

	proofs, err := GenerateRecipientProofs(rawMessages, recipients, "0xaabb")
	if err != nil {
		t.Fatalf("GenerateRecipientProofs() error = %v", err)
	}
	if len(proofs) != n {
		t.Fatalf("got %d proofs, want %d", len(proofs), n)
	}

	for i := range recipients {
		want := GenerateRecipientProof(rawMessages[i], recipients[i], "0xaabb")
		if proofs[i].RecipientHash != want.RecipientHash {
			t.Fatalf("proof %d is out of order", i)
		}
	}
}

func TestGenerateRecipientProofs_CountMismatch(t *testing.T) {
	_, err := GenerateRecipientProofs([]string{"raw"}, []string{"a@b.com", "c@d.com"}, "0x1234")
	if !errors.Is(err, ErrRecipientCountMismatch) {
		t.Errorf("expected ErrRecipientCountMismatch, got %v", err)
	}
}

func TestBuildDeliveryProof_Envelope(t *testing.T) {
	proof := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")

	dp, err := BuildDeliveryProof("0xabc", 3, []*RecipientProof{proof}, 1)
	if err != nil {
		t.Fatalf("BuildDeliveryProof() error = %v", err)
	}

	if dp.Type != EnvelopeType {
		t.Errorf("type = %q, want %q", dp.Type, EnvelopeType)
	}
	if dp.Version != EnvelopeVersion {
		t.Errorf("version = %d, want %d", dp.Version, EnvelopeVersion)
	}
	if dp.Owner != "0xabc" {
		t.Errorf("owner = %q, want 0xabc", dp.Owner)
	}
	if dp.MessageIndex != 3 {
		t.Errorf("messageIndex = %d, want 3", dp.MessageIndex)
	}
	if len(dp.RecipientProofs) != 1 {
		t.Errorf("len(recipientProofs) = %d, want 1", len(dp.RecipientProofs))
	}
	if dp.Metadata == nil || dp.Metadata.RecipientCount != 1 || dp.Metadata.GeneratedAt.IsZero() {
		t.Errorf("metadata not populated: %+v", dp.Metadata)
	}
}

func TestBuildDeliveryProof_MultiRecipient(t *testing.T) {
	emails := []string{"a@b.com", "c@d.com", "e@f.com"}
	proofs := make([]*RecipientProof, len(emails))
	for i, email := range emails {
		proofs[i] = GenerateRecipientProof(sampleRawMessage, email, "0xaabb")
	}

	dp, err := BuildDeliveryProof("0x1", 0, proofs, 3)
	if err != nil {
		t.Fatalf("BuildDeliveryProof() error = %v", err)
	}

	hashes := make(map[string]struct{})
	for _, p := range dp.RecipientProofs {
		hashes[p.PublicSignals[0]] = struct{}{}
	}
	if len(hashes) != 3 {
		t.Errorf("expected 3 distinct recipient hashes, got %d", len(hashes))
	}
}

func TestBuildDeliveryProof_CountMismatch(t *testing.T) {
	proof := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")

	tests := []struct {
		name     string
		proofs   []*RecipientProof
		expected int
	}{
		{"too few", []*RecipientProof{proof}, 2},
		{"too many", []*RecipientProof{proof, proof}, 1},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDeliveryProof("0xabc", 0, tt.proofs, tt.expected)
			if !errors.Is(err, ErrRecipientCountMismatch) {
				t.Errorf("expected ErrRecipientCountMismatch, got %v", err)
			}
		})
	}
}

func TestBuildDeliveryProof_DuplicateRecipient(t *testing.T) {
	p1 := GenerateRecipientProof(sampleRawMessage, "a@b.com", "0x1234")
	p2 := GenerateRecipientProof(sampleRawMessage, "A@B.com", "0x1234") // same after normalization

	_, err := BuildDeliveryProof("0xabc", 0, []*RecipientProof{p1, p2}, 2)
	if !errors.Is(err, ErrDuplicateRecipient) {
		t.Errorf("expected ErrDuplicateRecipient, got %v", err)
	}
}

func TestAssembler_Workflow(t *testing.T) {
	recipients := []string{"alice@test.com", "bob@test.com"}
	asm := NewAssembler("0xdead", recipients)

	// Finalizing before every recipient has a proof must fail.
	if _, err := asm.Finalize("0x1", 0); !errors.Is(err, ErrRecipientCountMismatch) {
		t.Errorf("early finalize: expected ErrRecipientCountMismatch, got %v", err)
	}

	for range recipients {
		if err := asm.Append(sampleRawMessage); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	// A third sent message has no recipient to commit.
	if err := asm.Append(sampleRawMessage); !errors.Is(err, ErrRecipientCountMismatch) {
		t.Errorf("extra append: expected ErrRecipientCountMismatch, got %v", err)
	}

	dp, err := asm.Finalize("0xDEAD", 5)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if len(dp.RecipientProofs) != 2 {
		t.Fatalf("len(recipientProofs) = %d, want 2", len(dp.RecipientProofs))
	}

	// Proofs stay in recipient-list order.
	for i, recipient := range recipients {
		want := GenerateRecipientProof(sampleRawMessage, recipient, "0xdead")
		if dp.RecipientProofs[i].RecipientHash != want.RecipientHash {
			t.Errorf("proof %d committed wrong recipient", i)
		}
	}
}
