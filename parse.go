package farewell

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseOption configures message-input parsing.
type ParseOption func(*parseConfig)

// parseConfig holds configuration for parsing.
type parseConfig struct {
	secretHex string
}

// WithSecret supplies the off-chain secret (hex, 16 bytes decoded) used to
// reconstruct the payload key. When set, claim packages that carry both a key
// share and an encrypted payload are decrypted locally; otherwise the body is
// PlaceholderBody and decryption is deferred to the external decrypter.
func WithSecret(secretHex string) ParseOption {
	return func(c *parseConfig) {
		c.secretHex = secretHex
	}
}

// ParseMessageInput dispatches on the format discriminator and normalizes
// either accepted input shape into a MessageData.
//
// Input tagged with ClaimPackageType is parsed as a ClaimPackage; anything
// else is parsed as a DirectMessage. Neither path demands fields exclusive
// to the other variant.
func ParseMessageInput(data []byte, opts ...ParseOption) (*MessageData, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("not a JSON object: %v", err)}
	}

	if probe.Type == ClaimPackageType {
		var pkg ClaimPackage
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid claim package: %v", err)}
		}
		return pkg.Normalize(cfg.secretHex)
	}

	var msg DirectMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid direct message: %v", err)}
	}
	return msg.Normalize()
}

// Validate checks that the claim package carries its required fields and a
// well-formed recipient list. The key share and encrypted payload are not
// required; packages are valid without locally recoverable plaintext.
func (p *ClaimPackage) Validate() error {
	if p.Recipients == nil {
		return &MissingFieldError{Field: "recipients"}
	}
	if err := validateRecipients(p.Recipients); err != nil {
		return err
	}
	if p.ContentHash == "" {
		return &MissingFieldError{Field: "contentHash"}
	}
	return nil
}

// Normalize validates the claim package and produces its MessageData.
//
// With a non-empty secret and both crypto fields present, the payload is
// decrypted locally and the recovered plaintext becomes the body. In every
// other case the body is PlaceholderBody; that deferral is the configured
// policy, not an error.
func (p *ClaimPackage) Normalize(secretHex string) (*MessageData, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	body := PlaceholderBody
	if secretHex != "" && p.SkShare != "" && p.EncryptedPayload != "" {
		plaintext, err := p.Decrypt(secretHex)
		if err != nil {
			return nil, err
		}
		body = plaintext
	}

	return &MessageData{
		Recipients:  p.Recipients,
		ContentHash: p.ContentHash,
		Body:        body,
		Subject:     p.Subject,
	}, nil
}

// Validate checks that the direct message carries its required fields and a
// well-formed recipient list.
func (m *DirectMessage) Validate() error {
	if m.Recipients == nil {
		return &MissingFieldError{Field: "recipients"}
	}
	if err := validateRecipients(m.Recipients); err != nil {
		return err
	}
	if m.ContentHash == "" {
		return &MissingFieldError{Field: "contentHash"}
	}
	if m.Message == "" {
		return &MissingFieldError{Field: "message"}
	}
	return nil
}

// Normalize validates the direct message and produces its MessageData. No
// decryption is involved; the body is the plaintext message verbatim.
func (m *DirectMessage) Normalize() (*MessageData, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &MessageData{
		Recipients:  m.Recipients,
		ContentHash: m.ContentHash,
		Body:        m.Message,
		Subject:     m.Subject,
	}, nil
}

// validateRecipients applies the minimal address-shape check: every address
// must contain an @ and carry no surrounding whitespace.
func validateRecipients(recipients []string) error {
	if len(recipients) == 0 {
		return &MalformedInputError{Reason: "recipients must not be empty"}
	}
	for i, addr := range recipients {
		if !strings.Contains(addr, "@") {
			return &MalformedInputError{Reason: fmt.Sprintf("recipient %d: %q is not a valid address", i, addr)}
		}
		if strings.TrimSpace(addr) != addr {
			return &MalformedInputError{Reason: fmt.Sprintf("recipient %d: %q has surrounding whitespace", i, addr)}
		}
	}
	return nil
}
