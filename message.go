package farewell

// ClaimPackageType is the format discriminator carried by claim-package
// exports. Input without this marker is treated as a direct message.
const ClaimPackageType = "farewell-claim-package"

// PlaceholderBody is the instructional body used when a claim package cannot
// be decrypted locally because the off-chain secret was not supplied. The
// recipient completes decryption with the external Farewell decrypter.
const PlaceholderBody = "This message is encrypted. Open your claim package with the Farewell " +
	"decrypter and your personal secret to read it."

// ClaimPackage mirrors the JSON export of an on-chain message claim.
//
// The key share and the encrypted payload are optional: a package without
// them (or without the out-of-band secret) still normalizes, with
// PlaceholderBody standing in for the plaintext.
type ClaimPackage struct {
	// Type is the format discriminator. MUST be ClaimPackageType.
	Type string `json:"type"`
	// Recipients is the ordered, non-empty list of recipient addresses.
	Recipients []string `json:"recipients"`
	// SkShare is the on-chain half of the 16-byte payload key (hex).
	SkShare string `json:"skShare,omitempty"`
	// EncryptedPayload is the encoded ciphertext blob (hex):
	// nonce (12 bytes) || ciphertext || tag (16 bytes).
	EncryptedPayload string `json:"encryptedPayload,omitempty"`
	// ContentHash is the commitment to the plaintext content (hex), verified
	// by the external circuit.
	ContentHash string `json:"contentHash"`
	// Subject is the optional message subject.
	Subject string `json:"subject,omitempty"`
}

// DirectMessage is the untagged plaintext input shape. It predates the claim
// package and must keep working unmodified as the claim-package shape evolves.
type DirectMessage struct {
	// Recipients is the ordered, non-empty list of recipient addresses.
	Recipients []string `json:"recipients"`
	// ContentHash is the commitment to the plaintext content (hex).
	ContentHash string `json:"contentHash"`
	// Message is the plaintext body.
	Message string `json:"message"`
	// Subject is the optional message subject.
	Subject string `json:"subject,omitempty"`
}

// MessageData is the normalized internal representation produced from either
// input shape. It is an immutable value object: constructed once by
// ParseMessageInput and consumed by the email-composition layer.
type MessageData struct {
	// Recipients preserves the order of the source recipient list.
	Recipients []string `json:"recipients"`
	// ContentHash passes through from the source input verbatim.
	ContentHash string `json:"contentHash"`
	// Body is the plaintext message body, or PlaceholderBody when the payload
	// could not be recovered locally.
	Body string `json:"body"`
	// Subject is the optional message subject.
	Subject string `json:"subject,omitempty"`
}
