package crypto

const (
	// KeySize is the size of an AES-128 key in bytes. Both the on-chain key
	// share and the off-chain secret must decode to exactly this length.
	KeySize = 16

	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// MinPayloadSize is the smallest well-formed encoded payload: a nonce
	// followed directly by the authentication tag over empty ciphertext.
	MinPayloadSize = NonceSize + TagSize

	// CommitmentSize is the size of a recipient commitment digest in bytes.
	CommitmentSize = 32
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "XOR-SPLIT:AES-128-GCM:KECCAK-256"
