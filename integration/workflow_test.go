//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/joho/godotenv"

	farewell "github.com/farewellmail/claimer-go"
	"github.com/farewellmail/claimer-go/deliveryproof"
)

var secretHex string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	secretHex = os.Getenv("FAREWELL_SECRET")
	if secretHex == "" {
		os.Stderr.WriteString("Skipping integration tests: FAREWELL_SECRET not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

// TestIntegration_ClaimPackageFile decrypts a real exported claim package
// with the operator's secret and assembles a submittable delivery proof.
func TestIntegration_ClaimPackageFile(t *testing.T) {
	path := os.Getenv("FAREWELL_CLAIM_PACKAGE")
	if path == "" {
		t.Skip("FAREWELL_CLAIM_PACKAGE not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read claim package: %v", err)
	}

	msg, err := farewell.ParseMessageInput(data, farewell.WithSecret(secretHex))
	if err != nil {
		t.Fatalf("parse claim package: %v", err)
	}
	if msg.Body == farewell.PlaceholderBody {
		t.Fatal("expected local decryption, got the placeholder body")
	}

	asm := deliveryproof.NewAssembler(msg.ContentHash, msg.Recipients)
	for range msg.Recipients {
		if err := asm.Append("X-Test: integration\r\n\r\n" + msg.Body + "\r\n"); err != nil {
			t.Fatalf("append proof: %v", err)
		}
	}

	owner := os.Getenv("FAREWELL_OWNER")
	if owner == "" {
		owner = "0x0000000000000000000000000000000000000001"
	}

	dp, err := asm.Finalize(owner, 0)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if ok, diag := dp.Validate(); !ok {
		t.Errorf("envelope failed validation: %s", diag)
	}
}
