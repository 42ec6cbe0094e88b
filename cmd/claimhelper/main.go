// Command claimhelper is a non-interactive pipeline helper used by the
// claiming scripts and integration tests. It reads JSON on stdin and writes
// JSON on stdout; the off-chain secret is taken from the FAREWELL_SECRET
// environment variable (a local .env file is loaded when present).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	farewell "github.com/farewellmail/claimer-go"
	"github.com/farewellmail/claimer-go/deliveryproof"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: claimhelper <parse|prove|validate> [args]")
	}

	// Best effort: the secret may come from the environment directly.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "parse":
		parse()
	case "prove":
		if len(os.Args) < 4 {
			fatal("usage: claimhelper prove <owner> <messageIndex>")
		}
		prove(os.Args[2], os.Args[3])
	case "validate":
		validate()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func parse() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var opts []farewell.ParseOption
	if secret := os.Getenv("FAREWELL_SECRET"); secret != "" {
		opts = append(opts, farewell.WithSecret(secret))
	}

	msg, err := farewell.ParseMessageInput(data, opts...)
	if err != nil {
		fatal("parse message input: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(msg); err != nil {
		fatal("encode message data: %v", err)
	}
}

// proveRequest is the stdin shape of the prove command.
type proveRequest struct {
	ContentHash string `json:"contentHash"`
	Recipients  []struct {
		Email      string `json:"email"`
		RawMessage string `json:"rawMessage"`
	} `json:"recipients"`
}

func prove(owner, indexArg string) {
	messageIndex, err := strconv.ParseUint(indexArg, 10, 64)
	if err != nil {
		fatal("messageIndex must be a non-negative integer: %v", err)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var req proveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fatal("parse prove request: %v", err)
	}

	emails := make([]string, len(req.Recipients))
	rawMessages := make([]string, len(req.Recipients))
	for i, r := range req.Recipients {
		emails[i] = r.Email
		rawMessages[i] = r.RawMessage
	}

	proofs, err := deliveryproof.GenerateRecipientProofs(rawMessages, emails, req.ContentHash)
	if err != nil {
		fatal("generate proofs: %v", err)
	}

	dp, err := deliveryproof.BuildDeliveryProof(owner, messageIndex, proofs, len(emails))
	if err != nil {
		fatal("build delivery proof: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dp); err != nil {
		fatal("encode delivery proof: %v", err)
	}
}

func validate() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	ok, diag := deliveryproof.Validate(data)
	out := map[string]any{"valid": ok}
	if diag != "" {
		out["error"] = diag
	}
	json.NewEncoder(os.Stdout).Encode(out)

	if !ok {
		os.Exit(1)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
