// Package farewell provides a Go SDK for claiming Farewell messages and
// assembling the delivery proofs submitted on-chain.
//
// A Farewell message arrives either as a claim package — the JSON export of
// an on-chain message claim, carrying an encrypted payload and a key share —
// or as a direct plaintext message. Both shapes normalize to [MessageData]:
//
//	msg, err := farewell.ParseMessageInput(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Body:", msg.Body)
//
// Claim packages decrypt locally only when the off-chain secret is supplied
// out-of-band:
//
//	msg, err := farewell.ParseMessageInput(raw, farewell.WithSecret(secretHex))
//
// Without the secret the body is [PlaceholderBody], directing the recipient
// to the external decrypter.
//
// Delivery proofs live in the deliveryproof subpackage: one proof record per
// recipient, wrapped in an envelope validated structurally before submission.
package farewell
