package deliveryproof

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate performs structural validation of an arbitrary value claiming to
// be a delivery-proof envelope. It returns (true, "") when the structure is
// submittable, or (false, diagnostic) naming the first failing field or
// recipient index.
//
// Validation failure is a normal, expected outcome on untrusted input, so
// Validate never returns an error and never panics. Only shape and element
// types are checked; proof values are not verified for field membership or
// cryptographic validity.
//
// Accepted inputs: *DeliveryProof (or any struct with the same JSON shape),
// map[string]any, or raw JSON as []byte/string.
func Validate(v any) (bool, string) {
	obj, ok := toObject(v)
	if !ok {
		return false, "delivery proof must be a JSON object"
	}

	// type and version are optional for backward compatibility with minimal
	// envelopes, but must match when present.
	if t, present := obj["type"]; present {
		if s, ok := t.(string); !ok || s != EnvelopeType {
			return false, fmt.Sprintf("type must be %q", EnvelopeType)
		}
	}
	if ver, present := obj["version"]; present {
		if n, ok := asNumber(ver); !ok || n != EnvelopeVersion {
			return false, fmt.Sprintf("version must be %d", EnvelopeVersion)
		}
	}

	owner, present := obj["owner"]
	if !present {
		return false, "missing required field: owner"
	}
	if s, ok := owner.(string); !ok || s == "" {
		return false, "owner must be a non-empty string"
	}

	idx, present := obj["messageIndex"]
	if !present {
		return false, "missing required field: messageIndex"
	}
	if n, ok := asNumber(idx); !ok || n < 0 || n != math.Trunc(n) {
		return false, "messageIndex must be a non-negative integer"
	}

	rp, present := obj["recipientProofs"]
	if !present {
		return false, "missing required field: recipientProofs"
	}
	proofs, ok := rp.([]any)
	if !ok || len(proofs) == 0 {
		return false, "recipientProofs must be a non-empty array"
	}

	for i, p := range proofs {
		if diag := validateRecipientProof(p); diag != "" {
			return false, fmt.Sprintf("recipientProofs[%d]: %s", i, diag)
		}
	}

	return true, ""
}

// Validate reports whether the envelope is structurally submittable.
func (dp *DeliveryProof) Validate() (bool, string) {
	return Validate(dp)
}

// validateRecipientProof checks one proof record. Returns "" when valid, or
// a diagnostic naming the failing field.
func validateRecipientProof(v any) string {
	p, ok := v.(map[string]any)
	if !ok {
		return "proof must be a JSON object"
	}

	hash, present := p["recipientHash"]
	if !present {
		return "missing required field: recipientHash"
	}
	if s, ok := hash.(string); !ok || s == "" {
		return "recipientHash must be a non-empty string"
	}

	if diag := validateProofPoint(p["pA"], "pA"); diag != "" {
		return diag
	}
	if diag := validateProofMatrix(p["pB"]); diag != "" {
		return diag
	}
	if diag := validateProofPoint(p["pC"], "pC"); diag != "" {
		return diag
	}

	signals, ok := p["publicSignals"].([]any)
	if !ok || len(signals) == 0 {
		return "publicSignals must be a non-empty array"
	}
	for i, s := range signals {
		if !isNumericValue(s) {
			return fmt.Sprintf("publicSignals[%d] must be numeric", i)
		}
	}

	return ""
}

// validateProofPoint checks a pA/pC point: exactly ProofPointSize numeric
// elements.
func validateProofPoint(v any, field string) string {
	point, ok := v.([]any)
	if !ok || len(point) != ProofPointSize {
		return fmt.Sprintf("%s must have exactly %d elements", field, ProofPointSize)
	}
	for i, e := range point {
		if !isNumericValue(e) {
			return fmt.Sprintf("%s[%d] must be numeric", field, i)
		}
	}
	return ""
}

// validateProofMatrix checks pB: exactly ProofPointSize rows of
// ProofPointSize numeric elements each.
func validateProofMatrix(v any) string {
	matrix, ok := v.([]any)
	if !ok || len(matrix) != ProofPointSize {
		return fmt.Sprintf("pB must have exactly %d rows", ProofPointSize)
	}
	for i, row := range matrix {
		r, ok := row.([]any)
		if !ok || len(r) != ProofPointSize {
			return fmt.Sprintf("pB[%d] must have exactly %d elements", i, ProofPointSize)
		}
		for j, e := range r {
			if !isNumericValue(e) {
				return fmt.Sprintf("pB[%d][%d] must be numeric", i, j)
			}
		}
	}
	return ""
}

// toObject normalizes the input to a generic JSON object. Structs are passed
// through a marshal round-trip so struct inputs and decoded-JSON inputs
// validate identically.
func toObject(v any) (map[string]any, bool) {
	switch in := v.(type) {
	case map[string]any:
		return in, true
	case []byte:
		return unmarshalObject(in)
	case json.RawMessage:
		return unmarshalObject(in)
	case string:
		return unmarshalObject([]byte(in))
	case nil:
		return nil, false
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		return unmarshalObject(data)
	}
}

func unmarshalObject(data []byte) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// asNumber converts JSON and native numeric representations to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// isNumericValue reports whether v is a number or a numeric string (decimal
// digits, or hex digits with a 0x prefix). Range and field membership are
// the verifier's concern, not ours.
func isNumericValue(v any) bool {
	if _, ok := asNumber(v); ok {
		return true
	}

	s, ok := v.(string)
	if !ok {
		return false
	}

	digits := s
	hex := false
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		digits = s[2:]
		hex = true
	}
	if digits == "" {
		return false
	}

	for _, c := range digits {
		switch {
		case c >= '0' && c <= '9':
		case hex && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		default:
			return false
		}
	}
	return true
}
