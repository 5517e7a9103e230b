package services

import (
	"crypto/sha1" //nolint:gosec // links already delivered to customers carry sha1 digests
	"crypto/subtle"
	"encoding/hex"

	"pickup/internal/core/domain/model/kernel"
)

// CapabilityToken derives and verifies the per-order pickup token embedded in
// confirmation links. The token is the hex SHA-1 digest of the order id's
// canonical string form; it has no expiry and no secret.
//
// Example usage:
//
//	tokens := services.NewCapabilityToken()
//	link := fmt.Sprintf("%s/pickup/confirm?order_id=%s&token=%s", base, id, tokens.Derive(id))
//	ok := tokens.Verify(id, presented)
type CapabilityToken struct{}

func NewCapabilityToken() CapabilityToken {
	return CapabilityToken{}
}

// Derive is deterministic: the same order id always yields the same token.
func (CapabilityToken) Derive(orderID kernel.OrderID) string {
	sum := sha1.Sum([]byte(orderID.String())) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the token and compares it in constant time. A mismatch is
// an ordinary outcome, not an error.
func (t CapabilityToken) Verify(orderID kernel.OrderID, presented string) bool {
	if orderID.Validate() != nil || presented == "" {
		return false
	}
	expected := t.Derive(orderID)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}
