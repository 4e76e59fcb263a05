package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// PublicIDLength is the length of a profile's public token (32 hex chars)
const PublicIDLength = 32

// NewPublicID generates the opaque token embedded in a profile's QR URL
func NewPublicID() (string, error) {
	buf := make([]byte, PublicIDLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate public id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
