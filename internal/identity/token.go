package identity

import (
	"github.com/google/uuid"
)

// TokenFunc produces opaque tokens for sessions and password resets.
type TokenFunc func() string

// NewToken is the default source: a v4 UUID. Cryptographically random,
// URL-safe, and carrying no decodable structure.
func NewToken() string {
	return uuid.NewString()
}
