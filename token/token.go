package token

import (
	"fmt"
	"time"

	"github.com/o1egl/paseto/v2"
)

// Footer is attached to every issued credential and checked on verification.
const Footer = "catalog-admin"

const adminClaim = "isAdmin"

// Claims is what a verified credential asserts about the caller.
type Claims struct {
	AccountID string
	IsAdmin   bool
}

// Issue encrypts a time-limited credential for the given account. The secret
// must be a 32-byte symmetric key.
func Issue(secret []byte, accountID string, isAdmin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    accountID,
		IssuedAt:   now,
		Expiration: now.Add(ttl),
	}
	jsonToken.Set(adminClaim, isAdmin)

	return paseto.NewV2().Encrypt(secret, jsonToken, Footer)
}

// Verify decrypts a credential, checks its validity window and returns the
// embedded claims. Any failure — wrong key, malformed token, expired window,
// unexpected footer — comes back as a non-nil error.
func Verify(secret []byte, raw string) (*Claims, error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(raw, secret, &jsonToken, &footer); err != nil {
		return nil, fmt.Errorf("decrypting credential: %w", err)
	}
	if footer != Footer {
		return nil, fmt.Errorf("unexpected credential footer %q", footer)
	}
	if err := jsonToken.Validate(); err != nil {
		return nil, fmt.Errorf("validating credential: %w", err)
	}

	var isAdmin bool
	if err := jsonToken.Get(adminClaim, &isAdmin); err != nil {
		return nil, fmt.Errorf("reading %s claim: %w", adminClaim, err)
	}

	return &Claims{AccountID: jsonToken.Subject, IsAdmin: isAdmin}, nil
}
