// Package auth verifies Google sign-in credentials at the access-gate
// boundary. The HTTP layer exchanges a verified Google ID token for a
// short-lived session token; this package owns the Google side of that
// exchange.
package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity is the verified subject of a Google ID token.
type Identity struct {
	Subject       string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// Error represents a failed credential verification.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("auth error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Verifier checks a raw sign-in credential and returns the identity it
// belongs to.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// googleIssuers are the issuers Google mints ID tokens under.
var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// GoogleVerifier validates Google-issued ID tokens against a fixed OAuth
// client ID audience.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a verifier for tokens issued to clientID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify validates rawToken with Google and checks its issuer.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, &Error{Message: "invalid Google token", Cause: err}
	}

	if !googleIssuers[payload.Issuer] {
		return nil, &Error{Message: fmt.Sprintf("unexpected token issuer: %s", payload.Issuer)}
	}

	return &Identity{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
