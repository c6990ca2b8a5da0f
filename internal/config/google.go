package config

import (
	"fmt"
	"os"
)

// GoogleConfig holds configuration for Google sign-in verification.
type GoogleConfig struct {
	// ClientID is the OAuth client ID that incoming ID tokens must be
	// issued for. Tokens minted for any other audience are rejected.
	ClientID string
}

// NewGoogleConfig creates a new Google sign-in configuration from
// environment variables. It reads GOOGLE_CLIENT_ID (required).
func NewGoogleConfig() (*GoogleConfig, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID is required but not set")
	}

	return &GoogleConfig{ClientID: clientID}, nil
}
