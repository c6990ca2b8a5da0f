package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoogleConfig(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")

	cfg, err := NewGoogleConfig()
	require.NoError(t, err)
	assert.Equal(t, "client-id.apps.googleusercontent.com", cfg.ClientID)
}

func TestNewGoogleConfig_MissingClientID(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")

	_, err := NewGoogleConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
}
