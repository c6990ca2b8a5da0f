package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := &Error{Message: "invalid Google token"}
	assert.Equal(t, "auth error: invalid Google token", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("token expired")
	err := &Error{Message: "invalid Google token", Cause: cause}

	assert.Contains(t, err.Error(), "token expired")
	assert.ErrorIs(t, err, cause)
}

func TestClaimHelpers(t *testing.T) {
	claims := map[string]interface{}{
		"email":          "user@example.com",
		"email_verified": true,
		"aud":            12345, // wrong type on purpose
	}

	assert.Equal(t, "user@example.com", claimString(claims, "email"))
	assert.Equal(t, "", claimString(claims, "missing"))
	assert.Equal(t, "", claimString(claims, "aud"))
	assert.True(t, claimBool(claims, "email_verified"))
	assert.False(t, claimBool(claims, "missing"))
}
