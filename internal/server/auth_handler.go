package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/scraper-api/internal/auth"
	"github.com/jonathan/scraper-api/internal/server/middleware"
)

// AuthHandler handles Google sign-in and session issuance.
type AuthHandler struct {
	verifier   auth.Verifier
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(verifier auth.Verifier, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		verifier:   verifier,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// GoogleAuthRequest carries the Google ID token from the sign-in flow.
type GoogleAuthRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthUser is the user payload returned after sign-in.
type AuthUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthResponse is returned by /auth/google for both outcomes.
type AuthResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *AuthUser `json:"user,omitempty"`
	Message string    `json:"message"`
}

// GoogleLogin verifies a Google ID token and issues a session token.
// Verification failure is an unauthorized response carrying the same
// envelope shape as success.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	identity, err := h.verifier.Verify(r.Context(), req.Token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Authentication failed: " + err.Error(),
		})
		return
	}

	token, err := h.jwtService.GenerateToken(identity)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   token,
		User: &AuthUser{
			ID:      identity.Subject,
			Email:   identity.Email,
			Name:    identity.Name,
			Picture: identity.Picture,
		},
		Message: "Authentication successful",
	})
}

// Me returns the profile of the currently authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": AuthUser{
			ID:      identity.Subject,
			Email:   identity.Email,
			Name:    identity.Name,
			Picture: identity.Picture,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response already sent; nothing useful to do.
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
