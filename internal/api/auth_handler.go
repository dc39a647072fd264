package api

import (
	"net/http"

	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/phrazzld/bookmark-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials service.CredentialService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials service.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.credentials.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{AccessToken: token.AccessToken})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.credentials.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{AccessToken: token.AccessToken})
}
