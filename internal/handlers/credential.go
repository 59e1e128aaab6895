package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// CredentialLookuper defines the interface that the service must implement.
type CredentialLookuper interface {
	GetUsersByCredential(ctx context.Context, email, password string) ([]models.AccountDB, error)
}

// CredentialLookupRequest represents the JSON body for credential lookup
// swagger:model CredentialLookupRequest
type CredentialLookupRequest struct {
	// Email, matched case-insensitively
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`
}

// CredentialLookupErrorResponse represents an error response for credential lookup
// swagger:model CredentialLookupErrorResponse
type CredentialLookupErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCredentialLookupHandler returns an HTTP handler resolving accounts by
// email and password. Email is not unique, so the result is a list.
// @Summary Find accounts by credential
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentialLookupRequest body handlers.CredentialLookupRequest true "Credential lookup request"
// @Success 200 {array} models.AccountDB "Matching accounts"
// @Failure 400 {object} handlers.CredentialLookupErrorResponse "Invalid request"
// @Router /accounts/lookup [post]
func NewCredentialLookupHandler(svc CredentialLookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialLookupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CredentialLookupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		accounts, err := svc.GetUsersByCredential(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CredentialLookupErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if accounts == nil {
			accounts = []models.AccountDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(accounts)
	}
}
