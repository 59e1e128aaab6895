package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// Getter defines the interface that the service must implement.
type Getter interface {
	GetUser(ctx context.Context, username string) (*models.AccountDB, error)
}

// LookupErrorResponse represents an error response for account lookup
// swagger:model LookupErrorResponse
type LookupErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewLookupHandler returns an HTTP handler for account lookup by username.
// @Summary Get an account
// @Description Exact-match lookup by username.
// @Tags accounts
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.AccountDB "Account"
// @Failure 404 {object} handlers.LookupErrorResponse "No such account"
// @Router /accounts/{username} [get]
func NewLookupHandler(svc Getter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		account, err := svc.GetUser(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LookupErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(LookupErrorResponse{
				Error: "Account not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(account)
	}
}
