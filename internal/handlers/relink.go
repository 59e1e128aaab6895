package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/services"
)

// PlayerIDSetter defines the interface that the service must implement.
type PlayerIDSetter interface {
	SetPlayerID(ctx context.Context, username string, newPlayerID int64) (int64, error)
}

// RelinkRequest represents the JSON body for an identity reassignment
// swagger:model RelinkRequest
type RelinkRequest struct {
	// New player identity
	// required: true
	PlayerID int64 `json:"player_id"`
}

// RelinkResponse represents a successful identity reassignment
// swagger:model RelinkResponse
type RelinkResponse struct {
	// Rows updated (0 or 1)
	Updated int64 `json:"updated"`
}

// RelinkErrorResponse represents an error response for identity reassignment
// swagger:model RelinkErrorResponse
type RelinkErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRelinkHandler returns an HTTP handler reassigning the player identity
// of an existing account.
// @Summary Reassign player identity
// @Description Moves an account to a new player identity. Fails when the identity already belongs to a different account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param relinkRequest body handlers.RelinkRequest true "Identity reassignment request"
// @Success 200 {object} handlers.RelinkResponse "Identity reassigned"
// @Failure 404 {object} handlers.RelinkErrorResponse "No such account"
// @Failure 409 {object} handlers.RelinkErrorResponse "Identity already assigned"
// @Security BearerAuth
// @Router /accounts/{username}/player-id [put]
func NewRelinkHandler(svc PlayerIDSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req RelinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RelinkErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		rows, err := svc.SetPlayerID(r.Context(), username, req.PlayerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RelinkErrorResponse{
					Error: "Account not found",
				})
			case errors.Is(err, services.ErrPlayerIDTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RelinkErrorResponse{
					Error: "Player id already assigned",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RelinkErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RelinkResponse{Updated: rows})
	}
}
