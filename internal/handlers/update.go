package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grinval/gs-login-core/internal/logger"
)

// Relinker defines the interface that the service must implement.
type Relinker interface {
	RelinkUser(ctx context.Context, playerID, newPlayerID int64, username, password, email string) (int64, error)
}

// UpdateRequest represents the JSON body for a full account rewrite
// swagger:model UpdateRequest
type UpdateRequest struct {
	// New player identity
	// required: true
	PlayerID int64 `json:"player_id"`

	// New username
	// required: true
	Username string `json:"username"`

	// New password
	// required: true
	Password string `json:"password"`

	// New email
	Email string `json:"email"`
}

// UpdateErrorResponse represents an error response for a full account rewrite
// swagger:model UpdateErrorResponse
type UpdateErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewUpdateHandler returns an HTTP handler rewriting identity, username,
// credential and email of the account holding the given player identity.
// @Summary Rewrite an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param playerID path int true "Current player identity"
// @Param updateRequest body handlers.UpdateRequest true "Account rewrite request"
// @Success 204 "Account rewritten"
// @Failure 404 {object} handlers.UpdateErrorResponse "No such account"
// @Security BearerAuth
// @Router /accounts/id/{playerID} [put]
func NewUpdateHandler(svc Relinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Invalid player id",
			})
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" || req.PlayerID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		rows, err := svc.RelinkUser(r.Context(), playerID, req.PlayerID, req.Username, req.Password, req.Email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if rows == 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "Account not found",
			})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
