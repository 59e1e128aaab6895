package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grinval/gs-login-core/internal/logger"
)

// Deleter defines the interface that the service must implement.
type Deleter interface {
	DeleteUser(ctx context.Context, username string) (int64, error)
	DeleteUserID(ctx context.Context, playerID int64) (int64, error)
}

// DeleteResponse reports how many rows a delete removed
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Rows deleted
	Deleted int64 `json:"deleted"`
}

// DeleteErrorResponse represents an error response for account deletion
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewDeleteByUsernameHandler returns an HTTP handler deleting an account by username.
// @Summary Delete an account by username
// @Tags accounts
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.DeleteResponse "Rows deleted"
// @Security BearerAuth
// @Router /accounts/{username} [delete]
func NewDeleteByUsernameHandler(svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		rows, err := svc.DeleteUser(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{Deleted: rows})
	}
}

// NewDeleteByPlayerIDHandler returns an HTTP handler deleting an account by player identity.
// @Summary Delete an account by player identity
// @Tags accounts
// @Produce json
// @Param playerID path int true "Player identity"
// @Success 200 {object} handlers.DeleteResponse "Rows deleted"
// @Security BearerAuth
// @Router /accounts/id/{playerID} [delete]
func NewDeleteByPlayerIDHandler(svc Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "Invalid player id",
			})
			return
		}

		rows, err := svc.DeleteUserID(r.Context(), playerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{Deleted: rows})
	}
}
