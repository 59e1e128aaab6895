package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grinval/gs-login-core/internal/logger"
)

// Counter defines the interface that the service must implement.
type Counter interface {
	CountUsers(ctx context.Context) (int64, error)
}

// CountResponse represents the account count
// swagger:model CountResponse
type CountResponse struct {
	// Number of accounts
	Count int64 `json:"count"`
}

// CountErrorResponse represents an error response for the account count
// swagger:model CountErrorResponse
type CountErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCountHandler returns an HTTP handler reporting the number of accounts.
// @Summary Count accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.CountResponse "Account count"
// @Router /accounts/count [get]
func NewCountHandler(svc Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.CountUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CountErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CountResponse{Count: count})
	}
}
