package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grinval/gs-login-core/internal/logger"
)

// OfflineMarker defines the interface that the service must implement.
type OfflineMarker interface {
	MarkServerOffline(ctx context.Context, address string, port int) (int64, error)
}

// OfflineRequest represents the JSON body of an explicit offline signal
// swagger:model OfflineRequest
type OfflineRequest struct {
	// Server IP address
	// required: true
	Address string `json:"address"`

	// Server query port
	// required: true
	Port int `json:"port"`
}

// OfflineResponse reports how many rows the offline signal touched
// swagger:model OfflineResponse
type OfflineResponse struct {
	// Rows updated (0 when the endpoint was never registered)
	Updated int64 `json:"updated"`
}

// OfflineErrorResponse represents an error response for an offline signal
// swagger:model OfflineErrorResponse
type OfflineErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewOfflineHandler returns an HTTP handler flipping a server to offline.
// Endpoints without a row are a no-op; history is never deleted.
// @Summary Mark a server offline
// @Tags servers
// @Accept json
// @Produce json
// @Param offlineRequest body handlers.OfflineRequest true "Offline signal"
// @Success 200 {object} handlers.OfflineResponse "Rows updated"
// @Failure 400 {object} handlers.OfflineErrorResponse "Malformed endpoint"
// @Router /servers/offline [post]
func NewOfflineHandler(svc OfflineMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OfflineRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfflineErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		rows, err := svc.MarkServerOffline(r.Context(), req.Address, req.Port)
		if err != nil {
			logger.Log.Errorw("offline signal rejected", "address", req.Address, "port", req.Port, "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OfflineErrorResponse{
				Error: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OfflineResponse{Updated: rows})
	}
}
