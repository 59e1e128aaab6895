package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grinval/gs-login-core/internal/logger"
)

// Heartbeater defines the interface that the service must implement.
type Heartbeater interface {
	UpsertServer(ctx context.Context, address string, port int) error
}

// HeartbeatRequest represents the JSON body of a server heartbeat
// swagger:model HeartbeatRequest
type HeartbeatRequest struct {
	// Server IP address
	// required: true
	// default: 10.0.0.1
	Address string `json:"address"`

	// Server query port
	// required: true
	// default: 7000
	Port int `json:"port"`
}

// HeartbeatErrorResponse represents an error response for a heartbeat
// swagger:model HeartbeatErrorResponse
type HeartbeatErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewHeartbeatHandler returns an HTTP handler recording a server heartbeat.
// Safe to call redundantly: each heartbeat refreshes the server's timestamp.
// @Summary Record a server heartbeat
// @Tags servers
// @Accept json
// @Produce json
// @Param heartbeatRequest body handlers.HeartbeatRequest true "Server heartbeat"
// @Success 204 "Server marked online"
// @Failure 400 {object} handlers.HeartbeatErrorResponse "Malformed endpoint"
// @Router /servers/heartbeat [post]
func NewHeartbeatHandler(svc Heartbeater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HeartbeatRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HeartbeatErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.UpsertServer(r.Context(), req.Address, req.Port); err != nil {
			logger.Log.Errorw("heartbeat rejected", "address", req.Address, "port", req.Port, "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HeartbeatErrorResponse{
				Error: err.Error(),
			})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
