package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grinval/gs-login-core/internal/logger"
)

// Creator defines the interface that the service must implement.
type Creator interface {
	CreateUser(ctx context.Context, username, password, email, country string) (int64, error)
}

// RegisterRequest represents the JSON body for account creation
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Country
	// default: US
	Country string `json:"country"`
}

// RegisterResponse represents a successful account creation response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Assigned player identity
	PlayerID int64 `json:"player_id"`
}

// RegisterErrorResponse represents an error response for account creation
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for account creation.
// @Summary Create a new account
// @Description Creates an account and assigns its player identity. Password is hashed before storing.
// @Tags accounts
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Account creation request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username already exists"
// @Router /accounts [post]
func NewRegisterHandler(svc Creator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		playerID, err := svc.CreateUser(r.Context(), req.Username, req.Password, req.Email, req.Country)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if playerID == 0 {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Username already exists",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			PlayerID: playerID,
		})
	}
}
