package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grinval/gs-login-core/internal/logger"
)

// CountryUpdater defines the interface that the service must implement.
type CountryUpdater interface {
	UpdateCountry(ctx context.Context, username, country string) (int64, error)
}

// LocaleRequest represents the JSON body for a locale update
// swagger:model LocaleRequest
type LocaleRequest struct {
	// Country
	// required: true
	// default: US
	Country string `json:"country"`
}

// LocaleErrorResponse represents an error response for a locale update
// swagger:model LocaleErrorResponse
type LocaleErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewLocaleHandler returns an HTTP handler updating the locale of an account.
// @Summary Update account locale
// @Tags accounts
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param localeRequest body handlers.LocaleRequest true "Locale update request"
// @Success 204 "Locale updated"
// @Failure 404 {object} handlers.LocaleErrorResponse "No such account"
// @Router /accounts/{username}/locale [put]
func NewLocaleHandler(svc CountryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req LocaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Country == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocaleErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		rows, err := svc.UpdateCountry(r.Context(), username, req.Country)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LocaleErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if rows == 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(LocaleErrorResponse{
				Error: "Account not found",
			})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
