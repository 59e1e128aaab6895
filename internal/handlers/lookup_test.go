package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/grinval/gs-login-core/internal/models"
)

func TestLookupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/accounts/{username}", NewLookupHandler(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().
			GetUser(gomock.Any(), "alice").
			Return(&models.AccountDB{PlayerID: 500000000, Username: "alice", Email: "a@x.com", Country: "US"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/alice", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"player_id":500000000`)
		// Password hash never leaves the service
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().
			GetUser(gomock.Any(), "ghost").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/ghost", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().
			GetUser(gomock.Any(), "alice").
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/accounts/alice", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
