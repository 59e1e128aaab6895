package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHeartbeatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHeartbeater(ctrl)
	handler := NewHeartbeatHandler(mockSvc)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/servers/heartbeat",
			bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()
		handler(rr, req)
		return rr
	}

	t.Run("recorded", func(t *testing.T) {
		mockSvc.EXPECT().
			UpsertServer(gomock.Any(), "10.0.0.1", 7000).
			Return(nil)

		rr := do(`{"address":"10.0.0.1","port":7000}`)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("malformed endpoint", func(t *testing.T) {
		mockSvc.EXPECT().
			UpsertServer(gomock.Any(), "not-an-ip", 7000).
			Return(errors.New(`invalid server address "not-an-ip"`))

		rr := do(`{"address":"not-an-ip","port":7000}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		rr := do(`{broken`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOfflineHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOfflineMarker(ctrl)
	handler := NewOfflineHandler(mockSvc)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/servers/offline",
			bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()
		handler(rr, req)
		return rr
	}

	t.Run("marked offline", func(t *testing.T) {
		mockSvc.EXPECT().
			MarkServerOffline(gomock.Any(), "10.0.0.1", 7000).
			Return(int64(1), nil)

		rr := do(`{"address":"10.0.0.1","port":7000}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"updated":1}`, rr.Body.String())
	})

	t.Run("unknown endpoint is a no-op", func(t *testing.T) {
		mockSvc.EXPECT().
			MarkServerOffline(gomock.Any(), "192.168.1.1", 7100).
			Return(int64(0), nil)

		rr := do(`{"address":"192.168.1.1","port":7100}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"updated":0}`, rr.Body.String())
	})
}
