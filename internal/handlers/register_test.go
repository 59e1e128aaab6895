package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCreator(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Username: "alice",
				Password: "pw",
				Email:    "A@x.com",
				Country:  "US",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateUser(gomock.Any(), "alice", "pw", "A@x.com", "US").
					Return(int64(500000000), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{
				PlayerID: 500000000,
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RegisterErrorResponse{
				Error: "Invalid request body",
			},
		},
		{
			name: "duplicate username",
			inputBody: RegisterRequest{
				Username: "alice",
				Password: "pw",
				Email:    "a@x.com",
				Country:  "US",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateUser(gomock.Any(), "alice", "pw", "a@x.com", "US").
					Return(int64(0), nil)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &RegisterErrorResponse{
				Error: "Username already exists",
			},
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username: "bob",
				Password: "pw",
				Email:    "b@x.com",
				Country:  "DE",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CreateUser(gomock.Any(), "bob", "pw", "b@x.com", "DE").
					Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &RegisterErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			expected, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expected), rr.Body.String())
		})
	}
}
