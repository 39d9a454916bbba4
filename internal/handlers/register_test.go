package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "john@example.com", Username: "john", FirstName: "John", LastName: "Doe"}
	valid := models.RegisterRequest{
		Email:     "john@example.com",
		Username:  "john",
		Password:  "secret",
		FirstName: "John",
		LastName:  "Doe",
	}

	tests := []struct {
		name         string
		reqBody      any
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			reqBody: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john", "secret", "John", "Doe").
					Return(user, "token-value", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "missing fields",
			reqBody: models.RegisterRequest{Email: "john@example.com"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "", "", "", "").
					Return(nil, "", fmt.Errorf("%w: all fields are required", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "All fields are required"},
		},
		{
			name:    "user already exists",
			reqBody: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, "", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "User already exists"},
		},
		{
			name:    "internal server error",
			reqBody: valid,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			body := []byte(tt.rawBody)
			if tt.reqBody != nil {
				body, _ = json.Marshal(tt.reqBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(body))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedBody != nil {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
				return
			}

			var resp models.AuthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "token-value", resp.Token)
			assert.Equal(t, user.ID, resp.User.ID)
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}
