package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID}

	tests := []struct {
		name             string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrTokenMissing)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Access token required"}`,
		},
		{
			name: "EmptyToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", nil)
				m.EXPECT().Authenticate(gomock.Any(), "").Return(nil, services.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Access token required"}`,
		},
		{
			name: "WrongScheme",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("%w: unsupported scheme", jwt.ErrTokenInvalid))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, fmt.Errorf("%w: expired", services.ErrInvalidToken))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name: "DenylistUnavailable",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(claims, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				assert.Same(t, claims, GetClaimsFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, GetClaimsFromContext(context.Background()))
}
