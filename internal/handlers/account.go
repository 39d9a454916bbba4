package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

// Logouter revokes the caller's token.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// Profiler returns the caller's profile.
type Profiler interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ClaimsGetter returns the verified claims of the current request, or nil.
type ClaimsGetter func(ctx context.Context) *jwt.Claims

// UserIDGetter returns the authenticated user id of the current request.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

// NewLogoutHandler returns an HTTP handler revoking the presented token.
// @Summary Logout
// @Description Revokes the bearer token until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Access token required"
// @Failure 403 {object} models.ErrorResponse "Invalid token"
// @Failure 501 {object} models.ErrorResponse "Revocation is not configured"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, claimsGetter ClaimsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsGetter(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		if err := svc.Logout(r.Context(), claims); err != nil {
			if errors.Is(err, services.ErrRevocationDisabled) {
				writeError(w, http.StatusNotImplemented, "Logout is not available")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
	}
}

// NewMeHandler returns an HTTP handler for the caller's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse "Access token required"
// @Failure 403 {object} models.ErrorResponse "Invalid token"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc Profiler, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDGetter(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, msgTokenRequired)
			return
		}

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
