package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Authenticator extracts a bearer token from a request and verifies it.
type Authenticator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Authenticate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the verified claims in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := auth.GetTokenFromRequest(ctx, r)
			if err == nil {
				var claims *jwt.Claims
				claims, err = auth.Authenticate(ctx, tokenString)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, claimsKey{}, claims)))
					return
				}
			}

			switch {
			case errors.Is(err, jwt.ErrTokenMissing), errors.Is(err, services.ErrUnauthenticated):
				logger.Log.Infow("authorization failed", "uri", r.RequestURI, "err", err)
				writeError(w, http.StatusUnauthorized, "Access token required")
			case errors.Is(err, jwt.ErrTokenInvalid), errors.Is(err, services.ErrInvalidToken):
				logger.Log.Infow("authorization failed", "uri", r.RequestURI, "err", err)
				writeError(w, http.StatusForbidden, "Invalid token")
			default:
				logger.Log.Errorw("authorization failed", "uri", r.RequestURI, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		})
	}
}

// GetClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// GetUserIDFromContext returns the authenticated user id.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := GetClaimsFromContext(ctx)
	if claims == nil || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
