package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrEmptySecret is returned by New when no signing key was supplied.
	ErrEmptySecret = errors.New("jwt secret key is empty")
	// ErrTokenMissing is returned when a request carries no bearer token.
	ErrTokenMissing = errors.New("authorization token missing")
	// ErrTokenInvalid is returned for tokens that fail signature, format or expiry checks.
	ErrTokenInvalid = errors.New("authorization token invalid")
)

const defaultExpiration = 24 * time.Hour

// Claims are the session claims carried by every issued token.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	issuer    string
	now       func() time.Time
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the lifetime of issued tokens.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithIssuer sets the iss claim written into and required from tokens.
func WithIssuer(issuer string) Opt {
	return func(j *JWT) {
		j.issuer = issuer
	}
}

// New creates a JWT instance. A signing key is mandatory.
func New(opts ...Opt) (*JWT, error) {
	j := &JWT{
		exp: defaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	if len(j.secretKey) == 0 {
		return nil, ErrEmptySecret
	}
	return j, nil
}

// Generate creates a signed token for userID with a fresh token id.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims verifies tokenString and returns its claims.
// Every failure is reported as ErrTokenInvalid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id not found in token", ErrTokenInvalid)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: token id not found in token", ErrTokenInvalid)
	}

	return claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
// A missing header or an empty bearer value yields ErrTokenMissing,
// any other scheme or shape yields ErrTokenInvalid.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Fields(authHeader)

	switch {
	case len(parts) == 0:
		return "", ErrTokenMissing
	case !strings.EqualFold(parts[0], "bearer"):
		return "", fmt.Errorf("%w: unsupported authorization scheme", ErrTokenInvalid)
	case len(parts) == 1:
		return "", ErrTokenMissing
	case len(parts) > 2:
		return "", fmt.Errorf("%w: invalid authorization header format", ErrTokenInvalid)
	}

	return parts[1], nil
}
