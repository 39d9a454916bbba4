package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// DefaultBcryptCost is the work factor used for new password hashes.
const DefaultBcryptCost = 12

// Column limits of the users table, counted in characters.
const (
	maxEmailLen    = 255
	maxUsernameLen = 50
	maxNameLen     = 100
)

// Error variables
var (
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrRevocationDisabled = errors.New("token revocation is not configured")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.UserDB, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenDenylist tracks revoked token ids.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenManager
	denylist    TokenDenylist
	kafkaWriter KafkaWriter
	cost        int
	now         func() time.Time
	dummyHash   []byte
}

// NewAuthService creates a new AuthService instance.
// denylist and kafkaWriter may be nil; a cost outside bcrypt's range selects DefaultBcryptCost.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	tokens TokenManager,
	denylist TokenDenylist,
	kafkaWriter KafkaWriter,
	cost int,
) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		denylist:    denylist,
		kafkaWriter: kafkaWriter,
		cost:        cost,
		now:         time.Now,
		dummyHash:   newDummyHash(cost),
	}
}

// Register creates a user account and returns it together with a session token.
func (svc *AuthService) Register(
	ctx context.Context,
	email, username, password, firstName, lastName string,
) (*models.User, string, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if email == "" || username == "" || password == "" || firstName == "" || lastName == "" {
		return nil, "", fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if err := checkLen("email", email, maxEmailLen); err != nil {
		return nil, "", err
	}
	if err := checkLen("username", username, maxUsernameLen); err != nil {
		return nil, "", err
	}
	if err := checkLen("first name", firstName, maxNameLen); err != nil {
		return nil, "", err
	}
	if err := checkLen("last name", lastName, maxNameLen); err != nil {
		return nil, "", err
	}

	// Fast path only; the unique constraints decide under concurrency.
	_, err := svc.reader.GetByEmailOrUsername(ctx, email, username)
	switch {
	case err == nil:
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return nil, "", ErrUserAlreadyExists
	case !errors.Is(err, models.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, "", fmt.Errorf("%w: password is too long", ErrValidation)
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			logger.Log.Infow("user already exists", "username", username, "email", email)
			return nil, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.UserID, "err", err)
		return nil, "", err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserRegistered, user.UserID, "", svc.now()))

	return user.Public(), token, nil
}

// Login authenticates a user by email and password and returns a fresh token.
// Unknown, inactive and wrong-password attempts all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := svc.reader.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison.
			_ = bcrypt.CompareHashAndPassword(svc.dummyHash, []byte(password))
			logger.Log.Infow("invalid credentials", "email", email)
			return nil, "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Log.Errorw("stored password hash is unusable", "userID", user.UserID, "err", err)
		}
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	now := svc.now().UTC()
	if err := svc.writer.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		logger.Log.Warnw("failed to record last login", "userID", user.UserID, "err", err)
	} else {
		user.LastLoginAt = &now
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.UserID, "err", err)
		return nil, "", err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserLoggedIn, user.UserID, "", now))

	return user.Public(), token, nil
}

// Authenticate verifies a bearer token and returns its claims.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := svc.tokens.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if svc.denylist != nil {
		revoked, err := svc.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.Log.Errorw("failed to check token revocation", "token_id", claims.ID, "err", err)
			return nil, err
		}
		if revoked {
			return nil, fmt.Errorf("%w: token has been revoked", ErrInvalidToken)
		}
	}

	return claims, nil
}

// Logout revokes the token described by claims until it expires.
func (svc *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if svc.denylist == nil {
		return ErrRevocationDisabled
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(svc.now())
	}

	if err := svc.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", claims.ID, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserLoggedOut, claims.UserID, "", svc.now()))
	return nil
}

// Me returns the public profile of userID.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	return user.Public(), nil
}

// newDummyHash returns a hash at the given cost that no submitted password matches.
func newDummyHash(cost int) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		logger.Log.Errorw("failed to prepare dummy password hash", "err", err)
	}
	return h
}

// checkLen rejects values longer than limit characters.
func checkLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, limit)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
