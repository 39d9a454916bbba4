package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockTokens := NewMockTokenManager(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockTokens, nil, nil, bcrypt.MinCost)
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		var saved *models.UserDB
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "a@x.com", "a1").
			Return(nil, models.ErrNotFound)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.UserDB) error {
				saved = u
				u.IsActive = true
				u.CreatedAt = time.Now()
				return nil
			})
		mockTokens.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (string, error) {
				return "token-" + id.String(), nil
			})

		user, token, err := svc.Register(ctx, " A@X.com ", "a1", "Secret123!", "A", "B")
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "a1", user.Username)
		assert.Equal(t, saved.UserID, user.ID)
		assert.Equal(t, "token-"+saved.UserID.String(), token)

		assert.NotEqual(t, "Secret123!", saved.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Secret123!")))
	})

	t.Run("existing user found by pre-check", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "a@x.com", "a2").
			Return(&models.UserDB{UserID: uuid.New()}, nil)

		user, token, err := svc.Register(ctx, "a@x.com", "a2", "Secret123!", "A", "B")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("unique constraint wins a race", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "b@x.com", "b1").
			Return(nil, models.ErrNotFound)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(models.ErrConflict)

		_, _, err := svc.Register(ctx, "b@x.com", "b1", "Secret123!", "A", "B")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "c@x.com", "c1").
			Return(nil, errors.New("db error"))

		_, _, err := svc.Register(ctx, "c@x.com", "c1", "Secret123!", "A", "B")
		assert.EqualError(t, err, "db error")
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "d@x.com", "d1").
			Return(nil, models.ErrNotFound)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("save error"))

		_, _, err := svc.Register(ctx, "d@x.com", "d1", "Secret123!", "A", "B")
		assert.EqualError(t, err, "save error")
	})

	t.Run("token error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "e@x.com", "e1").
			Return(nil, models.ErrNotFound)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("jwt error"))

		_, _, err := svc.Register(ctx, "e@x.com", "e1", "Secret123!", "A", "B")
		assert.EqualError(t, err, "jwt error")
	})

	t.Run("password too long", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmailOrUsername(gomock.Any(), "f@x.com", "f1").
			Return(nil, models.ErrNotFound)

		long := string(make([]byte, 73))
		_, _, err := svc.Register(ctx, "f@x.com", "f1", long, "A", "B")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call is expected for any of these.
	svc := NewAuthService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), nil, nil, bcrypt.MinCost)

	tests := []struct {
		name                                   string
		email, username, password, first, last string
	}{
		{"missing email", "", "a1", "pw", "A", "B"},
		{"blank email", "   ", "a1", "pw", "A", "B"},
		{"missing username", "a@x.com", "", "pw", "A", "B"},
		{"missing password", "a@x.com", "a1", "", "A", "B"},
		{"missing first name", "a@x.com", "a1", "pw", "", "B"},
		{"missing last name", "a@x.com", "a1", "pw", "A", ""},
		{"email too long", strings.Repeat("a", 250) + "@x.com", "a1", "pw", "A", "B"},
		{"username too long", "a@x.com", strings.Repeat("u", 51), "pw", "A", "B"},
		{"first name too long", "a@x.com", "a1", "pw", strings.Repeat("é", 101), "B"},
		{"last name too long", "a@x.com", "a1", "pw", "A", strings.Repeat("b", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Register(context.Background(), tt.email, tt.username, tt.password, tt.first, tt.last)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}
}

func TestAuthService_Register_LengthLimitsAreInclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	svc := NewAuthService(mockReader, NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), nil, nil, bcrypt.MinCost)

	username := strings.Repeat("ü", 50)
	mockReader.EXPECT().GetByEmailOrUsername(gomock.Any(), "a@x.com", username).Return(nil, errors.New("db down"))

	_, _, err := svc.Register(context.Background(), "a@x.com", username, "pw", strings.Repeat("f", 100), strings.Repeat("l", 100))
	assert.EqualError(t, err, "db down")
}

func TestNewAuthService_CostOutOfRange(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		svc := NewAuthService(nil, nil, nil, nil, nil, cost)
		assert.Equal(t, DefaultBcryptCost, svc.cost, "cost %d", cost)

		got, err := bcrypt.Cost(svc.dummyHash)
		require.NoError(t, err)
		assert.Equal(t, DefaultBcryptCost, got)
	}

	assert.Equal(t, bcrypt.MinCost, NewAuthService(nil, nil, nil, nil, nil, bcrypt.MinCost).cost)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockTokens := NewMockTokenManager(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockTokens, nil, nil, bcrypt.MinCost)
	ctx := context.Background()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	newUser := func() *models.UserDB {
		return &models.UserDB{
			UserID:       uuid.New(),
			Email:        "alice@example.com",
			Username:     "alice",
			PasswordHash: string(hashed),
			IsActive:     true,
		}
	}

	t.Run("successful login", func(t *testing.T) {
		user := newUser()
		mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		mockWriter.EXPECT().UpdateLastLogin(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
		mockTokens.EXPECT().Generate(gomock.Any(), user.UserID).Return("token123", nil)

		got, token, err := svc.Login(ctx, "Alice@Example.com", password)
		require.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, user.UserID, got.ID)
		require.NotNil(t, got.LastLoginAt)
	})

	t.Run("last login failure does not fail login", func(t *testing.T) {
		user := newUser()
		mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		mockWriter.EXPECT().UpdateLastLogin(gomock.Any(), user.UserID, gomock.Any()).Return(errors.New("db down"))
		mockTokens.EXPECT().Generate(gomock.Any(), user.UserID).Return("token123", nil)

		got, token, err := svc.Login(ctx, "alice@example.com", password)
		require.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Nil(t, got.LastLoginAt)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("db error"))

		_, _, err := svc.Login(ctx, "alice@example.com", password)
		assert.EqualError(t, err, "db error")
	})

	t.Run("token error", func(t *testing.T) {
		user := newUser()
		mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
		mockWriter.EXPECT().UpdateLastLogin(gomock.Any(), user.UserID, gomock.Any()).Return(nil)
		mockTokens.EXPECT().Generate(gomock.Any(), user.UserID).Return("", errors.New("jwt error"))

		_, _, err := svc.Login(ctx, "alice@example.com", password)
		assert.EqualError(t, err, "jwt error")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", password)
		assert.ErrorIs(t, err, ErrValidation)
		_, _, err = svc.Login(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	svc := NewAuthService(mockReader, NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), nil, nil, bcrypt.MinCost)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)

	// Unknown email and inactive accounts both look like a missing row.
	mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "ghost@example.com").Return(nil, models.ErrNotFound)
	_, tokenUnknown, errUnknown := svc.Login(ctx, "ghost@example.com", "whatever")

	mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "bob@example.com").
		Return(&models.UserDB{UserID: uuid.New(), PasswordHash: string(hashed), IsActive: true}, nil)
	_, tokenWrong, errWrong := svc.Login(ctx, "bob@example.com", "wrong")

	mockReader.EXPECT().GetActiveByEmail(gomock.Any(), "broken@example.com").
		Return(&models.UserDB{UserID: uuid.New(), PasswordHash: "not-a-bcrypt-hash", IsActive: true}, nil)
	_, tokenBroken, errBroken := svc.Login(ctx, "broken@example.com", "whatever")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.ErrorIs(t, errBroken, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, errUnknown.Error(), errBroken.Error())
	assert.Empty(t, tokenUnknown)
	assert.Empty(t, tokenWrong)
	assert.Empty(t, tokenBroken)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokens := NewMockTokenManager(ctrl)
	mockDenylist := NewMockTokenDenylist(ctrl)
	svc := NewAuthService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl), mockTokens, mockDenylist, nil, bcrypt.MinCost)
	ctx := context.Background()

	claims := &jwt.Claims{UserID: uuid.New(), RegisteredClaims: gojwt.RegisteredClaims{ID: "jti-1"}}

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("bad token", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "bad").Return(nil, jwt.ErrTokenInvalid)
		_, err := svc.Authenticate(ctx, "bad")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "revoked").Return(claims, nil)
		mockDenylist.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
		_, err := svc.Authenticate(ctx, "revoked")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("denylist unavailable", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "good").Return(claims, nil)
		mockDenylist.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
		_, err := svc.Authenticate(ctx, "good")
		assert.EqualError(t, err, "redis down")
		assert.NotErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid token", func(t *testing.T) {
		mockTokens.EXPECT().GetClaims(gomock.Any(), "good").Return(claims, nil)
		mockDenylist.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
		got, err := svc.Authenticate(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, claims.UserID, got.UserID)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDenylist := NewMockTokenDenylist(ctrl)
	mockKafka := NewMockKafkaWriter(ctrl)
	svc := NewAuthService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), mockDenylist, mockKafka, bcrypt.MinCost)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	claims := &jwt.Claims{
		UserID: uuid.New(),
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	mockDenylist.EXPECT().Revoke(gomock.Any(), "jti-1", time.Hour).Return(nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), claims))

	mockDenylist.EXPECT().Revoke(gomock.Any(), "jti-1", time.Hour).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), claims), "redis down")

	noDenylist := NewAuthService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), nil, nil, bcrypt.MinCost)
	assert.ErrorIs(t, noDenylist.Logout(context.Background(), claims), ErrRevocationDisabled)
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	svc := NewAuthService(mockReader, NewMockUserWriter(ctrl), NewMockTokenManager(ctrl), nil, nil, bcrypt.MinCost)

	id := uuid.New()
	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(&models.UserDB{UserID: id, Email: "a@x.com"}, nil)
	user, err := svc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	mockReader.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound)
	_, err = svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockTokens := NewMockTokenManager(ctrl)
	mockKafka := NewMockKafkaWriter(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockTokens, nil, mockKafka, bcrypt.MinCost)

	mockReader.EXPECT().GetByEmailOrUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrNotFound)
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("t", nil)
	// A broker failure must not fail the registration.
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, token, err := svc.Register(context.Background(), "a@x.com", "a1", "pw", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "t", token)
}
