package service_test

import (
	"errors"
	"testing"

	apperrors "github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/models"
	"github.com/mahawer/mahawer-api/internal/repositories/mocks"
	service "github.com/mahawer/mahawer-api/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var loginJwtKey = []byte("unit-test-signing-key-1234567890")

func TestLoginFlow(t *testing.T) {
	password := "correct-horse-battery"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &models.User{
		ID:       uuid.New(),
		Email:    "admin@mahawer.sa",
		Password: string(hash),
		Role:     "ADMIN",
	}

	t.Run("Success - Signed Token With Claims", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRate := new(mocks.RateLimitRepository)
		svc := service.NewUserService(mockRepo, mockRate, loginJwtKey)

		mockRate.On("CheckLoginRateLimit", mock.Anything, admin.Email).Return(true, 4, 0, nil).Once()
		mockRepo.On("GetByEmail", mock.Anything, admin.Email).Return(admin, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: admin.Email, Password: password})

		require.NoError(t, err)
		require.True(t, resp.Success)
		require.NotEmpty(t, resp.Token)
		assert.InDelta(t, 24*60*60, resp.ExpiresIn, 5)

		claims := &models.Claims{}

		parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (any, error) {
			return loginJwtKey, nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		assert.Equal(t, admin.ID, claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)

		mockRepo.AssertExpectations(t)
		mockRate.AssertExpectations(t)
	})

	t.Run("Fail - Wrong Password", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRate := new(mocks.RateLimitRepository)
		svc := service.NewUserService(mockRepo, mockRate, loginJwtKey)

		mockRate.On("CheckLoginRateLimit", mock.Anything, admin.Email).Return(true, 2, 0, nil).Once()
		mockRepo.On("GetByEmail", mock.Anything, admin.Email).Return(admin, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: admin.Email, Password: "guess"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Token)
		assert.Equal(t, 2, resp.RemainingTries)
	})

	t.Run("Fail - Unknown Email Looks Like Wrong Password", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRate := new(mocks.RateLimitRepository)
		svc := service.NewUserService(mockRepo, mockRate, loginJwtKey)

		mockRate.On("CheckLoginRateLimit", mock.Anything, "ghost@mahawer.sa").Return(true, 4, 0, nil).Once()
		mockRepo.On("GetByEmail", mock.Anything, "ghost@mahawer.sa").
			Return(nil, errors.New("sql: no rows in result set")).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: "ghost@mahawer.sa", Password: password})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Fail - Rate Limited", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRate := new(mocks.RateLimitRepository)
		svc := service.NewUserService(mockRepo, mockRate, loginJwtKey)

		mockRate.On("CheckLoginRateLimit", mock.Anything, admin.Email).Return(false, 0, 720, nil).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: admin.Email, Password: password})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 720, resp.RetryAfter)

		mockRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Fail - Rate Limit Backend Down", func(t *testing.T) {
		mockRepo := new(mocks.UserRepository)
		mockRate := new(mocks.RateLimitRepository)
		svc := service.NewUserService(mockRepo, mockRate, loginJwtKey)

		mockRate.On("CheckLoginRateLimit", mock.Anything, admin.Email).
			Return(false, 0, 0, errors.New("redis: connection refused")).Once()

		resp, err := svc.Login(t.Context(), &models.LoginRequest{Email: admin.Email, Password: password})

		require.Error(t, err)
		assert.Nil(t, resp)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeThirdPartyError, appErr.Code)
	})
}
