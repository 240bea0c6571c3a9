package service

import (
	"context"
	"testing"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/config"
	"notemark-be/internal/dto"
	"notemark-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var testAuthConfig = config.AuthConfig{
	JwtSecret:   "test_secret",
	TokenExpiry: time.Hour,
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewAuthService(factory, testAuthConfig)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)

	res, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testAuthConfig.JwtSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.Id.String(), claims["user_id"])
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewAuthService(factory, testAuthConfig)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "other",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewAuthService(factory, testAuthConfig)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}
