package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		JWTSecret: secret,
		TokenTTL:  ttl,
	}

	return cfg
}

func TestJWTService_SignAndValidate(t *testing.T) {
	svc := NewJWTService(newTestConfig("test-secret", time.Hour))

	claims := service.Claims{
		UserID: 42,
		Email:  "a@b.com",
		Name:   "A",
	}

	token, err := svc.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Name, parsed.Name)
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	signer := NewJWTService(newTestConfig("secret-a", time.Hour))
	verifier := NewJWTService(newTestConfig("secret-b", time.Hour))

	token, err := signer.Sign(service.Claims{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(newTestConfig("test-secret", -time.Minute))

	token, err := svc.Sign(service.Claims{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService(newTestConfig("test-secret", time.Hour))

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
