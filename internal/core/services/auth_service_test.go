package services_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/core/services"
	"github.com/SscSPs/trt_portal/internal/platform/config"
	"github.com/SscSPs/trt_portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "trt-portal-test",
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:4200/auth/callback",
	}
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	svc := services.NewTokenService(testConfig())
	user := &domain.User{UserID: 17, Username: "jdoe", Role: domain.RoleAdmin}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(17, 10), claims.Subject)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
	assert.Equal(t, "trt-portal-test", claims.Issuer)
}

func TestTokenService_NilUser(t *testing.T) {
	svc := services.NewTokenService(testConfig())

	_, _, err := svc.GenerateAccessToken(context.Background(), nil)
	assert.Error(t, err)
}

func TestGoogleOAuthService_LoginURLCarriesState(t *testing.T) {
	svc := services.NewGoogleOAuthHandlerService(testConfig())

	state, err := svc.GenerateStateString(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, state)

	url := svc.GetGoogleLoginURL(context.Background(), state)
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state="+state)
	assert.Contains(t, url, "client_id=client-id")
}

func TestGoogleOAuthService_ValidateWithoutClientID(t *testing.T) {
	cfg := testConfig()
	cfg.GoogleClientID = ""
	svc := services.NewGoogleOAuthHandlerService(cfg)

	_, err := svc.ValidateGoogleIDToken(context.Background(), "token")
	assert.Error(t, err)
}
