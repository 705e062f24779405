package auth

import (
	"testing"
	"time"

	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "devisio-test",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	raw, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 42, Role: RoleUser})
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	raw, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), AccessTokenPayload{UserID: 7, Role: RoleAdmin})
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, raw)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	raw, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{UserID: 7, Role: RoleUser})
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "different"
	_, err = ParseAccessToken(other, raw)
	assert.Error(t, err)
}

func TestMintAccessTokenValidatesPayload(t *testing.T) {
	cfg := testJWTConfig()

	_, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 0, Role: RoleUser})
	assert.Error(t, err)

	_, err = MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, Role: Role("ghost")})
	assert.Error(t, err)
}
