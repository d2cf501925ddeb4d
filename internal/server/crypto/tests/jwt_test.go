package tests

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	crypt "github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
)

func adminJWT() crypt.JWTConfig {
	return crypt.JWTConfig{
		Issuer:     "recipe-api",
		Audience:   "recipe-admin",
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  5 * time.Minute,
	}
}

func TestNewAdminToken_Claims(t *testing.T) {
	t.Parallel()
	cfg := adminJWT()
	userID := uuid.New()
	now := time.Now()

	tokenStr, err := crypt.NewAdminToken(userID, now, cfg)
	require.NoError(t, err)

	claims := &crypt.AdminClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		require.Equal(t, jwt.SigningMethodHS256, token.Method)
		return []byte(cfg.SigningKey), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	require.Equal(t, userID.String(), claims.Subject)
	require.Equal(t, cfg.Issuer, claims.Issuer)
	require.Equal(t, jwt.ClaimStrings{cfg.Audience}, claims.Audience)
	require.Equal(t, crypt.AdminScope, claims.Scope)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, now.Add(cfg.AccessTTL).Unix(), claims.ExpiresAt.Unix())
}

// У каждого токена свой jti
func TestNewAdminToken_UniqueID(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	now := time.Now()

	a, err := crypt.NewAdminToken(userID, now, adminJWT())
	require.NoError(t, err)
	b, err := crypt.NewAdminToken(userID, now, adminJWT())
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestParseAdminToken_RoundTrip(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	tokenStr, err := crypt.NewAdminToken(userID, time.Now(), adminJWT())
	require.NoError(t, err)

	got, err := crypt.ParseAdminToken(tokenStr, adminJWT())
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestParseAdminToken_Rejects(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	valid, err := crypt.NewAdminToken(userID, time.Now(), adminJWT())
	require.NoError(t, err)

	expiredCfg := adminJWT()
	expiredCfg.AccessTTL = -time.Minute
	expired, err := crypt.NewAdminToken(userID, time.Now(), expiredCfg)
	require.NoError(t, err)

	otherKey := adminJWT()
	otherKey.SigningKey = "another-key-another-key-another-key"

	otherIssuer := adminJWT()
	otherIssuer.Issuer = "someone-else"

	otherAudience := adminJWT()
	otherAudience.Audience = "recipe-public"

	// токен с правильной подписью, но без scope
	plain, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    adminJWT().Issuer,
		Audience:  jwt.ClaimStrings{adminJWT().Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(adminJWT().SigningKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		cfg   crypt.JWTConfig
	}{
		{"expired", expired, adminJWT()},
		{"wrong key", valid, otherKey},
		{"wrong issuer", valid, otherIssuer},
		{"wrong audience", valid, otherAudience},
		{"no scope", plain, adminJWT()},
		{"garbage", "not.a.jwt", adminJWT()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := crypt.ParseAdminToken(tt.token, tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestParseAdminToken_ExpiredIsErrTokenExpired(t *testing.T) {
	t.Parallel()
	cfg := adminJWT()

	tokenStr, err := crypt.NewAdminToken(uuid.New(), time.Now().Add(-time.Hour), cfg)
	require.NoError(t, err)

	_, err = crypt.ParseAdminToken(tokenStr, cfg)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}
