package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

// Тестовый конфиг
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Admin: config.AdminConfig{
				Issuer:    "test",
				Audience:  "test-admin",
				AccessTTL: time.Minute,
				JWT: config.JWTConfig{
					Algorithm:  "HS256",
					SigningKey: "supersecretkeysupersecretkey123456",
				},
			},
		},
		Password: config.PasswordConfig{
			Hasher:    "argon2id",
			MinLength: 5,
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 8 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Media: config.MediaConfig{MaxUploadBytes: 1 << 20},
	}
}

// hashPassword хэширует пароль с параметрами тестового конфига.
func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password, service.PasswordParamsFromConfig(testConfig().Password))
	require.NoError(t, err)
	return hash
}
