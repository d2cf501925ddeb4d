package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// TokenBytes: 160 бит энтропии на ключ.
const TokenBytes = 20

// NewToken генерирует непрозрачный ключ токена (40 hex-символов).
func NewToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashToken: в базе храним только хэш ключа.
func HashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
