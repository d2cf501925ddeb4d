// Package crypto содержит криптографические примитивы сервера:
//   - хэширование паролей (argon2id, bcrypt);
//   - генерацию непрозрачных токенов API;
//   - подпись и проверку JWT консоли администратора (HS256).
package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminScope: единственная область действия, которую принимает консоль администратора.
const AdminScope = "admin"

// JWTConfig описывает параметры JWT консоли администратора.
type JWTConfig struct {
	Issuer   string
	Audience string
	// SigningKey: секретный ключ для подписи токена (HS256).
	SigningKey string
	AccessTTL  time.Duration
}

// AdminClaims: зарегистрированные claims плюс scope.
type AdminClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

var errWrongScope = errors.New("token is not an admin token")

// NewAdminToken подписывает JWT консоли администратора для userID.
//
// now передаётся снаружи, чтобы выдача зависела от часов сервиса.
// Каждый токен получает собственный jti.
func NewAdminToken(userID uuid.UUID, now time.Time, cfg JWTConfig) (string, error) {
	claims := AdminClaims{
		Scope: AdminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SigningKey))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return signed, nil
}

// ParseAdminToken проверяет подпись, срок, issuer, audience и scope
// и возвращает id пользователя из sub. Пустые Issuer/Audience не проверяются.
func ParseAdminToken(tokenStr string, cfg JWTConfig) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	claims := &AdminClaims{}
	if _, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	}); err != nil {
		return uuid.Nil, err
	}
	if claims.Scope != AdminScope {
		return uuid.Nil, errWrongScope
	}

	return uuid.Parse(strings.TrimSpace(claims.Subject))
}
