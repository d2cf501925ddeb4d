package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// UserLookup загружает пользователя по id.
type UserLookup interface {
	Get(ctx context.Context, id uuid.UUID) (models.User, error)
}

// JWTVerifier проверяет JWT консоли администратора.
//
// Используется в HTTP middleware для:
//   - проверки подписи и срока токена
//   - валидации issuer, audience и scope
//   - извлечения userID из claims.Subject
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// Verify проверяет токен и возвращает id пользователя из sub.
func (v *JWTVerifier) Verify(tokenStr string) (uuid.UUID, error) {
	return crypto.ParseAdminToken(tokenStr, crypto.JWTConfig{
		Issuer:     v.Issuer,
		Audience:   v.Audience,
		SigningKey: v.SigningKey,
	})
}

// AdminOnly возвращает middleware консоли администратора.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <jwt>
//   - загружает пользователя из claims.Subject
//   - пропускает только активных staff-пользователей
//
// Невалидный токен: 401, пользователь без прав: 403.
func (v *JWTVerifier) AdminOnly(users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeUnauthorized(w, "Bearer")
				return
			}

			userID, err := v.Verify(tokenStr)
			if err != nil {
				writeUnauthorized(w, "Bearer")
				return
			}

			u, err := users.Get(r.Context(), userID)
			if err != nil {
				if errors.Is(err, serr.ErrNotFound) {
					writeUnauthorized(w, "Bearer")
					return
				}
				writeError(w, http.StatusInternalServerError, serr.ErrInternal)
				return
			}
			if !u.IsActive || !u.IsStaff {
				writeError(w, http.StatusForbidden, serr.ErrForbidden)
				return
			}

			setRequestUser(r.Context(), u.ID.String())
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
