// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userKey: ключ контекста, под которым хранится аутентифицированный пользователь.
const userKey ctxKey = "user"

// Authenticator разрешает ключ токена в пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (models.User, error)
}

// UserFromContext извлекает аутентифицированного пользователя из контекста.
//
// Возвращает false, если запрос анонимный.
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}

// WithUser кладёт пользователя в контекст (используется также в тестах).
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// TokenAuth возвращает middleware проверки токена API.
//
// Middleware:
//   - ожидает заголовок Authorization: Token <key> (или Bearer <key>)
//   - разрешает ключ в пользователя через Authenticator
//   - сохраняет пользователя в context.Context
//
// Без заголовка или с недействительным ключом: 401 Unauthorized.
func TokenAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ExtractToken(r.Header.Get("Authorization"))
			if key == "" {
				writeUnauthorized(w, "Token")
				return
			}

			u, err := auth.Authenticate(r.Context(), key)
			if err != nil {
				if errors.Is(err, serr.ErrUnauthorized) {
					writeUnauthorized(w, "Token")
					return
				}
				writeError(w, http.StatusInternalServerError, serr.ErrInternal)
				return
			}

			setRequestUser(r.Context(), u.ID.String())
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// ExtractToken извлекает ключ из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Token <key>
//	Authorization: Bearer <key>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractToken(h string) string {
	return extractScheme(h, "Token", "Bearer")
}

// ExtractBearer извлекает JWT из заголовка Authorization: Bearer <token>.
func ExtractBearer(h string) string {
	return extractScheme(h, "Bearer")
}

func extractScheme(h string, schemes ...string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	for _, s := range schemes {
		if strings.EqualFold(parts[0], s) {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}

func writeUnauthorized(w http.ResponseWriter, scheme string) {
	w.Header().Set("WWW-Authenticate", scheme)
	writeError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
}
