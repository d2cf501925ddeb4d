package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

type fakeAuth struct {
	users map[string]models.User
	err   error
}

func (f fakeAuth) Authenticate(_ context.Context, key string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	u, ok := f.users[key]
	if !ok {
		return models.User{}, serr.ErrUnauthorized
	}
	return u, nil
}

func okHandler(t *testing.T, want uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := middleware.UserFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, want, u.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenAuth(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "test@mail.com", IsActive: true}
	mw := middleware.TokenAuth(fakeAuth{users: map[string]models.User{"abc": user}})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"token scheme", "Token abc", http.StatusOK},
		{"bearer scheme", "Bearer abc", http.StatusOK},
		{"case insensitive", "token abc", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"unknown key", "Token nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"no key", "Token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			mw(okHandler(t, user.ID)).ServeHTTP(rr, req)

			require.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusUnauthorized {
				require.Equal(t, "Token", rr.Header().Get("WWW-Authenticate"))
				require.Contains(t, rr.Body.String(), "error")
			}
		})
	}
}

// Ошибка хранилища: 500, а не 401
func TestTokenAuth_InternalError(t *testing.T) {
	mw := middleware.TokenAuth(fakeAuth{err: errors.Join(serr.ErrInternal, errors.New("db down"))})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()

	mw(http.NotFoundHandler()).ServeHTTP(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestExtractToken(t *testing.T) {
	require.Equal(t, "k", middleware.ExtractToken("Token k"))
	require.Equal(t, "k", middleware.ExtractToken("  Bearer   k "))
	require.Empty(t, middleware.ExtractToken("Basic k"))
	require.Empty(t, middleware.ExtractBearer("Token k"))
	require.Equal(t, "k", middleware.ExtractBearer("Bearer k"))
}

// Вспомогательная функция для JWT
func makeToken(t *testing.T, key, sub, iss, aud string, exp time.Time) string {
	t.Helper()
	return makeScopedToken(t, key, crypto.AdminScope, sub, iss, aud, exp)
}

func makeScopedToken(t *testing.T, key, scope, sub, iss, aud string, exp time.Time) string {
	t.Helper()

	claims := crypto.AdminClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sub,
			Issuer:   iss,
			Audience: []string{aud},
		},
	}
	// нулевое время: токен без exp
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

type fakeUsers map[uuid.UUID]models.User

func (f fakeUsers) Get(_ context.Context, id uuid.UUID) (models.User, error) {
	u, ok := f[id]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}

func TestAdminOnly(t *testing.T) {
	key := "supersecretkeysupersecretkey123456"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	staff := models.User{ID: uuid.New(), IsActive: true, IsStaff: true}
	plain := models.User{ID: uuid.New(), IsActive: true}
	users := fakeUsers{staff.ID: staff, plain.ID: plain}

	exp := time.Now().Add(time.Minute)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"staff", makeToken(t, key, staff.ID.String(), "issuer", "aud", exp), http.StatusOK},
		{"not staff", makeToken(t, key, plain.ID.String(), "issuer", "aud", exp), http.StatusForbidden},
		{"unknown user", makeToken(t, key, uuid.NewString(), "issuer", "aud", exp), http.StatusUnauthorized},
		{"expired", makeToken(t, key, staff.ID.String(), "issuer", "aud", time.Now().Add(-time.Minute)), http.StatusUnauthorized},
		{"wrong issuer", makeToken(t, key, staff.ID.String(), "other", "aud", exp), http.StatusUnauthorized},
		{"wrong audience", makeToken(t, key, staff.ID.String(), "issuer", "other", exp), http.StatusUnauthorized},
		{"wrong key", makeToken(t, "another-key-another-key-another-key", staff.ID.String(), "issuer", "aud", exp), http.StatusUnauthorized},
		{"bad subject", makeToken(t, key, "not-a-uuid", "issuer", "aud", exp), http.StatusUnauthorized},
		{"no scope", makeScopedToken(t, key, "", staff.ID.String(), "issuer", "aud", exp), http.StatusUnauthorized},
		{"no expiry", makeToken(t, key, staff.ID.String(), "issuer", "aud", time.Time{}), http.StatusUnauthorized},
		{"no token", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			v.AdminOnly(users)(okHandler(t, staff.ID)).ServeHTTP(rr, req)
			require.Equal(t, tt.want, rr.Code)
		})
	}
}
