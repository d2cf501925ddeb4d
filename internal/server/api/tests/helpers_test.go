package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	repoMocks "github.com/IvanChernomyrdin/go-recipe-api/internal/server/service/mocks"
)

const signingKey = "supersecretkeysupersecretkey123456"

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
					SigningKey: signingKey,
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

// repos: моки всех репозиториев, над которыми собраны настоящие сервисы
type repos struct {
	health      *repoMocks.MockHealthRepo
	users       *repoMocks.MockUsersRepo
	tokens      *repoMocks.MockTokensRepo
	tags        *repoMocks.MockTagsRepo
	ingredients *repoMocks.MockIngredientsRepo
	recipes     *repoMocks.MockRecipesRepo
	images      *repoMocks.MockImageStore
}

// helper: создаёт Handler с сервисами поверх моков
func newTestHandler(t *testing.T) (*api.Handler, *repos) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &repos{
		health:      repoMocks.NewMockHealthRepo(ctrl),
		users:       repoMocks.NewMockUsersRepo(ctrl),
		tokens:      repoMocks.NewMockTokensRepo(ctrl),
		tags:        repoMocks.NewMockTagsRepo(ctrl),
		ingredients: repoMocks.NewMockIngredientsRepo(ctrl),
		recipes:     repoMocks.NewMockRecipesRepo(ctrl),
		images:      repoMocks.NewMockImageStore(ctrl),
	}

	cfg := testConfig()
	svc := service.NewServices(service.Repositories{
		Health:      m.health,
		Users:       m.users,
		Tokens:      m.tokens,
		Tags:        m.tags,
		Ingredients: m.ingredients,
		Recipes:     m.recipes,
	}, m.images, cfg, nil)

	verifier := middleware.NewJWTVerifier(signingKey, cfg.Auth.Admin.Issuer, cfg.Auth.Admin.Audience)
	return api.NewHandler(svc, nil, verifier), m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password, service.PasswordParamsFromConfig(testConfig().Password))
	require.NoError(t, err)
	return hash
}

// serve регистрирует один хендлер на pattern и выполняет запрос.
// user != nil: запрос от аутентифицированного пользователя.
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target string, body any, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, rd)
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), *user))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeBody разбирает JSON-ответ в map для проверки набора полей.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
