// Package http реализует маршрутизацию HTTP-слоя сервера recipe API.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - подключение middleware: логирование, метрики, CORS, rate limit;
//   - проверку токенов API и JWT консоли администратора;
//   - раздачу swagger, /metrics и локальных изображений.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/logger"
)

// multipartOverhead: запас на заголовки multipart сверх размера файла.
const multipartOverhead = 1 << 20

// Options: необязательные части роутера. Нулевое значение даёт только API.
type Options struct {
	Logger *logger.HTTPLogger

	// Metrics и MetricsHandler подключаются вместе; MetricsPath по умолчанию /metrics.
	Metrics        *middleware.Metrics
	MetricsHandler http.Handler
	MetricsPath    string

	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter

	// MediaRoot: каталог локального хранилища изображений, раздаётся под MediaPrefix.
	MediaRoot   string
	MediaPrefix string

	MaxBodyBytes   int64
	MaxUploadBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты /user/create, /user/token, /admin/login, /health;
//   - эндпоинты под токеном API: /user/me, /user/token (DELETE), /recipe/*;
//   - консоль администратора /admin/users (JWT, только staff);
//   - swagger, метрики и локальные изображения.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		api.WriteError(w, http.StatusNotFound, serr.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		api.WriteError(w, http.StatusMethodNotAllowed, serr.ErrMethodNotAllowed)
	})

	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	if opts.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Retry-After"},
			AllowCredentials: false,
			MaxAge:           opts.CORS.MaxAge,
		}))
	}

	rl := opts.RateLimiter
	// лимит по ip ставится до аутентификации, по пользователю внутри групп
	if rl != nil && !rl.ByUser() {
		r.Use(rl.Middleware)
	}
	userLimit := func(r chi.Router) {
		if rl != nil && rl.ByUser() {
			r.Use(rl.Middleware)
		}
	}
	jsonLimit := middleware.BodyLimit(opts.MaxBodyBytes)

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", h.Health)

	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.MetricsHandler)
	}
	if opts.MediaRoot != "" {
		mountMedia(r, opts.MediaPrefix, opts.MediaRoot)
	}

	// Публичные пути
	r.Group(func(r chi.Router) {
		userLimit(r)
		r.Use(jsonLimit)
		r.Post("/user/create", h.CreateUser)
		r.Post("/user/token", h.CreateToken)
		r.Post("/admin/login", h.AdminLogin)
	})

	// защищены пути: токен API
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(h.Svc.Auth))
		userLimit(r)

		r.Group(func(r chi.Router) {
			r.Use(jsonLimit)

			r.Delete("/user/token", h.RevokeToken)
			r.Get("/user/me", h.Me)
			r.Put("/user/me", h.UpdateMe)
			r.Patch("/user/me", h.PatchMe)

			r.Get("/recipe/tags", h.ListTags)
			r.Post("/recipe/tags", h.CreateTag)
			r.Get("/recipe/tags/{id}", h.GetTag)
			r.Put("/recipe/tags/{id}", h.UpdateTag)
			r.Patch("/recipe/tags/{id}", h.PatchTag)
			r.Delete("/recipe/tags/{id}", h.DeleteTag)

			r.Get("/recipe/ingredients", h.ListIngredients)
			r.Post("/recipe/ingredients", h.CreateIngredient)
			r.Get("/recipe/ingredients/{id}", h.GetIngredient)
			r.Put("/recipe/ingredients/{id}", h.UpdateIngredient)
			r.Patch("/recipe/ingredients/{id}", h.PatchIngredient)
			r.Delete("/recipe/ingredients/{id}", h.DeleteIngredient)

			r.Get("/recipe/recipes", h.ListRecipes)
			r.Post("/recipe/recipes", h.CreateRecipe)
			r.Get("/recipe/recipes/{id}", h.GetRecipe)
			r.Put("/recipe/recipes/{id}", h.UpdateRecipe)
			r.Patch("/recipe/recipes/{id}", h.PatchRecipe)
			r.Delete("/recipe/recipes/{id}", h.DeleteRecipe)
		})

		// загрузка изображения: свой лимит тела
		r.With(middleware.BodyLimit(uploadLimit(opts.MaxUploadBytes))).
			Post("/recipe/recipes/{id}/upload-image", h.UploadRecipeImage)
	})

	// консоль администратора: JWT + staff
	if h.Verifier != nil {
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AdminOnly(h.Svc.Users))
			userLimit(r)
			r.Use(jsonLimit)

			r.Get("/admin/users", h.AdminListUsers)
			r.Post("/admin/users", h.AdminCreateUser)
			r.Get("/admin/users/{id}", h.AdminGetUser)
			r.Patch("/admin/users/{id}", h.AdminUpdateUser)
		})
	}

	return r
}

func uploadLimit(maxUpload int64) int64 {
	if maxUpload <= 0 {
		return 0
	}
	return maxUpload + multipartOverhead
}

// mountMedia раздаёт файлы локального хранилища без листинга каталогов.
// Браузеру запрещено угадывать тип содержимого и исполнять скрипты из файлов.
func mountMedia(r chi.Router, prefix, root string) {
	if prefix == "" {
		prefix = "/media/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(root)))
	r.Get(prefix+"*", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		if strings.HasSuffix(req.URL.Path, "/") {
			api.WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		fs.ServeHTTP(w, req)
	})
}
