// @title           Recipe API
// @version         1.0
// @description     Recipe management backend.
// @description     User accounts with token authentication, per-user tags, ingredients and recipes.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description "Token <key>" from POST /user/token

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <jwt>" from POST /admin/login
//
// Package main содержит точку входа сервера recipe API.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера (./configs/server.yaml или SERVER_CONFIG);
//   - подключение к базе данных и применение миграций;
//   - создание хранилища изображений (локальный диск или S3);
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск сервера (HTTPS при tls.enabled) с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-recipe-api/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/storage"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-recipe-api/swagger/docs"
)

const defaultConfigPath = "./configs/server.yaml"

func main() {
	sugar := logger.NewHTTPLogger().Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	path := os.Getenv("SERVER_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		sugar.Fatal(err)
	}

	httpLogger := logger.New(logger.Options{
		Dir:    cfg.Log.Dir,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	defer httpLogger.Sync()
	sugar = httpLogger.Logger.Sugar()

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных
	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	// делаем отложенное закрытие бд
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := config.Migrate(db, cfg.Migrations.Path, httpLogger.Logger); err != nil {
			sugar.Fatal(err)
		}
	}

	images, mediaRoot, err := openImageStore(ctx, cfg.Media)
	if err != nil {
		sugar.Fatal(err)
	}

	// складываем в репозиторий
	repos := service.Repositories{
		Health:      repository.NewHealthRepository(db),
		Users:       repository.NewUsersRepository(db),
		Tokens:      repository.NewTokensRepository(db),
		Tags:        repository.NewTagsRepository(db),
		Ingredients: repository.NewIngredientsRepository(db),
		Recipes:     repository.NewRecipesRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, images, cfg, httpLogger.Logger)
	// jwt консоли администратора
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.Admin.JWT.SigningKey,
		cfg.Auth.Admin.Issuer,
		cfg.Auth.Admin.Audience,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)

	opts := h.Options{
		Logger:         httpLogger,
		CORS:           cfg.Security.CORS,
		MediaRoot:      mediaRoot,
		MediaPrefix:    cfg.Media.URLPrefix,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	}
	if cfg.Observability.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewDBStatsCollector(db, "recipe"),
		)
		opts.Metrics = middleware.NewMetrics(reg)
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		opts.MetricsPath = cfg.Observability.Metrics.Path
	}
	if rl := cfg.Security.RateLimit; rl.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(rl.RPS, rl.Burst, rl.Key)
	}

	// создаём роутер
	router := h.NewRouter(handler, opts)
	//создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
		ErrorLog:          zap.NewStdLog(httpLogger.Logger),
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s", addr)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s", addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

// openImageStore создаёт хранилище изображений по media.backend.
// Для local дополнительно возвращается каталог, который раздаёт роутер.
func openImageStore(ctx context.Context, cfg config.MediaConfig) (storage.ImageStore, string, error) {
	switch cfg.Backend {
	case "s3":
		client, err := storage.NewS3Client(ctx, storage.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		return storage.NewS3Store(client, cfg.S3.Bucket, cfg.S3.PublicURL), "", nil
	default:
		store, err := storage.NewLocalStore(cfg.Root, cfg.URLPrefix)
		if err != nil {
			return nil, "", err
		}
		return store, store.Root(), nil
	}
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
