package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/manage/cli"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

type fakeUsers struct {
	created   []service.NewUser
	superuser []string
	err       error
}

func (f *fakeUsers) CreateUser(_ context.Context, nu service.NewUser) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	f.created = append(f.created, nu)
	return models.User{ID: uuid.New(), Email: nu.Email, Name: nu.Name, IsStaff: nu.IsStaff}, nil
}

func (f *fakeUsers) CreateSuperuser(_ context.Context, email, password string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	f.superuser = append(f.superuser, email+":"+password)
	return models.User{ID: uuid.New(), Email: email, IsStaff: true, IsSuperuser: true}, nil
}

// stubDeps подменяет зависимости команд и возвращает их обратно после теста.
func stubDeps(t *testing.T, users *fakeUsers) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	origOpen, origMigrate, origUsers, origRead := cli.OpenDB, cli.Migrate, cli.NewUsers, cli.ReadPassword
	t.Cleanup(func() {
		cli.OpenDB, cli.Migrate, cli.NewUsers, cli.ReadPassword = origOpen, origMigrate, origUsers, origRead
	})

	cli.OpenDB = func(context.Context, config.DBConfig) (*sql.DB, error) { return db, nil }
	cli.Migrate = func(*sql.DB, string, *zap.Logger) error { return nil }
	cli.NewUsers = func(*sql.DB, *config.Config) cli.Users { return users }
	cli.ReadPassword = func(*cobra.Command, bool) (string, error) { return "StrongPass123", nil }

	return mock
}

func testApp() *cli.App {
	cfg := &config.Config{}
	cfg.DB.DSN = "postgres://test"
	cfg.Migrations.Path = "file://migrations/postgres"
	return &cli.App{Cfg: cfg}
}

// настоящая реализация, сохранённая до подмен в тестах
var origReadPassword = cli.ReadPassword
