package cli

import (
	"context"
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/repository"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

// Users: операции с учётными записями, нужные командам createuser и createsuperuser.
type Users interface {
	CreateUser(ctx context.Context, nu service.NewUser) (models.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (models.User, error)
}

// для тестов
var (
	LoadConfig = config.Load
	OpenDB     = config.OpenDB
	Migrate    = config.Migrate
	NewUsers   = func(db *sql.DB, cfg *config.Config) Users {
		return service.NewUsersService(
			repository.NewUsersRepository(db),
			service.PasswordParamsFromConfig(cfg.Password),
			cfg.Password.MinLength,
		)
	}
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
