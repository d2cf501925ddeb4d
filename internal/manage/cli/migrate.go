package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewMigrateCmd создаёт команду применения миграций.
//
// По умолчанию источник берётся из migrations.path конфигурации,
// флаг --source его переопределяет.
//
//	recipectl migrate --source file://migrations/postgres
func NewMigrateCmd(app *App) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции базы данных",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = app.Cfg.Migrations.Path
			}
			if source == "" {
				return errors.New("migrations source is empty; set migrations.path or --source")
			}

			db, err := OpenDB(cmd.Context(), app.Cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := Migrate(db, source, zap.NewNop()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "migrations source URL")

	return cmd
}
