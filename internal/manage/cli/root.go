// Package cli реализует командный интерфейс (CLI) управления сервером recipe API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - загрузку конфигурации сервера (тот же server.yaml, что и у сервера);
//   - подключение к базе данных для служебных операций;
//   - вывод результата пользователю.
//
// Точка входа пакета: функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ConfigPath: путь к конфигурации сервера.
	ConfigPath string
	// Cfg: загруженная конфигурация. Заполняется в PersistentPreRunE.
	Cfg *config.Config
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// В PersistentPreRunE подгружается .env (если есть) и конфигурация сервера.
// Команда version конфигурацию не читает.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "recipectl",
		Short: "recipectl: управление сервером recipe API",
		Long: `recipectl.

Команды:
  migrate          Применить миграции базы данных
  createsuperuser  Создать администратора
  createuser       Создать пользователя
  version          Версия и дата сборки

Примеры:

Миграции:
  recipectl migrate --config ./configs/server.yaml

Администратор:
  recipectl createsuperuser --email admin@example.com
  (пароль запрашивается со скрытым вводом)

Пользователь из скрипта:
  echo "StrongPass123" | recipectl createuser --email cook@example.com --name Cook --password-stdin
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || app.Cfg != nil {
				return nil
			}
			_ = godotenv.Load()

			cfg, err := LoadConfig(app.ConfigPath)
			if err != nil {
				return err
			}
			app.Cfg = cfg
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "./configs/server.yaml", "server config path")

	cmd.AddCommand(NewMigrateCmd(app))
	cmd.AddCommand(NewCreateSuperuserCmd(app))
	cmd.AddCommand(NewCreateUserCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
