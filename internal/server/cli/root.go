// Package cli реализует командный интерфейс серверного приложения.
//
// Команды:
//   - serve — HTTP(S)-сервер с graceful shutdown;
//   - migrate up|down — схема БД;
//   - seed — данные для разработки;
//   - version — версия и дата сборки.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ConfigPath — путь к server.yaml.
	ConfigPath string
}

// NewRootCmd создаёт root-команду сервера и регистрирует подкоманды.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Fleet identity server: users, documents and identity claims",
		Long: `Fleet identity server.

Команды:
  serve         Запустить HTTP API
  migrate up    Применить миграции
  migrate down  Откатить миграции
  seed          Создать администратора и документы для разработки
  version       Версия и дата сборки

Пример:
  server serve --config ./configs/server.yaml
`,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "./configs/server.yaml", "path to server.yaml")

	cmd.AddCommand(NewServeCmd(app))
	cmd.AddCommand(NewMigrateCmd(app))
	cmd.AddCommand(NewSeedCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
