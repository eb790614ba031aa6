// Package cli реализует fleetctl — администраторский CLI сервера fleet identity.
//
// Пакет отвечает за:
//   - root-команду и подкоманды;
//   - сбор настроек подключения (флаги, FLEETCTL_*, ~/.fleetctl/config.yaml);
//   - загрузку сохранённого access token;
//   - вывод результата пользователю (таблица или JSON).
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/api"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	Settings config.Settings

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные; nil до PersistentPreRunE.
	Creds *config.Credentials

	// Output — формат вывода: table|json.
	Output string

	// Now и ReadPassword подменяются в тестах.
	Now          func() time.Time
	ReadPassword func(cmd *cobra.Command, prompt string, fromStdin bool) (string, error)
}

// Client создаёт API-клиент по текущим настройкам.
func (a *App) Client() *api.Client {
	return api.NewClient(a.Settings.Server, api.Options{
		Timeout:  a.Settings.Timeout,
		Insecure: a.Settings.Insecure,
	})
}

// NewRootCmd создаёт root-команду fleetctl и регистрирует подкоманды.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{Now: time.Now, ReadPassword: readPassword}

	cmd := &cobra.Command{
		Use:   "fleetctl",
		Short: "fleetctl — администрирование пользователей и документов fleet identity",
		Long: `fleetctl.

Команды:
  login       Получить access token и сохранить его локально
  users       Пользователи: list, get, create, delete
  passports   Паспорта: list, get
  contracts   Контракты: list
  roles       Список ролей
  version     Версия и дата сборки

Примеры:
  fleetctl login --email admin@example.com
  fleetctl users list --role Driver
  fleetctl contracts list --valid=true
  FLEETCTL_SERVER=https://fleet.local:8443 fleetctl roles
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	config.BindFlags(cmd)
	cmd.PersistentFlags().StringVarP(&app.Output, "output", "o", "table", "output format: table|json")

	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewPassportsCmd(app))
	cmd.AddCommand(NewContractsCmd(app))
	cmd.AddCommand(NewRolesCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// init определяет путь к credentials.json, читает настройки и токен.
// Уже заполненные поля (тесты) не перетираются.
func (a *App) init(cmd *cobra.Command) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	if a.CredsPath == "" {
		a.CredsPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	a.Settings, err = config.LoadSettings(cmd, dir)
	if err != nil {
		return err
	}

	if a.Creds == nil {
		a.Creds, err = config.Load(a.CredsPath)
		if err != nil {
			return err
		}
	}
	return nil
}

// token возвращает сохранённый токен или ошибку с подсказкой про login.
func (a *App) token() (string, error) {
	if a.Creds == nil || a.Creds.Expired(a.Now()) {
		return "", errNotLoggedIn
	}
	if a.Creds.Server != "" && a.Creds.Server != a.Settings.Server {
		return "", fmt.Errorf("token was issued by %s; run fleetctl login --server %s", a.Creds.Server, a.Settings.Server)
	}
	return a.Creds.AccessToken, nil
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
