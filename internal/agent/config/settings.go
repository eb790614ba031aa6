package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix — префикс переменных окружения (FLEETCTL_SERVER, FLEETCTL_INSECURE, ...).
const EnvPrefix = "FLEETCTL"

// DefaultServer — адрес сервера по умолчанию.
const DefaultServer = "http://127.0.0.1:8080"

// Settings — настройки подключения fleetctl.
type Settings struct {
	Server   string
	Insecure bool
	Timeout  time.Duration
}

// Ключи viper — совпадают с именами persistent-флагов root-команды.
const (
	keyServer   = "server"
	keyInsecure = "insecure"
	keyTimeout  = "timeout"
)

// BindFlags регистрирует persistent-флаги подключения на root-команде.
func BindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String(keyServer, DefaultServer, "server base URL")
	f.Bool(keyInsecure, false, "skip TLS certificate verification (dev only)")
	f.Duration(keyTimeout, 10*time.Second, "HTTP request timeout")
}

// LoadSettings собирает настройки. Приоритет: флаг > FLEETCTL_* > config.yaml в dir > дефолт.
// dir == "" — файл настроек не читается.
func LoadSettings(cmd *cobra.Command, dir string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyServer, DefaultServer)
	v.SetDefault(keyTimeout, 10*time.Second)

	for _, key := range []string{keyServer, keyInsecure, keyTimeout} {
		if fl := cmd.Flag(key); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return Settings{}, err
			}
		}
	}

	if dir != "" {
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return Settings{}, fmt.Errorf("read fleetctl config: %w", err)
		}
	}

	s := Settings{
		Server:   v.GetString(keyServer),
		Insecure: v.GetBool(keyInsecure),
		Timeout:  v.GetDuration(keyTimeout),
	}
	if s.Server == "" {
		return Settings{}, errors.New("server is empty")
	}
	return s, nil
}

// SetConfigFile с явным путём возвращает ошибку ОС, а не viper.ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
