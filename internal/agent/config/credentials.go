// Package config содержит локальную конфигурацию fleetctl.
//
// Учётные данные (access token и сервер, на котором он получен) хранятся в
//
//	~/.fleetctl/credentials.json
//
// Настройки подключения (server, insecure, timeout) собираются viper из флагов,
// переменных окружения FLEETCTL_* и необязательного ~/.fleetctl/config.yaml.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Credentials — сохранённый после login токен.
type Credentials struct {
	Server      string    `json:"server"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired сообщает, что токена нет или срок его действия истёк.
func (c *Credentials) Expired(now time.Time) bool {
	return c.AccessToken == "" || (!c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt))
}

// Dir возвращает <home>/.fleetctl.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fleetctl"), nil
}

// DefaultPath возвращает <home>/.fleetctl/credentials.json.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// Load загружает учётные данные. Нет файла — пустые Credentials без ошибки.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет учётные данные: директория 0700, файл 0600.
func Save(path string, c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
