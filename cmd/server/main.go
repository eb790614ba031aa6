// @title           Fleet Identity API
// @version         1.0
// @description     Identity backend for a vehicle fleet.
// @description     Users, roles, personal documents and identity claims; issues access tokens.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения.
//
// Жизненный цикл сервера (конфиг, БД, миграции, graceful shutdown) реализован
// в internal/server/cli; здесь только версия сборки и регистрация swagger-документации.
package main

import (
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/cli"

	_ "github.com/IvanChernomyrdin/go-fleet-identity/swagger/docs"
)

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
