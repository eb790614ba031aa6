// Package main содержит точку входа fleetctl — администраторского CLI.
//
// Версия и дата сборки передаются через -ldflags:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildDate=$(date +%F)" ./cmd/fleetctl
package main

import "github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
