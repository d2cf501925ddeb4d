// Package main содержит точку входа утилиты управления recipectl.
//
// Версия и дата сборки передаются через -ldflags.
package main

import "github.com/IvanChernomyrdin/go-recipe-api/internal/manage/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
