// Package migrations хранит SQL-миграции схемы, встроенные в бинарник.
package migrations

import "embed"

// FS — файлы миграций golang-migrate (NNNNNN_name.up.sql / .down.sql).
//
//go:embed *.sql
var FS embed.FS
