// Package migrations carries the embedded goose schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
