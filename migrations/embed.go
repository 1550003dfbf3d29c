// Package migrations embeds the SQL schema migrations for the exchange log.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
