// Package migrations embeds the SQL schema in golang-migrate's file layout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
