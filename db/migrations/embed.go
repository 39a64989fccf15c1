// Package migrations embeds the SQL migrations for the card catalog cache.
package migrations

import "embed"

// Files exposes the compiled-in migration SQL files.
//
//go:embed *.sql
var Files embed.FS
