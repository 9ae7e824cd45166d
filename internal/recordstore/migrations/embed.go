// Package migrations embeds the additive-only schema history of the local
// record store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
