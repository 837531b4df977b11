// Package migrations contains embedded SQL migrations for the hexagram store.
package migrations

import "embed"

// Root is the directory inside FS holding the migration files.
const Root = "content"

//go:embed content/*.sql
var FS embed.FS
