// Package linkgap exposes repository-level embedded assets.
package linkgap

import "embed"

// Migrations contains the embedded goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
