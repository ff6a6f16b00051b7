// Package labelchecker holds assets that are embedded into the service binary.
package labelchecker

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
