package sonoplan

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command and storage tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
