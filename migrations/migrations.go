// Package migrations embeds the goose SQL migrations for each supported
// database driver. Files live under a directory named after the driver.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
