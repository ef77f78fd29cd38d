// Package migrations embeds the SQL schema files so binaries can migrate
// without a checkout next to them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
