// Package migrations содержит SQL-миграции (по каталогу на диалект), встроенные в бинарь.
// Так migrate работает независимо от текущей рабочей директории.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
