package fairbuddy

import "embed"

//go:embed data/sql/migrations/*.sql data/sql/migrations/sqlite/*.sql
var coreMigrationsFS embed.FS

// GetCoreMigrationsFS exposes the SQL migration files so host applications
// can register them with go-persistence-bun (or another migration runner).
func GetCoreMigrationsFS() embed.FS {
	return coreMigrationsFS
}
