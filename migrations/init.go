package migrations

import (
	"io/fs"

	fairbuddy "github.com/fairbuddy/go-fairbuddy"
)

func init() {
	coreFS, err := fs.Sub(fairbuddy.GetCoreMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return
	}
	Register(coreFS)
}
