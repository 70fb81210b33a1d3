// Package migrations embeds the versioned goose SQL files that own the tasks
// schema. There is one directory per supported database driver. The server
// never applies them; operators run the goose CLI against these directories
// and the test helpers in internal/testdb apply them to throwaway databases.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration files for the given driver ("postgres" or "sqlite")
// rooted at that driver's directory.
func FS(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "sqlite":
		return fs.Sub(files, driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
