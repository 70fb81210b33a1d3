package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			fsys, err := FS(driver)
			require.NoError(t, err)

			matches, err := fs.Glob(fsys, "*.sql")
			require.NoError(t, err)
			assert.Contains(t, matches, "00001_create_tasks.sql")

			content, err := fs.ReadFile(fsys, "00001_create_tasks.sql")
			require.NoError(t, err)
			assert.Contains(t, string(content), "-- +goose Up")
			assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS tasks")
		})
	}
}

func TestFSUnknownDriver(t *testing.T) {
	fsys, err := FS("mysql")
	assert.Error(t, err)
	assert.Nil(t, fsys)
}
