package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		body := string(data)
		assert.True(t, strings.HasPrefix(body, "-- +goose Up"), name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestTasksTableHasVersion(t *testing.T) {
	data, err := fs.ReadFile(FS, "00002_tasks.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "version    BIGINT      NOT NULL DEFAULT 1")
	assert.Contains(t, string(data), "work_date")
}
