package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "console.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"metadata", "query_cache"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist after migration", table)
	}

	// Reopening an already-migrated database is a no-op.
	db2, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}
