package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/strumind/console/internal/common"
	"github.com/strumind/console/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, time.Time, error) {
	var payload []byte
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM query_cache WHERE key = ?`, key,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, common.ErrNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("get cached query[%s]: %w", key, err)
	}
	return payload, fetchedAt, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO query_cache (key, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, key, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cache query[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Invalidate(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM query_cache WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("invalidate query[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) InvalidatePrefix(ctx context.Context, prefix string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM query_cache WHERE key = ? OR key LIKE ? || '/%'`, prefix, prefix)
	if err != nil {
		return fmt.Errorf("invalidate queries[%s*]: %w", prefix, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM query_cache`)
	if err != nil {
		return fmt.Errorf("clear query cache: %w", err)
	}
	return nil
}
