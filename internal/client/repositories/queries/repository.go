// Package queries is the client-side query cache: JSON payloads of past
// fetches keyed by a stable identifier, invalidated when a mutation makes
// them stale. Concurrent refreshes of the same key resolve last-write-wins.
package queries

import (
	"context"
	"time"
)

type Repository interface {
	// Get returns the cached payload and its fetch time, or
	// common.ErrNotFound when the key is absent (never cached or
	// invalidated).
	Get(ctx context.Context, key string) ([]byte, time.Time, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context, key string) error
	// InvalidatePrefix drops every key beginning with prefix, e.g. all
	// queries scoped to one model.
	InvalidatePrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
}
