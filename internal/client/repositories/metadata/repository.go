// Package metadata persists small session facts (the access token, the last
// username) in the local store, the console's stand-in for browser durable
// storage.
package metadata

import "context"

type Repository interface {
	// Get returns the value under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
