// Package services contains the application services of the console client:
// project and model browsing, the analysis job lifecycle, design checks,
// material/section catalogs and BIM geometry. Services compose the API
// client with the local query cache and own cache invalidation.
package services

import (
	"context"
	"encoding/json"

	"github.com/strumind/console/internal/client/repositories/queries"
	"github.com/strumind/console/internal/logging"
)

// fetchCached returns the cached payload under key when present, otherwise
// calls fetch and stores its result. Cache failures degrade to a direct
// fetch; they never fail the read.
func fetchCached[T any](ctx context.Context, cache queries.Repository, key string, log logging.Logger, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if payload, _, err := cache.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(payload, &v); err == nil {
			return v, nil
		}
		// Corrupt entry: drop it and fall through to a fresh fetch.
		_ = cache.Invalidate(ctx, key)
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if payload, err := json.Marshal(v); err == nil {
		if err := cache.Set(ctx, key, payload); err != nil && log != nil {
			log.Warn(ctx, "caching query", "key", key, "error", err)
		}
	}
	return v, nil
}
