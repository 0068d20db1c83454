package flight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"airbook/pkg/cache"
	"airbook/pkg/logger"
)

const iataKeyPrefix = "iata:"

// Resolver maps free-text city names to IATA airport codes. Successful
// resolutions are cached without expiry; failures are never cached, so the
// next call retries the provider.
type Resolver struct {
	provider ProviderClient
	cache    cache.Cache
	logger   logger.Client
}

func NewResolver(provider ProviderClient, c cache.Cache, log logger.Client) *Resolver {
	return &Resolver{provider: provider, cache: c, logger: log}
}

// Resolve returns the airport code for a city name. The lookup is
// case-insensitive; a cache hit needs no token and no network call.
func (r *Resolver) Resolve(ctx context.Context, city string) (string, error) {
	key := iataKeyPrefix + strings.ToLower(strings.TrimSpace(city))

	code, err := r.cache.Get(ctx, key)
	if err == nil && code != "" {
		return code, nil
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("iata cache lookup failed",
			logger.Field{Key: "city", Value: city},
			logger.Field{Key: "err", Value: err})
	}

	locations, err := r.provider.SearchLocations(ctx, city)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", city, err)
	}
	if len(locations) == 0 || locations[0].IataCode == "" {
		return "", fmt.Errorf("resolve %q: no airport match", city)
	}

	code = locations[0].IataCode
	if err := r.cache.Set(ctx, key, code, 0); err != nil {
		r.logger.Warn("iata cache store failed",
			logger.Field{Key: "city", Value: city},
			logger.Field{Key: "err", Value: err})
	}
	return code, nil
}
