package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"airbook/pkg/cache"
	"airbook/pkg/logger"
)

// MaxResults is the provider page size; every search is capped to it.
const MaxResults = 10

// Service orchestrates city resolution, token acquisition, the provider
// offer search and per-offer formatting.
type Service struct {
	provider ProviderClient
	resolver *Resolver
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Client
}

func NewService(provider ProviderClient, resolver *Resolver, c cache.Cache, ttlMinutes int, log logger.Client) *Service {
	return &Service{
		provider: provider,
		resolver: resolver,
		cache:    c,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		logger:   log,
	}
}

// Search returns formatted offers for a one-way route on a given date.
// The three failure classes stay distinguishable for the caller:
// ErrCityNotFound, ErrAuthFailed and ErrNoFlights.
func (s *Service) Search(ctx context.Context, originCity, destCity, date string) ([]Offer, error) {
	origin, err := s.resolver.Resolve(ctx, originCity)
	if err != nil {
		s.logger.Info("origin city did not resolve",
			logger.Field{Key: "city", Value: originCity},
			logger.Field{Key: "err", Value: err})
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, originCity)
	}

	destination, err := s.resolver.Resolve(ctx, destCity)
	if err != nil {
		s.logger.Info("destination city did not resolve",
			logger.Field{Key: "city", Value: destCity},
			logger.Field{Key: "err", Value: err})
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, destCity)
	}

	return s.SearchRoute(ctx, origin, destination, date)
}

// SearchRoute searches a route already resolved to airport codes. The
// return leg uses it with the codes the departure search stored, so no
// second resolution round trip happens.
func (s *Service) SearchRoute(ctx context.Context, origin, destination, date string) ([]Offer, error) {
	if _, err := s.provider.Token(ctx); err != nil {
		s.logger.Error("token acquisition failed", logger.Field{Key: "err", Value: err})
		return nil, ErrAuthFailed
	}

	// A blank date would only produce a malformed provider query.
	if strings.TrimSpace(date) == "" {
		return nil, ErrNoFlights
	}

	cacheKey := fmt.Sprintf("flights:%s:%s:%s", origin, destination, date)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var offers []Offer
		if err := json.Unmarshal([]byte(cached), &offers); err == nil {
			s.logger.Debug("offer cache hit", logger.Field{Key: "cache_key", Value: cacheKey})
			return offers, nil
		}
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("offer cache lookup failed", logger.Field{Key: "err", Value: err})
	}

	raw, err := s.provider.SearchFlightOffers(ctx, origin, destination, date, MaxResults)
	if err != nil {
		// Fetch failures degrade to an empty result set, never a 500.
		s.logger.Error("offer search failed",
			logger.Field{Key: "origin", Value: origin},
			logger.Field{Key: "destination", Value: destination},
			logger.Field{Key: "err", Value: err})
		raw = nil
	}

	offers := make([]Offer, 0, len(raw))
	for _, r := range raw {
		offer, ok := formatOffer(r)
		if !ok {
			s.logger.Debug("skipping malformed offer", logger.Field{Key: "id", Value: r.ID})
			continue
		}
		offers = append(offers, offer)
	}

	if len(offers) == 0 {
		return nil, ErrNoFlights
	}

	if encoded, err := json.Marshal(offers); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(encoded), s.ttl); err != nil {
			s.logger.Warn("offer cache store failed", logger.Field{Key: "err", Value: err})
		}
	}

	return offers, nil
}
