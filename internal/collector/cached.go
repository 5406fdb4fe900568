package collector

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"StockAnalyst/internal/model"
)

// CachedFetcher memoizes another Fetcher's results for a fixed TTL.
// Errors are never cached.
type CachedFetcher struct {
	Fetcher Fetcher
	Log     zerolog.Logger
	cache   *cache.Cache
}

// NewCachedFetcher wraps fetcher with an in-memory cache of the given TTL.
func NewCachedFetcher(fetcher Fetcher, ttl time.Duration, log zerolog.Logger) *CachedFetcher {
	return &CachedFetcher{
		Fetcher: fetcher,
		Log:     log,
		cache:   cache.New(ttl, 2*ttl),
	}
}

func (c *CachedFetcher) Name() string { return "cached(" + c.Fetcher.Name() + ")" }

func (c *CachedFetcher) FetchPrices(ctx context.Context, symbol, start, end string) ([]model.PricePoint, error) {
	start, end = withDefaults(start, end)
	key := symbol + "|" + start + "|" + end

	if v, ok := c.cache.Get(key); ok {
		c.Log.Debug().Str("key", key).Msg("price cache hit")
		return clonePoints(v.([]model.PricePoint)), nil
	}

	points, err := c.Fetcher.FetchPrices(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, clonePoints(points))
	return points, nil
}

func clonePoints(points []model.PricePoint) []model.PricePoint {
	out := make([]model.PricePoint, len(points))
	copy(out, points)
	return out
}
