package collector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"StockAnalyst/internal/model"
)

const syntheticDays = 30

// SyntheticFetcher returns a fixed upward trend for development and testing.
// It performs no I/O and ignores the requested range.
type SyntheticFetcher struct {
	Log zerolog.Logger
}

// NewSyntheticFetcher creates a new SyntheticFetcher.
func NewSyntheticFetcher(log zerolog.Logger) *SyntheticFetcher {
	return &SyntheticFetcher{Log: log}
}

func (f *SyntheticFetcher) Name() string { return "synthetic" }

// FetchPrices always yields 2020-01-01..2020-01-30 priced at 100 + day.
func (f *SyntheticFetcher) FetchPrices(_ context.Context, symbol, start, end string) ([]model.PricePoint, error) {
	start, end = withDefaults(start, end)
	f.Log.Info().
		Str("symbol", symbol).
		Str("start", start).
		Str("end", end).
		Msg("Fetching market data")
	return generateSyntheticPoints(syntheticDays), nil
}

func generateSyntheticPoints(count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		day := i + 1
		points[i] = model.PricePoint{
			Date:  fmt.Sprintf("2020-01-%02d", day),
			Price: float64(100 + day),
		}
	}
	return points
}
