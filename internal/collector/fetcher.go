package collector

import (
	"context"

	"StockAnalyst/internal/model"
)

// Default range requested when the caller leaves start or end empty.
const (
	DefaultStart = "2020-01-01"
	DefaultEnd   = "2025-01-01"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchPrices returns closing prices for symbol in chronological order.
	// start and end are YYYY-MM-DD dates.
	FetchPrices(ctx context.Context, symbol, start, end string) ([]model.PricePoint, error)
	Name() string
}

func withDefaults(start, end string) (string, string) {
	if start == "" {
		start = DefaultStart
	}
	if end == "" {
		end = DefaultEnd
	}
	return start, end
}
