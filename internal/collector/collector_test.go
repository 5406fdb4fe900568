package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyst/internal/model"
)

func TestSyntheticFetcher_FixedSeries(t *testing.T) {
	f := NewSyntheticFetcher(zerolog.Nop())
	points, err := f.FetchPrices(context.Background(), "AAPL", "", "")
	require.NoError(t, err)
	require.Len(t, points, 30)

	for i, p := range points {
		day := i + 1
		assert.Equal(t, fmt.Sprintf("2020-01-%02d", day), p.Date)
		assert.Equal(t, float64(100+day), p.Price)
	}
	assert.Equal(t, "2020-01-01", points[0].Date)
	assert.Equal(t, "2020-01-30", points[29].Date)
	assert.Equal(t, 130.0, points[29].Price)
}

func TestSyntheticFetcher_IgnoresRangeAndSymbol(t *testing.T) {
	f := NewSyntheticFetcher(zerolog.Nop())
	ctx := context.Background()

	a, err := f.FetchPrices(ctx, "AAPL", "2020-01-01", "2025-01-01")
	require.NoError(t, err)
	b, err := f.FetchPrices(ctx, "MSFT", "2023-06-01", "2023-06-30")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSyntheticFetcher_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	f := NewSyntheticFetcher(zerolog.New(&buf))
	_, err := f.FetchPrices(context.Background(), "AAPL", "", "2021-01-01")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"symbol":"AAPL"`)
	assert.Contains(t, out, `"start":"2020-01-01"`)
	assert.Contains(t, out, `"end":"2021-01-01"`)
	assert.Contains(t, out, "Fetching market data")
}

// countingFetcher records calls and optionally fails.
type countingFetcher struct {
	calls  int
	err    error
	points []model.PricePoint
}

func (c *countingFetcher) Name() string { return "counting" }

func (c *countingFetcher) FetchPrices(_ context.Context, _, _, _ string) ([]model.PricePoint, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.points, nil
}

func TestCachedFetcher_HitsCache(t *testing.T) {
	inner := &countingFetcher{points: []model.PricePoint{{Date: "2020-01-01", Price: 101}}}
	c := NewCachedFetcher(inner, time.Minute, zerolog.Nop())
	ctx := context.Background()

	first, err := c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	second, err := c.FetchPrices(ctx, "AAPL", DefaultStart, DefaultEnd)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "cached(counting)", c.Name())

	_, err = c.FetchPrices(ctx, "MSFT", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFetcher_ReturnsCopies(t *testing.T) {
	inner := &countingFetcher{points: []model.PricePoint{{Date: "2020-01-01", Price: 101}}}
	c := NewCachedFetcher(inner, time.Minute, zerolog.Nop())
	ctx := context.Background()

	first, err := c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	first[0].Price = -1

	second, err := c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, 101.0, second[0].Price)
}

func TestCachedFetcher_DoesNotCacheErrors(t *testing.T) {
	inner := &countingFetcher{err: errors.New("provider down")}
	c := NewCachedFetcher(inner, time.Minute, zerolog.Nop())
	ctx := context.Background()

	_, err := c.FetchPrices(ctx, "AAPL", "", "")
	assert.ErrorIs(t, err, inner.err)
	_, err = c.FetchPrices(ctx, "AAPL", "", "")
	assert.ErrorIs(t, err, inner.err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedFetcher_RefetchesAfterExpiry(t *testing.T) {
	inner := &countingFetcher{points: []model.PricePoint{{Date: "2020-01-01", Price: 101}}}
	c := NewCachedFetcher(inner, 50*time.Millisecond, zerolog.Nop())
	ctx := context.Background()

	_, err := c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	_, err = c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	time.Sleep(120 * time.Millisecond)

	_, err = c.FetchPrices(ctx, "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
