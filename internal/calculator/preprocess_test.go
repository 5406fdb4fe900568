package calculator

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"StockAnalyst/internal/model"
)

func TestTransform_ExtractsPricesInOrder(t *testing.T) {
	p := NewPreprocessor(zerolog.Nop())
	got := p.Transform([]model.PricePoint{
		{Date: "d1", Price: 100.0},
		{Date: "d2", Price: 101.0},
	})
	assert.Equal(t, model.PriceSeries{100.0, 101.0}, got)
}

func TestTransform_PreservesLengthAndOrder(t *testing.T) {
	points := []model.PricePoint{
		{Date: "2020-01-03", Price: 7},
		{Date: "2020-01-01", Price: 3},
		{Date: "2020-01-02", Price: 5},
		{Date: "2020-01-02", Price: 5},
	}
	got := NewPreprocessor(zerolog.Nop()).Transform(points)
	assert.Len(t, got, len(points))
	assert.Equal(t, model.PriceSeries{7, 3, 5, 5}, got)
}

func TestTransform_Empty(t *testing.T) {
	var buf bytes.Buffer
	got := NewPreprocessor(zerolog.New(&buf)).Transform(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), `"count":0`)
}
