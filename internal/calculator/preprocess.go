package calculator

import (
	"github.com/rs/zerolog"

	"StockAnalyst/internal/model"
)

// Preprocessor turns raw price points into a series suitable for prediction.
type Preprocessor struct {
	Log zerolog.Logger
}

// NewPreprocessor creates a new Preprocessor.
func NewPreprocessor(log zerolog.Logger) *Preprocessor {
	return &Preprocessor{Log: log}
}

// Transform extracts the price of each point, keeping order and count.
func (p *Preprocessor) Transform(points []model.PricePoint) model.PriceSeries {
	p.Log.Info().Int("count", len(points)).Msg("Preprocessing data points")
	return extractPrices(points)
}

func extractPrices(points []model.PricePoint) model.PriceSeries {
	prices := make(model.PriceSeries, len(points))
	for i, pt := range points {
		prices[i] = pt.Price
	}
	return prices
}
