package strategy

import (
	"github.com/rs/zerolog"

	"StockAnalyst/internal/model"
)

// Predictor forecasts the next value of a price series.
type Predictor interface {
	Predict(series model.PriceSeries) float64
}

// LastValuePredictor forecasts the next price as the last observed one.
// An empty series yields 0.
type LastValuePredictor struct {
	Log zerolog.Logger
}

// NewLastValuePredictor creates a new LastValuePredictor.
func NewLastValuePredictor(log zerolog.Logger) *LastValuePredictor {
	return &LastValuePredictor{Log: log}
}

func (p *LastValuePredictor) Predict(series model.PriceSeries) float64 {
	p.Log.Info().Int("length", len(series)).Msg("Predicting next price")
	last, ok := series.Last()
	if !ok {
		return 0.0
	}
	return last
}
