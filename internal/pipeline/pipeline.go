package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"StockAnalyst/internal/calculator"
	"StockAnalyst/internal/collector"
	"StockAnalyst/internal/logger"
	"StockAnalyst/internal/notifier"
	"StockAnalyst/internal/strategy"
)

// Pipeline chains fetch, preprocess, predict and report for one symbol.
type Pipeline struct {
	Fetcher      collector.Fetcher
	Preprocessor *calculator.Preprocessor
	Predictor    strategy.Predictor
	Reporter     *notifier.ReportGenerator
	Start        string
	End          string
	Log          zerolog.Logger
}

// Option customizes a Pipeline built by New.
type Option func(*Pipeline)

// WithRange sets the date range requested from the fetcher.
func WithRange(start, end string) Option {
	return func(p *Pipeline) {
		p.Start = start
		p.End = end
	}
}

// WithPredictor replaces the default last-value predictor.
func WithPredictor(pred strategy.Predictor) Option {
	return func(p *Pipeline) {
		p.Predictor = pred
	}
}

// New wires the default steps around fetcher.
func New(fetcher collector.Fetcher, log zerolog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		Fetcher:      fetcher,
		Preprocessor: calculator.NewPreprocessor(logger.Component(log, "preprocessor")),
		Predictor:    strategy.NewLastValuePredictor(logger.Component(log, "predictor")),
		Reporter:     notifier.NewReportGenerator(logger.Component(log, "reporter")),
		Start:        collector.DefaultStart,
		End:          collector.DefaultEnd,
		Log:          logger.Component(log, "pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes every step in order and returns the report.
func (p *Pipeline) Run(ctx context.Context, symbol string) (string, error) {
	p.Log.Debug().Str("symbol", symbol).Str("fetcher", p.Fetcher.Name()).Msg("pipeline run")

	points, err := p.Fetcher.FetchPrices(ctx, symbol, p.Start, p.End)
	if err != nil {
		return "", fmt.Errorf("fetch market data: %w", err)
	}
	series := p.Preprocessor.Transform(points)
	prediction := p.Predictor.Predict(series)
	return p.Reporter.Generate(symbol, prediction), nil
}
