package notifier

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const disclaimer = "This is a placeholder report; integrate real models for actionable insights."

// FormatReport renders the three-line narrative for a symbol's forecast.
func FormatReport(symbol string, prediction float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Analysis for %s:\n", symbol))
	b.WriteString(fmt.Sprintf("The forecasted next closing price is approximately $%.2f.\n", prediction))
	b.WriteString(disclaimer)
	return b.String()
}

// ReportGenerator produces human-readable reports from predictions.
type ReportGenerator struct {
	Log zerolog.Logger
}

// NewReportGenerator creates a new ReportGenerator.
func NewReportGenerator(log zerolog.Logger) *ReportGenerator {
	return &ReportGenerator{Log: log}
}

func (g *ReportGenerator) Generate(symbol string, prediction float64) string {
	report := FormatReport(symbol, prediction)
	g.Log.Debug().Str("report", report).Msg("Generated report")
	return report
}
