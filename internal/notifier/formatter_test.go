package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport_Template(t *testing.T) {
	report := FormatReport("AAPL", 129.0)

	lines := strings.Split(report, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Analysis for AAPL:", lines[0])
	assert.Equal(t, "The forecasted next closing price is approximately $129.00.", lines[1])
	assert.Equal(t, disclaimer, lines[2])
	assert.Contains(t, report, "AAPL")
	assert.Contains(t, report, "129.00")
}

func TestFormatReport_Rounding(t *testing.T) {
	tests := []struct {
		prediction float64
		want       string
	}{
		{0, "$0.00."},
		{101.456, "$101.46."},
		{99.994, "$99.99."},
		{-1.5, "$-1.50."},
	}
	for _, tt := range tests {
		assert.Contains(t, FormatReport("X", tt.prediction), tt.want)
	}
}

func TestGenerate_LogsAtDebugOnly(t *testing.T) {
	var buf bytes.Buffer
	g := NewReportGenerator(zerolog.New(&buf).Level(zerolog.InfoLevel))
	report := g.Generate("MSFT", 10)
	assert.Equal(t, FormatReport("MSFT", 10), report)
	assert.Empty(t, buf.String())

	buf.Reset()
	g = NewReportGenerator(zerolog.New(&buf).Level(zerolog.DebugLevel))
	g.Generate("MSFT", 10)
	assert.Contains(t, buf.String(), "Generated report")
}
