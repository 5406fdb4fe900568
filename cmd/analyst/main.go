// Command analyst runs the stock analysis pipeline for one ticker symbol.
//
// Usage:
//
//	analyst --symbol AAPL
//	analyst watch --symbol AAPL --cron "0 0 22 * * 1-5"
package main

import (
	"os"

	"StockAnalyst/cmd/analyst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
