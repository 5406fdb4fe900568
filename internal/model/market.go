package model

// PricePoint is a single dated closing price. Date is an ISO 8601 calendar date.
type PricePoint struct {
	Date  string
	Price float64
}

// PriceSeries holds prices in chronological order.
type PriceSeries []float64

// Last returns the most recent price and false when the series is empty.
func (s PriceSeries) Last() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}
