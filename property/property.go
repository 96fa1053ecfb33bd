package property

import "math"

// Record is one normalized listing row. It is produced by the listings
// collaborator and consumed read-only by the analysis and projection packages.
type Record struct {
	ID       string
	Address  string
	Zipcode  string
	HomeType string
	Beds     string
	Baths    string
	LotSize  string

	Sqft          float64
	Price         float64
	PriceEstimate float64
	RentEstimate  float64
}

// FillRentEstimates replaces missing rent estimates (zero or NaN) with
// defaultRent. Upstream sources frequently omit the rent figure, and the
// calculators need some number to work with.
func FillRentEstimates(records []Record, defaultRent float64) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].RentEstimate == 0 || math.IsNaN(out[i].RentEstimate) {
			out[i].RentEstimate = defaultRent
		}
	}
	return out
}

// Stats summarizes a set of listings.
type Stats struct {
	Count    int
	AvgPrice float64
	AvgSqft  float64
	AvgRent  float64
}

// Summarize computes listing-level statistics. Sqft averages skip rows
// where the source did not report a square footage.
func Summarize(records []Record) Stats {
	s := Stats{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	var priceSum, rentSum, sqftSum float64
	sqftN := 0
	for _, r := range records {
		priceSum += r.Price
		rentSum += r.RentEstimate
		if r.Sqft > 0 {
			sqftSum += r.Sqft
			sqftN++
		}
	}

	s.AvgPrice = priceSum / float64(len(records))
	s.AvgRent = rentSum / float64(len(records))
	if sqftN > 0 {
		s.AvgSqft = sqftSum / float64(sqftN)
	}
	return s
}
