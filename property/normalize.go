package property

import (
	"fmt"
	"math"
	"strconv"
)

// Normalization maps the heterogeneous field names of each listings provider
// onto Record. Rows without a usable price are dropped; everything else
// passes through untouched.

// NormalizeZillow converts flattened Zillow search rows into Records.
// Keys follow Zillow's nested layout flattened with dots
// (e.g. "hdpData.homeInfo.price").
func NormalizeZillow(rows []map[string]any) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		price := getFloat(row, "hdpData.homeInfo.price")
		if price <= 0 || math.IsNaN(price) {
			continue
		}
		out = append(out, Record{
			ID:            getString(row, "zpid"),
			Address:       getString(row, "hdpData.homeInfo.streetAddress"),
			Zipcode:       getString(row, "hdpData.homeInfo.zipcode"),
			HomeType:      getString(row, "hdpData.homeInfo.homeType"),
			LotSize:       getString(row, "hdpData.homeInfo.lotAreaValue"),
			Sqft:          getFloat(row, "hdpData.homeInfo.livingArea"),
			Price:         price,
			PriceEstimate: getFloat(row, "hdpData.homeInfo.zestimate"),
			RentEstimate:  getFloat(row, "hdpData.homeInfo.rentZestimate"),
		})
	}
	return out
}

// NormalizeRedfin converts flattened Redfin search rows into Records.
// Redfin has no rent estimate; FillRentEstimates supplies one later.
func NormalizeRedfin(rows []map[string]any) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		price := getFloat(row, "price.value")
		if price <= 0 || math.IsNaN(price) {
			continue
		}
		out = append(out, Record{
			ID:      getString(row, "listingId"),
			Address: getString(row, "streetLine.value"),
			Zipcode: getString(row, "zip"),
			Beds:    getString(row, "beds"),
			Baths:   getString(row, "baths"),
			LotSize: getString(row, "lotSize.value"),
			Sqft:    getFloat(row, "sqFt.value"),
			Price:   price,
		})
	}
	return out
}

func getString(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; IDs and zip codes arrive this way.
		if s == math.Trunc(s) {
			return strconv.FormatFloat(s, 'f', 0, 64)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func getFloat(row map[string]any, key string) float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
