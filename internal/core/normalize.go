package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts accepted by the normalizer. ISO comes first because the
// date-rewrite migration leaves the store in that shape; the MM-DD-YY
// layout covers rows the migration has not touched.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01-02-06",
}

// Normalize converts raw store documents into uniform order rows. It never
// fails: malformed values degrade to their documented defaults (zero
// amount/quantity, absent date, Individual segment) instead of aborting
// the load.
func Normalize(raw []RawOrder) []Order {
	orders := make([]Order, len(raw))
	for i, r := range raw {
		o := Order{
			OrderID:   strings.TrimSpace(r.OrderID),
			Amount:    parseAmount(r.Amount),
			Qty:       parseQty(r.Qty),
			IsB2B:     parseB2B(r.B2B),
			Category:  strings.TrimSpace(r.Category),
			ShipState: strings.TrimSpace(r.ShipState),
			ShipCity:  strings.TrimSpace(r.ShipCity),
		}
		o.Date, o.HasDate = parseDate(r.Date)
		orders[i] = o
	}
	return orders
}

// parseDate tries the known layouts in order. Rows whose date cannot be
// parsed keep HasDate=false and stay out of date-bucketed aggregates while
// still contributing to every other table.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parseQty(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Stores sometimes hold quantities as "2.0"; take the whole part.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		n = int64(f)
	}
	if n < 0 {
		return 0
	}
	return n
}

func parseB2B(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0
	}
	return false
}
