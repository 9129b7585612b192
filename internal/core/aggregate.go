package core

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Report holds every derived table computed from the normalized order set.
// It is built once at startup and read-only afterwards, so handlers can
// share it without locking.
type Report struct {
	Totals              Totals
	MonthlySeries       []MonthlyPoint
	CategoriesByQty     []CategoryQty
	CategoriesByRevenue []CategoryRevenue
	Segments            []Segment
	TopStates           []LocationRevenue
	TopCities           []LocationRevenue
	HighValueOrders     []HighValueOrder

	TopN               int
	HighValueThreshold decimal.Decimal
}

// ReportOptions tunes ranking sizes and the high-value cutoff. Zero values
// fall back to the defaults.
type ReportOptions struct {
	TopN               int
	HighValueThreshold decimal.Decimal
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.HighValueThreshold.IsZero() {
		o.HighValueThreshold = DefaultHighValueThreshold
	}
	return o
}

// BuildReport computes all derived tables from the normalized orders. The
// tables are independent, so they are built concurrently; each goroutine
// writes a distinct field of the result. The output is deterministic for a
// given input regardless of row order.
func BuildReport(ctx context.Context, orders []Order, opts ReportOptions) (*Report, error) {
	opts = opts.withDefaults()
	r := &Report{
		TopN:               opts.TopN,
		HighValueThreshold: opts.HighValueThreshold,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.Totals = ComputeTotals(orders)
		return nil
	})
	g.Go(func() error {
		r.MonthlySeries = MonthlyTrend(orders)
		return nil
	})
	g.Go(func() error {
		r.CategoriesByQty = TopCategoriesByQty(orders, opts.TopN)
		return nil
	})
	g.Go(func() error {
		r.CategoriesByRevenue = TopCategoriesByRevenue(orders, opts.TopN)
		return nil
	})
	g.Go(func() error {
		r.Segments = Segmentation(orders)
		return nil
	})
	g.Go(func() error {
		r.TopStates = TopStates(orders, opts.TopN)
		return nil
	})
	g.Go(func() error {
		r.TopCities = TopCities(orders, opts.TopN)
		return nil
	})
	g.Go(func() error {
		r.HighValueOrders = HighValue(orders, opts.HighValueThreshold)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// ComputeTotals sums revenue over all rows and counts them. The average
// order value of an empty table is 0, not a division error.
func ComputeTotals(orders []Order) Totals {
	t := Totals{
		Revenue:       decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	for _, o := range orders {
		t.Revenue = t.Revenue.Add(o.Amount)
	}
	t.Orders = len(orders)
	if t.Orders > 0 {
		t.AvgOrderValue = t.Revenue.DivRound(decimal.NewFromInt(int64(t.Orders)), 2)
	}
	return t
}

// MonthlyTrend groups dated rows by calendar month and sums revenue,
// ascending by month. Rows without a valid date are skipped; months with
// no orders are omitted rather than zero-filled.
func MonthlyTrend(orders []Order) []MonthlyPoint {
	byMonth := make(map[time.Time]decimal.Decimal)
	for _, o := range orders {
		if !o.HasDate {
			continue
		}
		k := MonthOf(o.Date)
		byMonth[k] = byMonth[k].Add(o.Amount)
	}
	series := make([]MonthlyPoint, 0, len(byMonth))
	for month, rev := range byMonth {
		series = append(series, MonthlyPoint{Month: month, Revenue: rev})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	return series
}

// TopCategoriesByQty ranks categories by summed quantity, descending,
// truncated to n. Ties break on category name so the ranking is stable
// across runs.
func TopCategoriesByQty(orders []Order, n int) []CategoryQty {
	byCat := make(map[string]int64)
	for _, o := range orders {
		byCat[o.Category] += o.Qty
	}
	rows := make([]CategoryQty, 0, len(byCat))
	for cat, qty := range byCat {
		rows = append(rows, CategoryQty{Category: cat, Qty: qty})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Qty != rows[j].Qty {
			return rows[i].Qty > rows[j].Qty
		}
		return rows[i].Category < rows[j].Category
	})
	return truncate(rows, n)
}

// TopCategoriesByRevenue ranks categories by summed revenue, descending,
// truncated to n.
func TopCategoriesByRevenue(orders []Order, n int) []CategoryRevenue {
	byCat := make(map[string]decimal.Decimal)
	for _, o := range orders {
		byCat[o.Category] = byCat[o.Category].Add(o.Amount)
	}
	rows := make([]CategoryRevenue, 0, len(byCat))
	for cat, rev := range byCat {
		rows = append(rows, CategoryRevenue{Category: cat, Revenue: rev})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].Category < rows[j].Category
	})
	return truncate(rows, n)
}

// Segmentation splits rows into the B2B and Individual buckets. Both
// buckets are always present, with zero counts when nothing matches.
func Segmentation(orders []Order) []Segment {
	b2b := Segment{Label: SegmentB2B, Revenue: decimal.Zero}
	ind := Segment{Label: SegmentIndividual, Revenue: decimal.Zero}
	for _, o := range orders {
		if o.IsB2B {
			b2b.Orders++
			b2b.Revenue = b2b.Revenue.Add(o.Amount)
		} else {
			ind.Orders++
			ind.Revenue = ind.Revenue.Add(o.Amount)
		}
	}
	return []Segment{b2b, ind}
}

// TopStates ranks shipping states by summed revenue. Rows with no state
// are dropped from the ranking.
func TopStates(orders []Order, n int) []LocationRevenue {
	return topLocations(orders, n, func(o Order) string { return o.ShipState })
}

// TopCities ranks shipping cities by summed revenue. Rows with no city
// are dropped from the ranking.
func TopCities(orders []Order, n int) []LocationRevenue {
	return topLocations(orders, n, func(o Order) string { return o.ShipCity })
}

func topLocations(orders []Order, n int, key func(Order) string) []LocationRevenue {
	byLoc := make(map[string]decimal.Decimal)
	for _, o := range orders {
		loc := key(o)
		if loc == "" {
			continue
		}
		byLoc[loc] = byLoc[loc].Add(o.Amount)
	}
	rows := make([]LocationRevenue, 0, len(byLoc))
	for loc, rev := range byLoc {
		rows = append(rows, LocationRevenue{Location: loc, Revenue: rev})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].Location < rows[j].Location
	})
	return truncate(rows, n)
}

// HighValue sums rows per order ID and keeps orders whose total strictly
// exceeds threshold, descending by total. An order summing to exactly the
// threshold is excluded.
func HighValue(orders []Order, threshold decimal.Decimal) []HighValueOrder {
	byOrder := make(map[string]decimal.Decimal)
	for _, o := range orders {
		byOrder[o.OrderID] = byOrder[o.OrderID].Add(o.Amount)
	}
	rows := make([]HighValueOrder, 0)
	for id, rev := range byOrder {
		if rev.GreaterThan(threshold) {
			rows = append(rows, HighValueOrder{OrderID: id, Revenue: rev})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Revenue.Equal(rows[j].Revenue) {
			return rows[i].Revenue.GreaterThan(rows[j].Revenue)
		}
		return rows[i].OrderID < rows[j].OrderID
	})
	return rows
}

func truncate[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
