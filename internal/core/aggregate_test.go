package core

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func order(id, date, amount string, qty int64, b2b bool, cat, state, city string) Order {
	o := Order{
		OrderID:   id,
		Amount:    dec(amount),
		Qty:       qty,
		IsB2B:     b2b,
		Category:  cat,
		ShipState: state,
		ShipCity:  city,
	}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		o.Date, o.HasDate = t, true
	}
	return o
}

func sampleOrders() []Order {
	return []Order{
		order("A1", "2022-04-05", "3000", 1, false, "Kurta", "MAHARASHTRA", "MUMBAI"),
		order("A1", "2022-04-05", "2500", 1, false, "Kurta", "MAHARASHTRA", "MUMBAI"),
		order("A2", "2022-04-20", "647.62", 2, true, "Set", "KARNATAKA", "BENGALURU"),
		order("A3", "2022-05-02", "5000", 1, false, "Set", "KARNATAKA", "BENGALURU"),
		order("A4", "2022-06-15", "120", 3, false, "Top", "", ""),
		order("A5", "", "80", 1, true, "Top", "DELHI", "NEW DELHI"),
	}
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(sampleOrders())
	if !got.Revenue.Equal(dec("11347.62")) {
		t.Fatalf("Revenue = %s, want 11347.62", got.Revenue)
	}
	if got.Orders != 6 {
		t.Fatalf("Orders = %d, want 6", got.Orders)
	}
	if !got.AvgOrderValue.Equal(dec("1891.27")) {
		t.Fatalf("AvgOrderValue = %s, want 1891.27", got.AvgOrderValue)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil)
	if !got.Revenue.IsZero() || got.Orders != 0 || !got.AvgOrderValue.IsZero() {
		t.Fatalf("empty table totals = %+v, want zeros", got)
	}
}

func TestMonthlyTrend(t *testing.T) {
	series := MonthlyTrend(sampleOrders())
	if len(series) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(series))
	}
	// Ascending months, undated row (A5) excluded.
	wantMonths := []time.Time{
		time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	wantRevenue := []string{"6147.62", "5000", "120"}
	for i, p := range series {
		if !p.Month.Equal(wantMonths[i]) {
			t.Fatalf("bucket %d month = %v, want %v", i, p.Month, wantMonths[i])
		}
		if !p.Revenue.Equal(dec(wantRevenue[i])) {
			t.Fatalf("bucket %d revenue = %s, want %s", i, p.Revenue, wantRevenue[i])
		}
	}
}

func TestMonthlySeriesSumsToDatedRevenue(t *testing.T) {
	orders := sampleOrders()
	var dated decimal.Decimal
	for _, o := range orders {
		if o.HasDate {
			dated = dated.Add(o.Amount)
		}
	}
	var sum decimal.Decimal
	for _, p := range MonthlyTrend(orders) {
		sum = sum.Add(p.Revenue)
	}
	if !sum.Equal(dated) {
		t.Fatalf("series sum %s != dated revenue %s", sum, dated)
	}
}

func TestTopCategories(t *testing.T) {
	byQty := TopCategoriesByQty(sampleOrders(), 2)
	if len(byQty) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(byQty))
	}
	if byQty[0].Category != "Top" || byQty[0].Qty != 4 {
		t.Fatalf("top by qty = %+v, want Top/4", byQty[0])
	}

	// Set outranks Kurta: 647.62 + 5000 vs 3000 + 2500.
	byRev := TopCategoriesByRevenue(sampleOrders(), 2)
	if byRev[0].Category != "Set" || !byRev[0].Revenue.Equal(dec("5647.62")) {
		t.Fatalf("top by revenue = %+v, want Set/5647.62", byRev[0])
	}
	if byRev[1].Category != "Kurta" || !byRev[1].Revenue.Equal(dec("5500")) {
		t.Fatalf("unexpected ranking: %+v", byRev)
	}
}

func TestTopCategoriesRankingSubsetOfTotal(t *testing.T) {
	orders := sampleOrders()
	total := ComputeTotals(orders).Revenue
	var ranked decimal.Decimal
	for _, row := range TopCategoriesByRevenue(orders, 2) {
		ranked = ranked.Add(row.Revenue)
	}
	if ranked.GreaterThan(total) {
		t.Fatalf("ranking sum %s exceeds total revenue %s", ranked, total)
	}
}

func TestSegmentationTwoBucketInvariant(t *testing.T) {
	cases := [][]Order{
		nil,
		{order("A1", "2022-04-05", "10", 1, true, "Kurta", "", "")},
		sampleOrders(),
	}
	for i, orders := range cases {
		segs := Segmentation(orders)
		if len(segs) != 2 {
			t.Fatalf("case %d: expected 2 segments, got %d", i, len(segs))
		}
		if segs[0].Label != SegmentB2B || segs[1].Label != SegmentIndividual {
			t.Fatalf("case %d: unexpected labels %q/%q", i, segs[0].Label, segs[1].Label)
		}
		if segs[0].Orders+segs[1].Orders != len(orders) {
			t.Fatalf("case %d: segment counts %d+%d != %d rows",
				i, segs[0].Orders, segs[1].Orders, len(orders))
		}
	}
}

func TestTopLocationsDropMissing(t *testing.T) {
	states := TopStates(sampleOrders(), 10)
	for _, row := range states {
		if row.Location == "" {
			t.Fatalf("missing-location row leaked into state ranking")
		}
	}
	if len(states) != 3 {
		t.Fatalf("expected 3 states, got %d", len(states))
	}
	if states[0].Location != "KARNATAKA" || !states[0].Revenue.Equal(dec("5647.62")) {
		t.Fatalf("top state = %+v, want KARNATAKA/5647.62", states[0])
	}

	cities := TopCities(sampleOrders(), 10)
	if len(cities) != 3 {
		t.Fatalf("expected 3 cities, got %d", len(cities))
	}
}

func TestHighValueStrictThreshold(t *testing.T) {
	orders := []Order{
		order("A1", "2022-04-05", "3000", 1, false, "Kurta", "", ""),
		order("A1", "2022-04-06", "2500", 1, false, "Kurta", "", ""),
		order("A2", "2022-04-07", "5000", 1, false, "Set", "", ""),
		order("A3", "2022-04-08", "100", 1, false, "Top", "", ""),
	}
	rows := HighValue(orders, DefaultHighValueThreshold)
	if len(rows) != 1 {
		t.Fatalf("expected 1 high-value order, got %d", len(rows))
	}
	// A1 sums to 5500 > 5000; A2 sums to exactly 5000 and must stay out.
	if rows[0].OrderID != "A1" || !rows[0].Revenue.Equal(dec("5500")) {
		t.Fatalf("high value row = %+v, want A1/5500", rows[0])
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	orders := sampleOrders()
	reversed := make([]Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}

	a, err := BuildReport(context.Background(), orders, ReportOptions{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	b, err := BuildReport(context.Background(), reversed, ReportOptions{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if !a.Totals.Revenue.Equal(b.Totals.Revenue) || a.Totals.Orders != b.Totals.Orders {
		t.Fatalf("totals differ across row orders: %+v vs %+v", a.Totals, b.Totals)
	}
	if len(a.MonthlySeries) != len(b.MonthlySeries) {
		t.Fatalf("series length differs: %d vs %d", len(a.MonthlySeries), len(b.MonthlySeries))
	}
	for i := range a.MonthlySeries {
		if !a.MonthlySeries[i].Month.Equal(b.MonthlySeries[i].Month) ||
			!a.MonthlySeries[i].Revenue.Equal(b.MonthlySeries[i].Revenue) {
			t.Fatalf("series bucket %d differs", i)
		}
	}
	for i := range a.CategoriesByRevenue {
		if a.CategoriesByRevenue[i].Category != b.CategoriesByRevenue[i].Category {
			t.Fatalf("revenue ranking order differs at %d", i)
		}
	}
	if a.TopN != DefaultTopN || !a.HighValueThreshold.Equal(DefaultHighValueThreshold) {
		t.Fatalf("defaults not applied: topN=%d threshold=%s", a.TopN, a.HighValueThreshold)
	}
}
