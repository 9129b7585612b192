package core

import (
	"context"
	"testing"
	"time"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	r, err := BuildReport(context.Background(), sampleOrders(), ReportOptions{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	return r
}

func TestMonthlyBetween(t *testing.T) {
	r := sampleReport(t)
	april := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"full range", april, june, 3},
		{"single bucket", april, april, 1},
		{"inverted bounds", june, april, 0},
		{"unbounded start", time.Time{}, april, 1},
		{"unbounded end", june, time.Time{}, 1},
		{"no bounds", time.Time{}, time.Time{}, 3},
		{"outside data", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		got := r.MonthlyBetween(tc.start, tc.end)
		if len(got) != tc.want {
			t.Fatalf("%s: got %d buckets, want %d", tc.name, len(got), tc.want)
		}
	}

	single := r.MonthlyBetween(april, april)
	if len(single) != 1 || !single[0].Month.Equal(april) {
		t.Fatalf("start==end==bucket should return exactly that bucket, got %+v", single)
	}
}

func TestCategoryViewEmptySelectionShowsAll(t *testing.T) {
	r := sampleReport(t)
	full := r.CategoryView(ByQty, nil)
	if len(full.Qty) != len(r.CategoriesByQty) {
		t.Fatalf("empty selection changed the ranking: %d vs %d", len(full.Qty), len(r.CategoriesByQty))
	}
	for i, row := range full.Qty {
		if row != r.CategoriesByQty[i] {
			t.Fatalf("row %d differs from precomputed ranking", i)
		}
	}
}

func TestCategoryViewSelection(t *testing.T) {
	r := sampleReport(t)
	v := r.CategoryView(ByRevenue, []string{"Kurta", "NoSuchCategory"})
	if len(v.Revenue) != 1 || v.Revenue[0].Category != "Kurta" {
		t.Fatalf("selection filter broken: %+v", v.Revenue)
	}
	if v.Qty != nil {
		t.Fatalf("revenue view should not carry a qty table")
	}

	// Unknown metric falls back to the quantity ranking.
	fallback := r.CategoryView(RankingMetric("bogus"), nil)
	if fallback.Metric != ByQty || len(fallback.Qty) == 0 {
		t.Fatalf("unknown metric should fall back to qty, got %+v", fallback)
	}
}

func TestGeoView(t *testing.T) {
	r := sampleReport(t)
	if got := r.GeoView(TabStates); len(got) != len(r.TopStates) {
		t.Fatalf("states tab: got %d rows, want %d", len(got), len(r.TopStates))
	}
	if got := r.GeoView(TabCities); len(got) != len(r.TopCities) {
		t.Fatalf("cities tab: got %d rows, want %d", len(got), len(r.TopCities))
	}
	if got := r.GeoView(""); len(got) != len(r.TopStates) {
		t.Fatalf("empty tab should default to states")
	}
	if got := r.GeoView(GeoTab("countries")); len(got) != 0 {
		t.Fatalf("unknown tab should yield no data, got %d rows", len(got))
	}
}
