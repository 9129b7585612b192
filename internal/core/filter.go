package core

import "time"

// RankingMetric selects which precomputed category ranking a view uses.
type RankingMetric string

const (
	ByQty     RankingMetric = "qty"
	ByRevenue RankingMetric = "revenue"
)

// GeoTab selects which geography ranking a view uses.
type GeoTab string

const (
	TabStates GeoTab = "states"
	TabCities GeoTab = "cities"
)

// CategoryView is the chart-ready payload for the category card. Exactly
// one of Qty/Revenue is populated, matching the requested metric.
type CategoryView struct {
	Metric  RankingMetric     `json:"metric"`
	Qty     []CategoryQty     `json:"qty,omitempty"`
	Revenue []CategoryRevenue `json:"revenue,omitempty"`
}

// The view functions below are the whole filter/update contract: each maps
// one UI event to a derived slice of the precomputed tables. They are pure,
// never mutate the report, and never fail for well-typed input — unknown or
// inverted selections yield empty views instead of errors.

// MonthlyBetween returns the monthly series buckets falling inside
// [start, end], both bounds inclusive. A zero bound is unbounded on that
// side. When start is after end the result is empty.
func (r *Report) MonthlyBetween(start, end time.Time) []MonthlyPoint {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return []MonthlyPoint{}
	}
	out := make([]MonthlyPoint, 0, len(r.MonthlySeries))
	for _, p := range r.MonthlySeries {
		if !start.IsZero() && p.Month.Before(start) {
			continue
		}
		if !end.IsZero() && p.Month.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryView picks the ranking for the given metric and, when selected is
// non-empty, keeps only the named categories in ranking order. An empty
// selection means no filter. An unknown metric falls back to the quantity
// ranking, the UI default.
func (r *Report) CategoryView(metric RankingMetric, selected []string) CategoryView {
	keep := categorySet(selected)
	switch metric {
	case ByRevenue:
		rows := make([]CategoryRevenue, 0, len(r.CategoriesByRevenue))
		for _, row := range r.CategoriesByRevenue {
			if keep == nil || keep[row.Category] {
				rows = append(rows, row)
			}
		}
		return CategoryView{Metric: ByRevenue, Revenue: rows}
	default:
		rows := make([]CategoryQty, 0, len(r.CategoriesByQty))
		for _, row := range r.CategoriesByQty {
			if keep == nil || keep[row.Category] {
				rows = append(rows, row)
			}
		}
		return CategoryView{Metric: ByQty, Qty: rows}
	}
}

// GeoView returns the geography ranking for the given tab. An empty tab
// defaults to states; an unrecognized tab yields an empty table.
func (r *Report) GeoView(tab GeoTab) []LocationRevenue {
	switch tab {
	case TabStates, "":
		return r.TopStates
	case TabCities:
		return r.TopCities
	default:
		return []LocationRevenue{}
	}
}

func categorySet(selected []string) map[string]bool {
	if len(selected) == 0 {
		return nil
	}
	set := make(map[string]bool, len(selected))
	for _, c := range selected {
		if c != "" {
			set[c] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
