package http

import (
	"net/http"
	"strings"
	"time"

	"salesboard/internal/core"
	applog "salesboard/internal/log"
)

// handleSummary returns the headline totals card payload.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.report.Totals)
}

// handleMonthly returns the monthly revenue series, optionally restricted
// to an inclusive [start, end] date range. Bounds are YYYY-MM-DD; a
// missing bound is unbounded on that side.
func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	start, ok := parseDateParam(r, "start")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid start date, want YYYY-MM-DD")
		return
	}
	end, ok := parseDateParam(r, "end")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid end date, want YYYY-MM-DD")
		return
	}

	rows := s.report.MonthlyBetween(start, end)
	writeJSON(w, http.StatusOK, rowsPayload{Rows: rows})
}

// handleCategories returns the category ranking selected by the `by`
// metric, intersected with an optional comma-separated `categories` set.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	metric := core.RankingMetric(strings.TrimSpace(r.URL.Query().Get("by")))
	selected := splitParam(r.URL.Query().Get("categories"))

	view := s.report.CategoryView(metric, selected)
	applog.FromContext(r.Context()).DebugContext(r.Context(), "Category view rendered",
		applog.FieldMetric, string(view.Metric),
		applog.FieldRows, len(view.Qty)+len(view.Revenue))
	writeJSON(w, http.StatusOK, view)
}

// handleSegments returns the two-bucket B2B/Individual table.
func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rowsPayload{Rows: s.report.Segments})
}

// handleGeo returns the state or city ranking for the requested tab. An
// unknown tab yields an empty table rather than an error.
func (s *Server) handleGeo(w http.ResponseWriter, r *http.Request) {
	tab := core.GeoTab(strings.TrimSpace(r.URL.Query().Get("tab")))
	rows := s.report.GeoView(tab)
	applog.FromContext(r.Context()).DebugContext(r.Context(), "Geo view rendered",
		applog.FieldTab, string(tab),
		applog.FieldRows, len(rows))
	writeJSON(w, http.StatusOK, rowsPayload{Rows: rows})
}

// handleHighValue returns orders whose summed amount exceeds the
// configured threshold.
func (s *Server) handleHighValue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Threshold string                `json:"threshold"`
		Rows      []core.HighValueOrder `json:"rows"`
	}{
		Threshold: s.report.HighValueThreshold.String(),
		Rows:      s.report.HighValueOrders,
	})
}

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.start).String(),
	})
}

// handleReady reports readiness: the server only starts once the report
// is built, so readiness reduces to having one.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.report == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "not_ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
		"orders": s.report.Totals.Orders,
	})
}
