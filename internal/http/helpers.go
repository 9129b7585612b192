package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// rowsPayload is the generic chart-ready table envelope. Rows is always an
// array in the JSON output, never null.
type rowsPayload struct {
	Rows any `json:"rows"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseDateParam reads a YYYY-MM-DD query parameter. An absent parameter
// yields the zero time (unbounded); a present but malformed one reports
// failure so the handler can reject the request.
func parseDateParam(r *http.Request, name string) (time.Time, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// splitParam splits a comma-separated multi-select parameter, dropping
// empty entries.
func splitParam(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
