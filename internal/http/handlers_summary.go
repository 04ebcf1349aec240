package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"kupa/internal/core"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	ref := parseReferenceDate(r.URL.Query())
	summary := s.svc.Summary(ref)
	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:   summary,
		Reference: fmt.Sprintf("%04d-%02d", ref.Year, ref.Month),
		Version:   s.version(),
	})
}

// parseReferenceDate extracts year and month from query parameters,
// falling back to the current calendar month for anything absent or
// unparsable. Only the year and month fields matter to the summary.
func parseReferenceDate(query url.Values) core.Date {
	ref := core.Today()

	if v := strings.TrimSpace(query.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y >= 1 && y <= 9999 {
			ref.Year = y
		}
	}
	if v := strings.TrimSpace(query.Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			ref.Month = m
		}
	}
	ref.Day = 1
	return ref
}
