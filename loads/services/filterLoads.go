package services

import (
	"strconv"
	"strings"

	"cargo-logbook-backend/db/models"
)

// LoadSummary holds the dashboard counters for a filtered list.
type LoadSummary struct {
	Count        int     `json:"totalCargas"`
	TotalVolumes float64 `json:"totalVolumes"`
	TotalOrders  float64 `json:"totalPedidos"`
}

// FilterLoads applies the current (date, free text) filter pair to the
// in-memory load list and returns the matching subset in the same order.
//
// The date filter is an exact match against the ISO shipment date. The text
// filter is a case-insensitive substring match against the concatenation of
// load number, carrier, route, loader and notes, skipping empty fields.
// Both filters are display-side only and never reach the store.
func FilterLoads(loads []models.Load, dateFilter, textFilter string) []models.Load {
	filtered := make([]models.Load, 0, len(loads))
	filtered = append(filtered, loads...)

	if dateFilter != "" {
		kept := filtered[:0]
		for _, l := range filtered {
			if l.Date.String() == dateFilter {
				kept = append(kept, l)
			}
		}
		filtered = kept
	}

	if search := strings.ToLower(strings.TrimSpace(textFilter)); search != "" {
		kept := filtered[:0]
		for _, l := range filtered {
			if strings.Contains(searchText(l), search) {
				kept = append(kept, l)
			}
		}
		filtered = kept
	}

	return filtered
}

func searchText(l models.Load) string {
	parts := make([]string, 0, 5)
	for _, s := range []string{l.LoadNumber, l.Carrier, l.Route, l.Loader, l.Notes} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Summarize computes the counters for an already filtered list. Volume and
// order fields are free-form numeric strings, fractional values included;
// anything unparseable counts as zero rather than failing.
func Summarize(loads []models.Load) LoadSummary {
	summary := LoadSummary{Count: len(loads)}
	for _, l := range loads {
		summary.TotalVolumes += coerceCount(l.Volumes)
		summary.TotalOrders += coerceCount(l.Orders)
	}
	return summary
}

func coerceCount(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}
