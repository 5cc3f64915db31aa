package reports

import (
	"sort"
	"strings"
	"time"
)

// FilterAll is the sentinel meaning "no constraint" for select criteria.
const FilterAll = "all"

// Date range tokens accepted by Criteria.DateRange. Empty means no constraint.
const (
	DateRangeToday   = "today"
	DateRangeWeek    = "week"
	DateRangeMonth   = "month"
	DateRangeQuarter = "quarter"
)

var dateRangeWindows = map[string]time.Duration{
	DateRangeToday:   24 * time.Hour,
	DateRangeWeek:    7 * 24 * time.Hour,
	DateRangeMonth:   30 * 24 * time.Hour,
	DateRangeQuarter: 90 * 24 * time.Hour,
}

// Criteria is the ephemeral, caller-owned set of narrowing parameters for a
// report list. The zero value (or "all" for the select fields) matches
// everything.
type Criteria struct {
	Search    string `json:"search" form:"search"`
	City      string `json:"city" form:"city"`
	Category  string `json:"category" form:"category"`
	Status    string `json:"status" form:"status"`
	DateRange string `json:"dateRange" form:"date_range"`
}

// Apply returns the subset of reports matching all active criteria clauses,
// preserving input order. Pure: the input slice is never mutated.
func Apply(rows []Report, c Criteria) []Report {
	return applyAt(rows, c, time.Now())
}

func applyAt(rows []Report, c Criteria, now time.Time) []Report {
	out := make([]Report, 0, len(rows))
	for _, r := range rows {
		if matches(r, c, now) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Report, c Criteria, now time.Time) bool {
	if s := strings.ToLower(strings.TrimSpace(c.Search)); s != "" {
		if !strings.Contains(strings.ToLower(r.Title), s) &&
			!strings.Contains(strings.ToLower(r.Description), s) &&
			!strings.Contains(strings.ToLower(r.ID), s) {
			return false
		}
	}

	if !selectMatches(c.City, r.City) {
		return false
	}
	if !selectMatches(c.Category, r.Category) {
		return false
	}
	if !selectMatches(c.Status, r.Status) {
		return false
	}

	if window, ok := dateRangeWindows[c.DateRange]; ok {
		// A report without a creation timestamp never falls inside a window.
		if r.CreatedAt == nil || r.CreatedAt.Before(now.Add(-window)) {
			return false
		}
	}

	return true
}

func selectMatches(criterion, value string) bool {
	if criterion == "" || criterion == FilterAll {
		return true
	}
	return strings.EqualFold(criterion, value)
}

// Sort keys understood by SortBy. createdAt compares numerically by
// timestamp; everything else compares lexicographically.
const (
	SortKeyCreatedAt = "created_at"
	SortKeyTitle     = "title"
	SortKeyCity      = "city"
	SortKeyCategory  = "category"
	SortKeyStatus    = "status"
	SortKeyID        = "id"
)

// SortBy returns a sorted copy of rows. The sort is stable: rows with equal
// keys keep their original relative order. direction is "asc" or "desc";
// anything else falls back to descending, the table default.
func SortBy(rows []Report, key, direction string) []Report {
	out := make([]Report, len(rows))
	copy(out, rows)

	asc := direction == "asc"

	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		if key == SortKeyCreatedAt {
			less = timeValue(out[i].CreatedAt).Before(timeValue(out[j].CreatedAt))
		} else {
			less = sortValue(out[i], key) < sortValue(out[j], key)
		}
		if asc {
			return less
		}
		if key == SortKeyCreatedAt {
			return timeValue(out[j].CreatedAt).Before(timeValue(out[i].CreatedAt))
		}
		return sortValue(out[j], key) < sortValue(out[i], key)
	})

	return out
}

func sortValue(r Report, key string) string {
	switch key {
	case SortKeyTitle:
		return r.Title
	case SortKeyCity:
		return r.City
	case SortKeyCategory:
		return r.Category
	case SortKeyStatus:
		return r.Status
	case SortKeyID:
		return r.ID
	}
	return r.ID
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
