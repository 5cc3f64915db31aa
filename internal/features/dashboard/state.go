// Package dashboard holds the admin dashboard's view state and the
// transitions that drive it. State values are treated as immutable:
// every transition returns a new State, so a caller can hold a
// snapshot and restore it if a backend write fails.
package dashboard

import (
	"github.com/opencivic/civicmap/internal/features/reports"
)

// ToastLevel classifies a toast for display.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Toast is a one-shot notification surfaced to the operator.
type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

// State is the dashboard's full view state. Filtered and Summary are
// derived from Reports and Criteria and kept in sync by transitions.
type State struct {
	Reports  []reports.Report
	Filtered []reports.Report
	Criteria reports.Criteria
	SortKey  string
	SortDir  string
	Selected map[string]struct{}
	Summary  reports.Summary
	Loading  bool
	Toasts   []Toast
}

// NewState returns an empty dashboard state sorted newest first.
func NewState() State {
	return State{
		Reports:  []reports.Report{},
		Filtered: []reports.Report{},
		SortKey:  reports.SortKeyCreatedAt,
		SortDir:  "desc",
		Selected: map[string]struct{}{},
	}
}

func (s State) clone() State {
	next := s
	next.Reports = append([]reports.Report(nil), s.Reports...)
	next.Selected = make(map[string]struct{}, len(s.Selected))
	for id := range s.Selected {
		next.Selected[id] = struct{}{}
	}
	next.Toasts = append([]Toast(nil), s.Toasts...)
	return next
}

// derive recomputes the filtered window and the summary from the raw
// rows and the current criteria.
func (s State) derive() State {
	s.Filtered = reports.SortBy(reports.Apply(s.Reports, s.Criteria), s.SortKey, s.SortDir)
	s.Summary = reports.Summarize(s.Reports)
	return s
}

// WithReports replaces the raw report window, for instance after a
// fresh load from the backend.
func (s State) WithReports(rows []reports.Report) State {
	next := s.clone()
	next.Reports = append([]reports.Report(nil), rows...)
	next.Loading = false
	return next.derive()
}

// WithCriteria applies new filter criteria. Changing the filter
// clears the selection so a bulk action can never touch rows the
// operator is no longer looking at.
func (s State) WithCriteria(c reports.Criteria) State {
	next := s.clone()
	next.Criteria = c
	next.Selected = map[string]struct{}{}
	return next.derive()
}

// WithSort changes the sort key and direction for the filtered window.
func (s State) WithSort(key, direction string) State {
	next := s.clone()
	next.SortKey = key
	next.SortDir = direction
	return next.derive()
}

// WithLoading flags an in-flight reload.
func (s State) WithLoading(loading bool) State {
	next := s.clone()
	next.Loading = loading
	return next
}

// ToggleSelect flips one report in or out of the selection.
func (s State) ToggleSelect(id string) State {
	next := s.clone()
	if _, ok := next.Selected[id]; ok {
		delete(next.Selected, id)
	} else {
		next.Selected[id] = struct{}{}
	}
	return next
}

// SelectAllFiltered selects every report in the current filtered window.
func (s State) SelectAllFiltered() State {
	next := s.clone()
	next.Selected = make(map[string]struct{}, len(next.Filtered))
	for _, r := range next.Filtered {
		next.Selected[r.ID] = struct{}{}
	}
	return next
}

// ClearSelection empties the selection.
func (s State) ClearSelection() State {
	next := s.clone()
	next.Selected = map[string]struct{}{}
	return next
}

// IsSelected reports whether the given id is in the selection.
func (s State) IsSelected(id string) bool {
	_, ok := s.Selected[id]
	return ok
}

// SelectedIDs returns the selection as a slice, in filtered-window
// order so bulk actions apply in the order the operator sees.
func (s State) SelectedIDs() []string {
	ids := make([]string, 0, len(s.Selected))
	for _, r := range s.Filtered {
		if _, ok := s.Selected[r.ID]; ok {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// PushToast appends a notification.
func (s State) PushToast(level ToastLevel, message string) State {
	next := s.clone()
	next.Toasts = append(next.Toasts, Toast{Level: level, Message: message})
	return next
}

// DrainToasts returns the queued toasts and a state with the queue
// emptied.
func (s State) DrainToasts() ([]Toast, State) {
	next := s.clone()
	toasts := next.Toasts
	next.Toasts = nil
	return toasts, next
}

// withStatus rewrites one report's status in place in the raw window
// and re-derives. Used for the optimistic path before the backend
// write confirms.
func (s State) withStatus(id, status string) State {
	next := s.clone()
	for i := range next.Reports {
		if next.Reports[i].ID == id {
			next.Reports[i].Status = status
			break
		}
	}
	return next.derive()
}
