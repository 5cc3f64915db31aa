package reports

import "math"

// Summary holds the dashboard metric counts for a report collection.
// @Description Aggregate counts and completion rate for a set of reports
type Summary struct {
	Total          int `json:"total" example:"42"`
	Pending        int `json:"pending" example:"20"`
	InProgress     int `json:"inProgress" example:"10"`
	Completed      int `json:"completed" example:"12"`
	CompletionRate int `json:"completionRate" example:"29"`
}

// Summarize computes status counts and the completion rate in one pass.
// CompletionRate is round(completed/total*100), defined as 0 for an empty
// collection.
func Summarize(rows []Report) Summary {
	s := Summary{Total: len(rows)}

	for _, r := range rows {
		switch r.Status {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	return s
}
