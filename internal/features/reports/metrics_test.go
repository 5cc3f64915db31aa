package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withStatuses(statuses ...string) []Report {
	rows := make([]Report, len(statuses))
	for i, s := range statuses {
		rows[i] = Report{ID: string(rune('a' + i)), Status: s}
	}
	return rows
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	require.Equal(t, Summary{}, s)

	s = Summarize([]Report{})
	require.Equal(t, 0, s.Total)
	require.Equal(t, 0, s.CompletionRate)
}

func TestSummarizeCounts(t *testing.T) {
	rows := withStatuses(StatusPending, StatusInProgress, StatusCompleted, StatusCompleted)

	s := Summarize(rows)
	require.Equal(t, 4, s.Total)
	require.Equal(t, 1, s.Pending)
	require.Equal(t, 1, s.InProgress)
	require.Equal(t, 2, s.Completed)
	require.Equal(t, 50, s.CompletionRate)
}

func TestSummarizeRejectedCountsTowardTotalOnly(t *testing.T) {
	rows := withStatuses(StatusRejected, StatusCompleted)

	s := Summarize(rows)
	require.Equal(t, 2, s.Total)
	require.Equal(t, 0, s.Pending)
	require.Equal(t, 1, s.Completed)
	require.Equal(t, 50, s.CompletionRate)
}

func TestSummarizeRounding(t *testing.T) {
	// 1 of 3 completed -> 33.33 -> 33
	s := Summarize(withStatuses(StatusPending, StatusPending, StatusCompleted))
	require.Equal(t, 33, s.CompletionRate)

	// 2 of 3 completed -> 66.67 -> 67
	s = Summarize(withStatuses(StatusPending, StatusCompleted, StatusCompleted))
	require.Equal(t, 67, s.CompletionRate)
}
