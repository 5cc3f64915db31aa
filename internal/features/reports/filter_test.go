package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleReports() []Report {
	return []Report{
		{ID: "r1", Title: "Pothole on Main Road", Description: "Large pothole near the signal", Category: "roads", City: "mumbai", Status: StatusPending, CreatedAt: ts("2025-01-10T10:30:00Z")},
		{ID: "r2", Title: "Garbage not collected", Description: "Three days overdue", Category: "garbage", City: "delhi", Status: StatusInProgress, CreatedAt: ts("2025-01-09T14:15:00Z")},
		{ID: "r3", Title: "Water supply disruption", Description: "No water for two days", Category: "water", City: "bangalore", Status: StatusCompleted, CreatedAt: ts("2025-01-08T08:45:00Z")},
		{ID: "r4", Title: "Street light outage", Description: "Dark stretch, pothole hazard too", Category: "streetlights", City: "mumbai", Status: StatusPending, CreatedAt: nil},
	}
}

func TestApplyAllSentinelsReturnsInputUnchanged(t *testing.T) {
	rows := sampleReports()

	got := Apply(rows, Criteria{Search: "", City: "all", Category: "all", Status: "all", DateRange: ""})
	require.Equal(t, rows, got)
}

func TestApplySearchOverTitleDescriptionAndID(t *testing.T) {
	rows := sampleReports()

	got := Apply(rows, Criteria{Search: "pothole", City: "all", Category: "all", Status: "all"})
	require.Len(t, got, 2)
	require.Equal(t, "r1", got[0].ID)
	require.Equal(t, "r4", got[1].ID)

	// id substring matches too
	got = Apply(rows, Criteria{Search: "r3"})
	require.Len(t, got, 1)
	require.Equal(t, "r3", got[0].ID)

	// case-insensitive
	got = Apply(rows, Criteria{Search: "POTHOLE"})
	require.Len(t, got, 2)
}

func TestApplySelectClausesAreANDCombined(t *testing.T) {
	rows := sampleReports()

	got := Apply(rows, Criteria{City: "mumbai", Status: StatusPending})
	require.Len(t, got, 2)

	got = Apply(rows, Criteria{City: "mumbai", Category: "roads"})
	require.Len(t, got, 1)
	require.Equal(t, "r1", got[0].ID)

	got = Apply(rows, Criteria{City: "delhi", Status: StatusCompleted})
	require.Empty(t, got)
}

func TestApplyDateRangeWindows(t *testing.T) {
	now := time.Date(2025, 1, 10, 16, 0, 0, 0, time.UTC)
	rows := sampleReports()

	got := applyAt(rows, Criteria{DateRange: DateRangeToday}, now)
	require.Len(t, got, 1)
	require.Equal(t, "r1", got[0].ID)

	got = applyAt(rows, Criteria{DateRange: DateRangeWeek}, now)
	require.Len(t, got, 3)

	// nil createdAt never falls inside a window
	for _, r := range got {
		require.NotNil(t, r.CreatedAt)
	}

	got = applyAt(rows, Criteria{DateRange: ""}, now)
	require.Len(t, got, 4)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rows := sampleReports()
	_ = Apply(rows, Criteria{Search: "pothole"})
	require.Equal(t, sampleReports(), rows)
}

func TestSortByCreatedAtDesc(t *testing.T) {
	rows := sampleReports()

	got := SortBy(rows, SortKeyCreatedAt, "desc")
	require.Equal(t, "r1", got[0].ID)
	require.Equal(t, "r2", got[1].ID)
	require.Equal(t, "r3", got[2].ID)
	// nil timestamp sorts last in descending order
	require.Equal(t, "r4", got[3].ID)

	got = SortBy(rows, SortKeyCreatedAt, "asc")
	require.Equal(t, "r4", got[0].ID)
	require.Equal(t, "r1", got[3].ID)
}

func TestSortByIsStableForEqualKeys(t *testing.T) {
	same := ts("2025-01-10T10:30:00Z")
	rows := []Report{
		{ID: "first", CreatedAt: same},
		{ID: "second", CreatedAt: same},
		{ID: "third", CreatedAt: same},
	}

	got := SortBy(rows, SortKeyCreatedAt, "desc")
	require.Equal(t, []string{"first", "second", "third"}, []string{got[0].ID, got[1].ID, got[2].ID})

	got = SortBy(rows, SortKeyCreatedAt, "asc")
	require.Equal(t, []string{"first", "second", "third"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortByLexicographicKeys(t *testing.T) {
	rows := sampleReports()

	got := SortBy(rows, SortKeyCity, "asc")
	require.Equal(t, "bangalore", got[0].City)
	require.Equal(t, "delhi", got[1].City)

	got = SortBy(rows, SortKeyTitle, "asc")
	require.Equal(t, "Garbage not collected", got[0].Title)
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	rows := sampleReports()
	_ = SortBy(rows, SortKeyTitle, "asc")
	require.Equal(t, sampleReports(), rows)
}
