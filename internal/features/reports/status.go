package reports

// Report status vocabulary. Closed set; anything else normalizes to pending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusRejected:   true,
}

// statusFlow drives the one-click "advance" action in the admin table. It is
// a lookup table, not a guarded state machine: direct status updates accept
// any of the four values and bypass it.
var statusFlow = map[string]string{
	StatusPending:    StatusInProgress,
	StatusInProgress: StatusCompleted,
	StatusCompleted:  StatusCompleted, // terminal; advancing is a no-op
	StatusRejected:   StatusPending,   // reopen
}

var statusActionLabels = map[string]string{
	StatusPending:    "Start Progress",
	StatusInProgress: "Mark Complete",
	StatusCompleted:  "Completed",
	StatusRejected:   "Reopen",
}

// IsValidStatus reports whether s belongs to the status vocabulary.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// ValidStatuses returns the status vocabulary in display order.
func ValidStatuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted, StatusRejected}
}

// NextStatus returns the advance target for the given status. Unknown
// statuses advance to pending.
func NextStatus(current string) string {
	if next, ok := statusFlow[current]; ok {
		return next
	}
	return StatusPending
}

// StatusActionLabel returns the admin-table action label for a status.
func StatusActionLabel(current string) string {
	if label, ok := statusActionLabels[current]; ok {
		return label
	}
	return "Update"
}
