package dashboard

import (
	"context"
	"sync"

	"github.com/opencivic/civicmap/internal/features/reports"
	"github.com/opencivic/civicmap/internal/pkg/logger"
)

// Service is the backend surface the dashboard drives. The reports
// repository satisfies it.
type Service interface {
	ListRecent(ctx context.Context, limit int) ([]reports.Report, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// Controller owns a dashboard State and serializes transitions on it.
// Status updates are optimistic: the state changes before the backend
// write, and a snapshot taken beforehand restores it on failure.
type Controller struct {
	mu      sync.Mutex
	state   State
	svc     Service
	loadGen uint64
}

func NewController(svc Service) *Controller {
	return &Controller{state: NewState(), svc: svc}
}

// State returns the current state value.
func (ctl *Controller) State() State {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.state
}

// SetCriteria applies new filter criteria and clears the selection.
func (ctl *Controller) SetCriteria(c reports.Criteria) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state = ctl.state.WithCriteria(c)
}

// SetSort changes the sort key and direction.
func (ctl *Controller) SetSort(key, direction string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state = ctl.state.WithSort(key, direction)
}

// ToggleSelect flips one report in or out of the selection.
func (ctl *Controller) ToggleSelect(id string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state = ctl.state.ToggleSelect(id)
}

// SelectAllFiltered selects the whole filtered window.
func (ctl *Controller) SelectAllFiltered() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state = ctl.state.SelectAllFiltered()
}

// ClearSelection empties the selection.
func (ctl *Controller) ClearSelection() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state = ctl.state.ClearSelection()
}

// DrainToasts hands queued toasts to the caller and clears the queue.
func (ctl *Controller) DrainToasts() []Toast {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	toasts, next := ctl.state.DrainToasts()
	ctl.state = next
	return toasts
}

// Load refreshes the report window from the backend. Each call bumps
// a generation counter; a response arriving after a newer Load has
// started is discarded, so a slow early response never overwrites a
// fresher one.
func (ctl *Controller) Load(ctx context.Context) error {
	ctl.mu.Lock()
	ctl.loadGen++
	gen := ctl.loadGen
	ctl.state = ctl.state.WithLoading(true)
	ctl.mu.Unlock()

	rows, err := ctl.svc.ListRecent(ctx, reports.MaxListLimit)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if gen != ctl.loadGen {
		logger.Debug("Discarding stale report load (generation %d, current %d)", gen, ctl.loadGen)
		return nil
	}
	if err != nil {
		ctl.state = ctl.state.WithLoading(false).PushToast(ToastError, "Failed to load reports")
		return err
	}
	ctl.state = ctl.state.WithReports(rows)
	return nil
}

// UpdateStatus optimistically sets one report's status. The filtered
// window reflects the new status immediately; if the backend write
// fails, the pre-update snapshot is restored and exactly one error
// toast is queued.
func (ctl *Controller) UpdateStatus(ctx context.Context, id, status string) error {
	ctl.mu.Lock()
	snapshot := ctl.state
	ctl.state = ctl.state.withStatus(id, status)
	ctl.mu.Unlock()

	err := ctl.svc.UpdateStatus(ctx, id, status)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if err != nil {
		ctl.state = snapshot.PushToast(ToastError, "Failed to update report status")
		return err
	}
	ctl.state = ctl.state.PushToast(ToastSuccess, "Report status updated")
	return nil
}

// BulkUpdateStatus applies one status across the selection. All rows
// change optimistically up front; any backend failure restores the
// pre-update snapshot for every row and queues a single error toast.
// On success the selection is cleared.
func (ctl *Controller) BulkUpdateStatus(ctx context.Context, status string) error {
	ctl.mu.Lock()
	snapshot := ctl.state
	ids := ctl.state.SelectedIDs()
	next := ctl.state
	for _, id := range ids {
		next = next.withStatus(id, status)
	}
	ctl.state = next
	ctl.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}

	var failed error
	for _, id := range ids {
		if err := ctl.svc.UpdateStatus(ctx, id, status); err != nil {
			failed = err
			break
		}
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if failed != nil {
		ctl.state = snapshot.PushToast(ToastError, "Failed to update selected reports")
		return failed
	}
	ctl.state = ctl.state.ClearSelection().PushToast(ToastSuccess, "Selected reports updated")
	return nil
}
