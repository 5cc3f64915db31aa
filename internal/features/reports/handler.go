package reports

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/pkg/response"
	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List recent reports
// @Description Get the recent-reports window, optionally narrowed by search text, city, category, status, and date range, then sorted
// @Tags reports
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring over title, description, and id"
// @Param city query string false "City key or 'all'"
// @Param category query string false "Category key or 'all'"
// @Param status query string false "Status or 'all'" Enums(pending, in_progress, completed, rejected)
// @Param date_range query string false "Trailing window on creation time" Enums(today, week, month, quarter)
// @Param sort query string false "Sort key (default created_at)"
// @Param order query string false "asc or desc (default desc)"
// @Param limit query int false "Window size (default and max 100)"
// @Success 200 {object} response.ListResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	var criteria Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	if err := ValidateDateRange(criteria.DateRange); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	sortKey := c.DefaultQuery("sort", SortKeyCreatedAt)
	order := c.DefaultQuery("order", "desc")
	if err := ValidateSortParams(sortKey, order); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	limit := MaxListLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= MaxListLimit {
			limit = l
		}
	}

	rows, err := h.repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to load reports", "BACKEND_UNAVAILABLE")
		return
	}

	filtered := Apply(rows, criteria)
	filtered = SortBy(filtered, sortKey, order)

	response.List(c, filtered, len(filtered), limit)
}

// Summary godoc
// @Summary Report metrics
// @Description Status counts and completion rate over the recent-reports window
// @Tags reports
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=Summary}
// @Failure 503 {object} response.ErrorResponse
// @Router /reports/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	rows, err := h.repo.ListRecent(c.Request.Context(), MaxListLimit)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to load reports", "BACKEND_UNAVAILABLE")
		return
	}

	response.Success(c, Summarize(rows))
}

// Meta godoc
// @Summary Pick-list metadata
// @Description Category, city, and status option lists with display labels
// @Tags reports
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /reports/meta [get]
func (h *Handler) Meta(c *gin.Context) {
	response.Success(c, gin.H{
		"categories": CategoryOptions(),
		"cities":     CityOptions(),
		"statuses":   StatusOptions(),
	})
}

// Get godoc
// @Summary Get a report by ID
// @Description Fetch one report; a missing id is a 404, a backend failure a 503
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	rep, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to load report", "BACKEND_UNAVAILABLE")
		return
	}

	response.Success(c, rep)
}

// Create godoc
// @Summary Submit a new report
// @Description Persist a citizen submission; the backend assigns the id and timestamps and the report starts as pending
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report submission"
// @Success 201 {object} response.SuccessResponse{data=Report}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateReport(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	id, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to submit report", "BACKEND_UNAVAILABLE")
		return
	}

	// Read back so the response carries the server-assigned timestamps.
	rep, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Created(c, gin.H{"id": id, "status": StatusPending})
		return
	}

	response.Created(c, rep)
}

// UpdateStatus godoc
// @Summary Set a report's status
// @Description Direct status update used by manual selection and bulk flows; writes only status and updatedAt
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeStatusUpdateError(c, err)
		return
	}

	rep, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Success(c, gin.H{"id": id, "status": strings.ToLower(req.Status)})
		return
	}

	response.Success(c, rep)
}

// Advance godoc
// @Summary Advance a report's status
// @Description One-click advance through the status flow (pending -> in_progress -> completed; rejected reopens)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /reports/{id}/advance [post]
func (h *Handler) Advance(c *gin.Context) {
	id := c.Param("id")

	rep, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to load report", "BACKEND_UNAVAILABLE")
		return
	}

	next := NextStatus(rep.Status)
	if next != rep.Status {
		if err := h.repo.UpdateStatus(c.Request.Context(), id, next); err != nil {
			h.writeStatusUpdateError(c, err)
			return
		}
	}

	response.Success(c, gin.H{
		"id":     id,
		"from":   rep.Status,
		"status": next,
		"action": StatusActionLabel(next),
	})
}

// BulkStatus godoc
// @Summary Set one status across many reports
// @Description Applies a status to each id independently and reports per-id outcomes
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkStatusRequest true "IDs and target status"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /reports/bulk-status [post]
func (h *Handler) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if len(req.IDs) == 0 {
		response.BadRequest(c, "No report ids given", "EMPTY_SELECTION")
		return
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !IsValidStatus(status) {
		response.ValidationFailed(c, "Invalid status value")
		return
	}

	updated := make([]string, 0, len(req.IDs))
	failed := map[string]string{}
	for _, id := range req.IDs {
		if err := h.repo.UpdateStatus(c.Request.Context(), id, status); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				failed[id] = "not found"
			} else {
				failed[id] = "backend unavailable"
			}
			continue
		}
		updated = append(updated, id)
	}

	response.Success(c, gin.H{
		"status":  status,
		"updated": updated,
		"failed":  failed,
	})
}

func (h *Handler) writeStatusUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		response.ValidationFailed(c, "Invalid status value")
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, "Report not found", "NOT_FOUND")
	default:
		response.ServiceUnavailable(c, "Failed to update status", "BACKEND_UNAVAILABLE")
	}
}
