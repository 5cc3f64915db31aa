package reports

import "time"

// Coordinates is a lat/lng pair in floating-point degrees. The zero value
// is the "unknown location" sentinel, not a real location.
type Coordinates struct {
	Lat float64 `json:"lat" example:"19.0760"`
	Lng float64 `json:"lng" example:"72.8777"`
}

// Report is the normalized record for one citizen-submitted civic issue.
// Instances are immutable once constructed; updates replace them wholesale.
// @Description Normalized civic-issue report
type Report struct {
	ID          string                 `json:"id" example:"rpt-8f2a1c"`
	Title       string                 `json:"title" example:"Pothole on Main Road"`
	Description string                 `json:"description" example:"Large pothole near the traffic signal"`
	Category    string                 `json:"category" example:"roads"`
	City        string                 `json:"city" example:"mumbai"`
	Coordinates Coordinates            `json:"coordinates"`
	PhotoURL    string                 `json:"photo_url" example:"https://res.cloudinary.com/demo/reports/a.jpg"`
	Status      string                 `json:"status" example:"pending" enums:"pending,in_progress,completed,rejected"`
	CreatedAt   *time.Time             `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at"`
	Raw         map[string]interface{} `json:"raw,omitempty" swaggerignore:"true"`
}

// HasLocation reports whether coordinates carry a real location rather than
// the {0,0} sentinel.
func (r Report) HasLocation() bool {
	return r.Coordinates.Lat != 0 || r.Coordinates.Lng != 0
}

// CreateReportRequest is a citizen submission
// @Description Data required to submit a new civic-issue report
type CreateReportRequest struct {
	Title       string  `json:"title" binding:"required" example:"Pothole on Main Road"`
	Description string  `json:"description" example:"Large pothole near the traffic signal"`
	Category    string  `json:"category" example:"roads"`
	City        string  `json:"city" example:"Mumbai"`
	Lat         float64 `json:"lat" example:"19.0760"`
	Lng         float64 `json:"lng" example:"72.8777"`
	PhotoURL    string  `json:"photo_url" example:"https://res.cloudinary.com/demo/reports/a.jpg"`
}

// UpdateStatusRequest sets a report's status directly
// @Description Target status for a report
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"in_progress" enums:"pending,in_progress,completed,rejected"`
}

// BulkStatusRequest applies one status across a selection of reports
// @Description Target status for a set of reports
type BulkStatusRequest struct {
	IDs    []string `json:"ids" example:"rpt-1,rpt-2"`
	Status string   `json:"status" binding:"required" example:"completed"`
}
