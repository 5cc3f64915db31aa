package reports

import (
	"errors"
	"strings"

	"github.com/opencivic/civicmap/internal/pkg/validator"
)

// ValidateCreateReport checks a citizen submission before persistence.
func ValidateCreateReport(req *CreateReportRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("Title is required")
	}

	if strings.TrimSpace(req.Description) == "" {
		return errors.New("Description is required")
	}

	if strings.TrimSpace(req.Category) == "" {
		return errors.New("Category is required")
	}

	if strings.TrimSpace(req.City) == "" {
		return errors.New("City is required")
	}

	if !validator.IsValidLatitude(req.Lat) || !validator.IsValidLongitude(req.Lng) {
		return errors.New("Coordinates are out of range")
	}

	if req.PhotoURL != "" && !validator.IsValidURL(req.PhotoURL) {
		return errors.New("Photo URL must be a valid http(s) URL")
	}

	return nil
}

// ValidateSortParams checks the sort key and direction for the list endpoint.
func ValidateSortParams(key, direction string) error {
	switch key {
	case "", SortKeyCreatedAt, SortKeyTitle, SortKeyCity, SortKeyCategory, SortKeyStatus, SortKeyID:
	default:
		return errors.New("Unknown sort key")
	}

	switch direction {
	case "", "asc", "desc":
	default:
		return errors.New("Sort order must be asc or desc")
	}

	return nil
}

// ValidateDateRange checks the date_range filter token.
func ValidateDateRange(token string) error {
	switch token {
	case "", DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeQuarter:
		return nil
	}
	return errors.New("Unknown date range")
}
