package reports

import (
	"strings"
	"time"
)

// DefaultTitle is used when a source document has no title.
const DefaultTitle = "Untitled report"

// Normalize converts a raw backend document into a Report. It is total:
// every absent or malformed field degrades to its documented default, so it
// never fails regardless of input shape. All defaulting lives here; no other
// component applies its own.
func Normalize(id string, doc map[string]interface{}) Report {
	if doc == nil {
		doc = map[string]interface{}{}
	}

	title := stringField(doc, "title")
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	lat, latOK := floatField(doc, "lat")
	lng, lngOK := floatField(doc, "lng")
	coords := Coordinates{}
	if latOK && lngOK {
		coords = Coordinates{Lat: lat, Lng: lng}
	}

	return Report{
		ID:          id,
		Title:       title,
		Description: stringField(doc, "description"),
		Category:    NormalizeCategory(stringField(doc, "category")),
		City:        NormalizeCity(stringField(doc, "city")),
		Coordinates: coords,
		PhotoURL:    stringField(doc, "photoURL"),
		Status:      normalizeStatus(stringField(doc, "status")),
		CreatedAt:   timeField(doc, "createdAt"),
		UpdatedAt:   timeField(doc, "updatedAt"),
		Raw:         doc,
	}
}

// NormalizeCategory lower-cases a category and collapses internal whitespace
// runs to single underscores ("Street Lights" -> "street_lights").
// Idempotent: normalizing an already-normalized value is a no-op.
func NormalizeCategory(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), "_")
}

// NormalizeCity lower-cases a city name. No whitespace transformation.
func NormalizeCity(v string) string {
	return strings.ToLower(v)
}

func normalizeStatus(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if !IsValidStatus(s) {
		return StatusPending
	}
	return s
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func floatField(doc map[string]interface{}, key string) (float64, bool) {
	// Firestore decodes numbers as int64 or float64 depending on the wire value.
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func timeField(doc map[string]interface{}, key string) *time.Time {
	switch v := doc[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
	}
	return nil
}
