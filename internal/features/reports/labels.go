package reports

// Option pairs a normalized key with its presentation label.
type Option struct {
	Value string `json:"value" example:"streetlights"`
	Label string `json:"label" example:"Street Lights"`
}

// Display labels are hand-maintained here, deliberately separate from the
// normalized keys the adapter produces: normalization is lossy, so labels
// are never derived from keys (or the other way around).
var categoryOptions = []Option{
	{Value: "roads", Label: "Roads & Infrastructure"},
	{Value: "water", Label: "Water Supply"},
	{Value: "electricity", Label: "Electricity"},
	{Value: "garbage", Label: "Garbage Collection"},
	{Value: "drainage", Label: "Drainage & Sewage"},
	{Value: "streetlights", Label: "Street Lights"},
	{Value: "parks", Label: "Parks & Recreation"},
	{Value: "traffic", Label: "Traffic Management"},
	{Value: "other", Label: "Other"},
}

var cityOptions = []Option{
	{Value: "mumbai", Label: "Mumbai"},
	{Value: "delhi", Label: "Delhi"},
	{Value: "bangalore", Label: "Bangalore"},
	{Value: "hyderabad", Label: "Hyderabad"},
	{Value: "ahmedabad", Label: "Ahmedabad"},
	{Value: "chennai", Label: "Chennai"},
	{Value: "kolkata", Label: "Kolkata"},
	{Value: "pune", Label: "Pune"},
	{Value: "jaipur", Label: "Jaipur"},
	{Value: "lucknow", Label: "Lucknow"},
}

var statusOptions = []Option{
	{Value: StatusPending, Label: "Pending"},
	{Value: StatusInProgress, Label: "In Progress"},
	{Value: StatusCompleted, Label: "Completed"},
	{Value: StatusRejected, Label: "Rejected"},
}

// CategoryOptions returns the category pick list for submission and filter UIs.
func CategoryOptions() []Option {
	return append([]Option(nil), categoryOptions...)
}

// CityOptions returns the supported city pick list.
func CityOptions() []Option {
	return append([]Option(nil), cityOptions...)
}

// StatusOptions returns the status pick list.
func StatusOptions() []Option {
	return append([]Option(nil), statusOptions...)
}

// CategoryLabel resolves a normalized category key to its display label,
// falling back to the key itself for categories outside the pick list.
func CategoryLabel(key string) string {
	for _, o := range categoryOptions {
		if o.Value == key {
			return o.Label
		}
	}
	return key
}

// CityLabel resolves a normalized city key to its display label.
func CityLabel(key string) string {
	for _, o := range cityOptions {
		if o.Value == key {
			return o.Label
		}
	}
	return key
}
