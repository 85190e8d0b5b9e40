package rating

// RatingItem is one of the caller's ratings. UpdatedAt is not tracked by the
// store and is always "".
type RatingItem struct {
	EventID   string  `json:"eventId"`
	Value     float64 `json:"value"`
	UpdatedAt string  `json:"updatedAt"`
}
