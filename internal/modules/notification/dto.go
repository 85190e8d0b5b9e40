package notification

type SendBookingEmailRequest struct {
	To      string         `json:"to" validate:"required"`
	Booking map[string]any `json:"booking" validate:"required"`
}

type SendBookingEmailResponse struct {
	OK       bool `json:"ok"`
	SGStatus int  `json:"sgStatus"`
}

type UsageResponse struct {
	OK     bool   `json:"ok"`
	Hint   string `json:"hint"`
	Sample any    `json:"sample"`
}

func usage() UsageResponse {
	return UsageResponse{
		OK:   true,
		Hint: "Use POST with fields: to, booking",
		Sample: SendBookingEmailRequest{
			To: "you@example.com",
			Booking: map[string]any{
				"bookingId":  "T123",
				"eventTitle": "Demo",
				"eventFrom":  "2025-10-04 10:00",
				"eventTo":    "2025-10-04 11:00",
				"eventWhere": "Online",
				"name":       "Alice",
				"email":      "you@example.com",
				"level":      "Beginner",
			},
		},
	}
}
