package booking

import (
	"eventbooking/internal/domain"
	"eventbooking/internal/pkg/utils"
)

// BookingItem is the flat record returned to the web client. Every field is
// always present; missing values are empty strings.
type BookingItem struct {
	BookingID  string `json:"bookingId"`
	EventTitle string `json:"eventTitle"`
	EventFrom  string `json:"eventFrom"`
	EventTo    string `json:"eventTo"`
	EventWhere string `json:"eventWhere"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Level      string `json:"level"`
	CreatedAt  string `json:"createdAt"`
}

func toBookingItem(b domain.Booking, _ int) BookingItem {
	return BookingItem{
		BookingID:  b.ID,
		EventTitle: b.EventTitle,
		EventFrom:  b.EventFrom,
		EventTo:    b.EventTo,
		EventWhere: b.EventWhere,
		Name:       b.Name,
		Email:      b.Email,
		Level:      b.Level,
		CreatedAt:  utils.ISOTime(b.CreatedAt),
	}
}

func (i BookingItem) cells() []string {
	return []string{
		i.BookingID,
		i.EventTitle,
		i.EventFrom,
		i.EventTo,
		i.EventWhere,
		i.Name,
		i.Email,
		i.Level,
		i.CreatedAt,
	}
}
