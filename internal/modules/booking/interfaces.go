package booking

import (
	"context"

	"eventbooking/internal/domain"
)

// BookingRepository is implemented by the Firestore and SQL stores.
type BookingRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}
