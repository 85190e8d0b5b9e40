package booking

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// ListMyBookings returns the user's bookings, newest first.
func (s *Service) ListMyBookings(ctx context.Context, userID string) ([]BookingItem, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bookings.ListByUser: %w", err)
	}

	return lo.Map(rows, toBookingItem), nil
}

// ExportMyBookingsCSV renders the same list as ListMyBookings as CSV.
func (s *Service) ExportMyBookingsCSV(ctx context.Context, userID string) (string, error) {
	items, err := s.ListMyBookings(ctx, userID)
	if err != nil {
		return "", err
	}
	return renderCSV(items), nil
}
