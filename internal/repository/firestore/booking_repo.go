package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"

	"eventbooking/internal/domain"
)

type BookingRepository struct {
	client *fs.Client
}

func NewBookingRepository(client *fs.Client) *BookingRepository {
	return &BookingRepository{client: client}
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	docs, err := r.client.Collection(collectionBookings).
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(docs))
	for _, d := range docs {
		out = append(out, bookingFromData(d.Ref.ID, d.Data()))
	}
	return out, nil
}

func bookingFromData(id string, x map[string]any) domain.Booking {
	return domain.Booking{
		ID:         id,
		UserID:     stringField(x, "userId"),
		EventTitle: stringField(x, "eventTitle"),
		EventFrom:  stringField(x, "eventFrom"),
		EventTo:    stringField(x, "eventTo"),
		EventWhere: stringField(x, "eventWhere"),
		Name:       stringField(x, "name"),
		Email:      stringField(x, "email"),
		Level:      stringField(x, "level"),
		CreatedAt:  timeField(x, "createdAt"),
	}
}
