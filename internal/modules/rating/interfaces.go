package rating

import (
	"context"

	"eventbooking/internal/domain"
)

type RatingRepository interface {
	ScanAll(ctx context.Context) ([]domain.Rating, error)
}
