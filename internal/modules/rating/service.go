package rating

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"eventbooking/internal/domain"
)

type Service struct {
	ratings RatingRepository
}

func NewService(ratings RatingRepository) *Service {
	return &Service{ratings: ratings}
}

// ListMyRatings scans every event's ratings and keeps the ones whose document
// id is userID.
func (s *Service) ListMyRatings(ctx context.Context, userID string) ([]RatingItem, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	all, err := s.ratings.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ratings.ScanAll: %w", err)
	}

	mine := lo.Filter(all, func(r domain.Rating, _ int) bool {
		return r.UserID == userID
	})

	return lo.Map(mine, func(r domain.Rating, _ int) RatingItem {
		return RatingItem{EventID: r.EventID, Value: r.Value, UpdatedAt: ""}
	}), nil
}
