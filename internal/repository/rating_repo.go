package repository

import (
	"context"

	"eventbooking/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

type ratingModel struct {
	EventID string   `gorm:"column:event_id;primaryKey"`
	UserID  string   `gorm:"column:user_id;primaryKey"`
	Value   *float64 `gorm:"column:value"`
}

func (ratingModel) TableName() string { return "ratings" }

// ScanAll reads every rating of every event, ordered by path like a
// collection group scan.
func (r *RatingRepository) ScanAll(ctx context.Context) ([]domain.Rating, error) {
	var rows []ratingModel
	if err := r.db.WithContext(ctx).Order("event_id, user_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Rating, 0, len(rows))
	for _, m := range rows {
		rt := domain.Rating{EventID: m.EventID, UserID: m.UserID}
		if m.Value != nil {
			rt.Value = *m.Value
		}
		out = append(out, rt)
	}
	return out, nil
}
