package repository

import (
	"context"
	"time"

	"eventbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingModel keeps every column nullable: rows imported from the document
// store do not always carry every field.
type bookingModel struct {
	ID         string     `gorm:"column:id;primaryKey"`
	UserID     string     `gorm:"column:user_id"`
	EventTitle *string    `gorm:"column:event_title"`
	EventFrom  *string    `gorm:"column:event_from"`
	EventTo    *string    `gorm:"column:event_to"`
	EventWhere *string    `gorm:"column:event_where"`
	Name       *string    `gorm:"column:name"`
	Email      *string    `gorm:"column:email"`
	Level      *string    `gorm:"column:level"`
	CreatedAt  *time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		EventTitle: deref(m.EventTitle),
		EventFrom:  deref(m.EventFrom),
		EventTo:    deref(m.EventTo),
		EventWhere: deref(m.EventWhere),
		Name:       deref(m.Name),
		Email:      deref(m.Email),
		Level:      deref(m.Level),
		CreatedAt:  m.CreatedAt,
	}
}

// ListByUser returns the user's bookings, newest first. Rows without
// created_at are left out, the same way an ordered document query skips
// documents missing the order field.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("created_at IS NOT NULL").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
