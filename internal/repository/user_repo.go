package repository

import (
	"context"
	"errors"

	"eventbooking/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	UID  string  `gorm:"column:uid;primaryKey"`
	Role *string `gorm:"column:role"`
}

func (userModel) TableName() string { return "users" }

// GetByUID returns nil, nil when the user has no record.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.User{UID: m.UID, Role: domain.UserRole(deref(m.Role))}, nil
}

// Ping checks that the database answers.
func (r *UserRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
