package navigation

import (
	"context"

	"eventbooking/internal/domain"
)

// UserRepository returns nil, nil when the user has no document.
type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
}
