package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"eventbooking/internal/domain"
)

type UserRepository struct {
	client *fs.Client
}

func NewUserRepository(client *fs.Client) *UserRepository {
	return &UserRepository{client: client}
}

// GetByUID returns nil, nil when users/{uid} does not exist.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	snap, err := r.client.Collection(collectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	if !snap.Exists() {
		return nil, nil
	}

	role, _ := snap.Data()["role"].(string)
	return &domain.User{UID: uid, Role: domain.UserRole(role)}, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return Ping(ctx, r.client)
}
