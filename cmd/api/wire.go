package main

import (
	"context"
	"fmt"

	"eventbooking/internal/config"
	"eventbooking/internal/database"
	"eventbooking/internal/domain"
	"eventbooking/internal/middleware"
	"eventbooking/internal/modules/booking"
	"eventbooking/internal/modules/rating"
	"eventbooking/internal/pkg/firebaseapp"
	"eventbooking/internal/pkg/jwt"
	"eventbooking/internal/repository"
	fsrepo "eventbooking/internal/repository/firestore"
)

type userStore interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	Ping(ctx context.Context) error
}

type store struct {
	bookings booking.BookingRepository
	ratings  rating.RatingRepository
	users    userStore
	close    func() error
}

func firebaseConfig(cfg *config.Config) firebaseapp.Config {
	return firebaseapp.Config{
		ProjectID:       cfg.Firebase.ProjectID,
		CredentialsFile: cfg.Firebase.CredentialsFile,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreSQL:
		db, err := database.Connect(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("database.Connect: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("database.Migrate: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &store{
			bookings: repository.NewBookingRepository(db),
			ratings:  repository.NewRatingRepository(db),
			users:    repository.NewUserRepository(db),
			close:    sqlDB.Close,
		}, nil

	case config.StoreFirestore:
		client, err := firebaseapp.Firestore(ctx, firebaseConfig(cfg))
		if err != nil {
			return nil, err
		}
		return &store{
			bookings: fsrepo.NewBookingRepository(client),
			ratings:  fsrepo.NewRatingRepository(client),
			users:    fsrepo.NewUserRepository(client),
			close:    firebaseapp.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newVerifier(ctx context.Context, cfg *config.Config) (middleware.TokenVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthJWT:
		return jwt.New(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL), nil
	case config.AuthFirebase:
		client, err := firebaseapp.Auth(ctx, firebaseConfig(cfg))
		if err != nil {
			return nil, err
		}
		return firebaseapp.NewTokenVerifier(client), nil
	}
	return nil, fmt.Errorf("unknown auth provider %q", cfg.Auth.Provider)
}
