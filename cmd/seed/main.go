package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	"eventbooking/internal/config"
	"eventbooking/internal/database"
	"eventbooking/internal/domain"
	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logger.Err(err))
		os.Exit(1)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.Store.DatabaseURL)
	if err != nil {
		log.Error("db connection failed", logger.Err(err))
		os.Exit(1)
	}

	log.Info("running migrations")
	if err := database.Migrate(db); err != nil {
		log.Error("migrate failed", logger.Err(err))
		os.Exit(1)
	}

	res, err := seed(context.Background(), db)
	if err != nil {
		log.Error("seed failed", logger.Err(err))
		os.Exit(1)
	}
	log.Info("seed completed",
		slog.Int("inserted", res.inserted),
		slog.Int("skipped", res.skipped),
	)
}

type result struct {
	inserted int
	skipped  int
}

// seed inserts the sample rows one by one. Rows that already exist are
// skipped so the command can be run repeatedly.
func seed(ctx context.Context, db *gorm.DB) (result, error) {
	var res result

	insert := func(row any) error {
		err := db.WithContext(ctx).Create(row).Error
		switch {
		case err == nil:
			res.inserted++
		case repository.IsUniqueViolation(err):
			res.skipped++
		default:
			return fmt.Errorf("insert %T: %w", row, err)
		}
		return nil
	}

	for i := range sampleUsers {
		if err := insert(&sampleUsers[i]); err != nil {
			return res, err
		}
	}
	for _, b := range sampleBookings() {
		if err := insert(&b); err != nil {
			return res, err
		}
	}
	for i := range sampleRatings {
		if err := insert(&sampleRatings[i]); err != nil {
			return res, err
		}
	}
	return res, nil
}

var sampleUsers = []domain.User{
	{UID: "admin-demo", Role: domain.RoleAdmin},
	{UID: "alice-demo", Role: domain.RoleMember},
	{UID: "bob-demo"},
}

var sampleRatings = []domain.Rating{
	{EventID: "demo", UserID: "alice-demo", Value: 5},
	{EventID: "yoga-basics", UserID: "alice-demo", Value: 4},
	{EventID: "demo", UserID: "bob-demo", Value: 3},
}

func sampleBookings() []domain.Booking {
	at := func(day, hour int) *time.Time {
		t := time.Date(2025, 10, day, hour, 0, 0, 0, time.UTC)
		return &t
	}

	return []domain.Booking{
		{
			ID: "T123", UserID: "alice-demo",
			EventTitle: "Demo", EventFrom: "2025-10-04 10:00", EventTo: "2025-10-04 11:00", EventWhere: "Online",
			Name: "Alice", Email: "alice@example.com", Level: "Beginner",
			CreatedAt: at(1, 9),
		},
		{
			ID: "T124", UserID: "alice-demo",
			EventTitle: "Yoga basics", EventFrom: "2025-10-11 08:00", EventTo: "2025-10-11 09:00", EventWhere: "Studio A",
			Name: "Alice", Email: "alice@example.com", Level: "Intermediate",
			CreatedAt: at(2, 14),
		},
		{
			ID: "T125", UserID: "bob-demo",
			EventTitle: "Demo", EventFrom: "2025-10-04 10:00", EventTo: "2025-10-04 11:00", EventWhere: "Online",
			Name: "Bob", Email: "bob@example.com", Level: "Advanced",
			CreatedAt: at(3, 18),
		},
	}
}
