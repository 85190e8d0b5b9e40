package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbooking/internal/database"
	"eventbooking/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func ts(day int) *time.Time {
	v := time.Date(2025, 10, day, 9, 30, 0, 0, time.UTC)
	return &v
}

func TestBookingRepository_ListByUser_NewestFirst(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]domain.Booking{
		{ID: "b1", UserID: "u1", EventTitle: "Yoga", CreatedAt: ts(1)},
		{ID: "b2", UserID: "u1", EventTitle: "Chess", CreatedAt: ts(3)},
		{ID: "b3", UserID: "u2", EventTitle: "Chess", CreatedAt: ts(2)},
		{ID: "b4", UserID: "u1", EventTitle: "Swim", CreatedAt: ts(2)},
	}).Error)

	items, err := NewBookingRepository(db).ListByUser(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "b2", items[0].ID)
	assert.Equal(t, "b4", items[1].ID)
	assert.Equal(t, "b1", items[2].ID)
	assert.Equal(t, "Chess", items[0].EventTitle)
	assert.True(t, items[0].CreatedAt.Equal(*ts(3)))
}

func TestBookingRepository_ListByUser_NullColumns(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec(
		"INSERT INTO bookings (id, user_id, created_at) VALUES (?, ?, ?)", "b1", "u1", *ts(5),
	).Error)

	items, err := NewBookingRepository(db).ListByUser(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].EventTitle)
	assert.Equal(t, "", items[0].Level)
}

func TestBookingRepository_ListByUser_Empty(t *testing.T) {
	db := setupDB(t)

	items, err := NewBookingRepository(db).ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRatingRepository_ScanAll(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]domain.Rating{
		{EventID: "e1", UserID: "u1", Value: 4},
		{EventID: "e2", UserID: "u1", Value: 5},
		{EventID: "e2", UserID: "u2", Value: 1},
	}).Error)

	items, err := NewRatingRepository(db).ScanAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestUserRepository_GetByUID(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&domain.User{UID: "admin-1", Role: domain.RoleAdmin}).Error)
	repo := NewUserRepository(db)

	u, err := repo.GetByUID(context.Background(), "admin-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleAdmin, u.EffectiveRole())

	missing, err := repo.GetByUID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, domain.RoleMember, missing.EffectiveRole())

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestIsUniqueViolation(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&domain.User{UID: "u1"}).Error)
	err := db.Create(&domain.User{UID: "u1"}).Error

	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
