package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

func TestStringField(t *testing.T) {
	data := map[string]any{
		"title": "Demo",
		"empty": "",
		"zero":  int64(0),
		"seats": int64(12),
		"price": 9.5,
		"flag":  false,
		"on":    true,
		"null":  nil,
	}

	assert.Equal(t, "Demo", stringField(data, "title"))
	assert.Equal(t, "", stringField(data, "empty"))
	assert.Equal(t, "", stringField(data, "zero"))
	assert.Equal(t, "12", stringField(data, "seats"))
	assert.Equal(t, "9.5", stringField(data, "price"))
	assert.Equal(t, "", stringField(data, "flag"))
	assert.Equal(t, "true", stringField(data, "on"))
	assert.Equal(t, "", stringField(data, "null"))
	assert.Equal(t, "", stringField(data, "missing"))
}

func TestNumberField(t *testing.T) {
	data := map[string]any{
		"int":    int64(4),
		"float":  4.5,
		"text":   "3",
		"junk":   "abc",
		"absent": nil,
	}

	assert.Equal(t, 4.0, numberField(data, "int"))
	assert.Equal(t, 4.5, numberField(data, "float"))
	assert.Equal(t, 3.0, numberField(data, "text"))
	assert.Equal(t, 0.0, numberField(data, "junk"))
	assert.Equal(t, 0.0, numberField(data, "absent"))
}

func TestBookingFromData(t *testing.T) {
	created := time.Date(2025, 10, 4, 10, 0, 0, 0, time.UTC)

	b := bookingFromData("T123", map[string]any{
		"userId":     "u1",
		"eventTitle": "Demo",
		"createdAt":  created,
	})
	assert.Equal(t, "T123", b.ID)
	assert.Equal(t, "Demo", b.EventTitle)
	assert.Equal(t, "", b.EventWhere)
	require.NotNil(t, b.CreatedAt)
	assert.True(t, created.Equal(*b.CreatedAt))

	noTime := bookingFromData("T124", map[string]any{"createdAt": "yesterday"})
	assert.Nil(t, noTime.CreatedAt)
}

func emulatorClient(t *testing.T) *fs.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := fs.NewClient(context.Background(), "demo-eventbooking")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestEmulator_RatingsAndUsers(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()

	_, err := client.Collection("events").Doc("ev-1").Collection("ratings").Doc("rater-1").Set(ctx, map[string]any{"value": 5})
	require.NoError(t, err)
	_, err = client.Collection("users").Doc("boss").Set(ctx, map[string]any{"role": "admin"})
	require.NoError(t, err)

	ratings, err := NewRatingRepository(client).ScanAll(ctx)
	require.NoError(t, err)

	var found *domain.Rating
	for i := range ratings {
		if ratings[i].UserID == "rater-1" && ratings[i].EventID == "ev-1" {
			found = &ratings[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 5.0, found.Value)

	users := NewUserRepository(client)
	boss, err := users.GetByUID(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, boss.EffectiveRole())

	ghost, err := users.GetByUID(ctx, "ghost-user")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestEmulator_BookingsNewestFirst(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()

	base := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"emu-b1", "emu-b2", "emu-b3"} {
		_, err := client.Collection("bookings").Doc(id).Set(ctx, map[string]any{
			"userId":     "emu-user",
			"eventTitle": id,
			"createdAt":  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	items, err := NewBookingRepository(client).ListByUser(ctx, "emu-user")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "emu-b3", items[0].ID)
	assert.Equal(t, "emu-b1", items[2].ID)
}
