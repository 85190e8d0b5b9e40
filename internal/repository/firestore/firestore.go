// Package firestore reads bookings, ratings and users from Cloud Firestore.
package firestore

import (
	"context"
	"strconv"
	"time"

	fs "cloud.google.com/go/firestore"
)

const (
	collectionBookings = "bookings"
	collectionRatings  = "ratings"
	collectionUsers    = "users"
)

// Ping issues the cheapest possible read to prove the client can reach the
// database.
func Ping(ctx context.Context, client *fs.Client) error {
	_, err := client.Collection(collectionUsers).Limit(1).Documents(ctx).GetAll()
	return err
}

// stringField mirrors `x.field || ""`: falsy values become "", other scalars
// are rendered as text.
func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case int64:
		if v != 0 {
			return strconv.FormatInt(v, 10)
		}
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// numberField mirrors `Number(x.field || 0)` for the types Firestore returns.
// Values that are not numbers, including unparsable strings, become 0.
func numberField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// timeField returns nil unless the field holds a timestamp.
func timeField(data map[string]any, key string) *time.Time {
	if t, ok := data[key].(time.Time); ok {
		return &t
	}
	return nil
}
