package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", "info", &buf)

	log.Info("booking listed", slog.Int("count", 3), Err(errors.New("boom")))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booking listed", line["msg"])
	assert.Equal(t, "eventbooking", line["service"])
	assert.EqualValues(t, 3, line["count"])
	assert.Equal(t, "boom", line["err"])
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", "warn", &buf)

	log.Info("hidden")
	assert.Zero(t, buf.Len())
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := NewContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}
