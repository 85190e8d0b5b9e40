package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		To:      "you@example.com",
		From:    "events@example.com",
		Subject: "Booking Confirmation",
		Text:    "Hi Alice, your booking is confirmed.",
		HTML:    "<p>Hi Alice, your booking is confirmed.</p>",
		Attachments: []Attachment{{
			Content:     "YQ==",
			Filename:    "booking_T123.csv",
			Type:        "text/csv",
			Disposition: "attachment",
		}},
	}
}

func TestSendGrid_Send_Accepted(t *testing.T) {
	var got map[string]any
	var auth string
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	status, err := NewSendGrid(srv.URL).Send(context.Background(), "SG.test", testMessage())
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Bearer SG.test", auth)
	assert.Equal(t, "Booking Confirmation", got["subject"])

	from := got["from"].(map[string]any)
	assert.Equal(t, "events@example.com", from["email"])

	content := got["content"].([]any)
	require.Len(t, content, 2)
	assert.Equal(t, "text/plain", content[0].(map[string]any)["type"])

	atts := got["attachments"].([]any)
	require.Len(t, atts, 1)
	att := atts[0].(map[string]any)
	assert.Equal(t, "booking_T123.csv", att["filename"])
	assert.Equal(t, "attachment", att["disposition"])
}

func TestSendGrid_Send_ProviderErrorNoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
	}))
	defer srv.Close()

	status, err := NewSendGrid(srv.URL).Send(context.Background(), "SG.bad", testMessage())
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 1, calls)

	body := perr.Body.(map[string]any)
	assert.Contains(t, body, "errors")
}

func TestDecodeBody_NotJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"message": "upstream down"}, decodeBody("upstream down"))
}
