// Package mailer sends transactional email through the SendGrid v3 API.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	DefaultHost  = "https://api.sendgrid.com"
	sendEndpoint = "/v3/mail/send"
)

type Attachment struct {
	Content     string // base64
	Filename    string
	Type        string
	Disposition string
}

type Message struct {
	To          string
	From        string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// ProviderError is returned when SendGrid answers with a non-2xx status.
// Body holds the decoded JSON error document when there is one.
type ProviderError struct {
	StatusCode int
	Body       any
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("sendgrid: status %d", e.StatusCode)
}

type SendGrid struct {
	host string
}

func NewSendGrid(host string) *SendGrid {
	if host == "" {
		host = DefaultHost
	}
	return &SendGrid{host: host}
}

// Send makes exactly one API call and returns the provider status code.
func (s *SendGrid) Send(ctx context.Context, apiKey string, msg Message) (int, error) {
	req := sendgrid.GetRequest(apiKey, sendEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = mail.GetRequestBody(buildV3Mail(msg))

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("sendgrid.MakeRequest: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, &ProviderError{StatusCode: resp.StatusCode, Body: decodeBody(resp.Body)}
	}
	return resp.StatusCode, nil
}

func buildV3Mail(msg Message) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	m.AddContent(
		mail.NewContent("text/plain", msg.Text),
		mail.NewContent("text/html", msg.HTML),
	)

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetContent(a.Content)
		att.SetFilename(a.Filename)
		att.SetType(a.Type)
		att.SetDisposition(a.Disposition)
		m.AddAttachment(att)
	}
	return m
}

func decodeBody(body string) any {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err == nil {
		return v
	}
	return map[string]any{"message": body}
}
