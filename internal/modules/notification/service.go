package notification

import (
	"context"
	"fmt"
	"time"

	"eventbooking/internal/pkg/mailer"
)

const confirmationSubject = "Booking Confirmation"

type Service struct {
	mailer  Mailer
	secrets SecretsLoader
	now     func() time.Time
}

func NewService(m Mailer, secrets SecretsLoader) *Service {
	return &Service{mailer: m, secrets: secrets, now: time.Now}
}

// SendBookingEmail sends one confirmation mail with the booking attached as
// CSV and returns the provider status. The request must already be validated.
func (s *Service) SendBookingEmail(ctx context.Context, req SendBookingEmailRequest) (int, error) {
	if req.To == "" || req.Booking == nil {
		return 0, ErrBadRequest
	}

	secrets, err := s.secrets()
	if err != nil {
		return 0, fmt.Errorf("load mail secrets: %w", err)
	}
	if secrets.APIKey == "" {
		return 0, ErrKeyNotSet
	}
	if secrets.From == "" {
		return 0, ErrFromNotSet
	}

	name := formatValue(req.Booking["name"])
	msg := mailer.Message{
		To:          req.To,
		From:        secrets.From,
		Subject:     confirmationSubject,
		Text:        fmt.Sprintf("Hi %s, your booking is confirmed.", name),
		HTML:        fmt.Sprintf("<p>Hi %s, your booking is confirmed.</p>", name),
		Attachments: []mailer.Attachment{bookingAttachment(req.Booking, s.now())},
	}

	status, err := s.mailer.Send(ctx, secrets.APIKey, msg)
	if err != nil {
		return status, fmt.Errorf("mailer.Send: %w", err)
	}
	return status, nil
}
