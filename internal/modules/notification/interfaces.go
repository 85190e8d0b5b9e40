package notification

import (
	"context"

	"eventbooking/internal/config"
	"eventbooking/internal/pkg/mailer"
)

type Mailer interface {
	Send(ctx context.Context, apiKey string, msg mailer.Message) (int, error)
}

// SecretsLoader resolves the mail credentials for a single send.
type SecretsLoader func() (config.MailSecrets, error)
