package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSent          = "sent"
	outcomeBadRequest    = "bad_request"
	outcomeConfigMissing = "config_missing"
	outcomeProviderError = "provider_error"
)

var mailSendTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mail_send_total",
		Help: "Booking confirmation email attempts by outcome.",
	},
	[]string{"outcome"},
)
