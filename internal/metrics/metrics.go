package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Four monotonic counters for the payment subsystem, labeled by provider.
// They are side-effect only: nothing in the subsystem reads them back.
var (
	WebhooksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_webhooks_processed_total",
		Help: "Webhook deliveries that were parsed and applied (or logged as unmatched)",
	}, []string{"provider"})

	WebhooksDuplicate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_webhooks_duplicate_total",
		Help: "Webhook deliveries ignored as byte-identical replays",
	}, []string{"provider"})

	PollingSuccess = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_polling_success_total",
		Help: "Transactions reconciled against the provider in a poll cycle",
	}, []string{"provider"})

	PollingFailure = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_polling_failure_total",
		Help: "Transactions whose status query exhausted all attempts in a poll cycle",
	}, []string{"provider"})
)
