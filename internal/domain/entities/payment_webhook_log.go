package entities

import "time"

// WebhookOutcome flags what a webhook delivery did to the ledger.

type WebhookOutcome string

const (
	WebhookOutcomeApplied          WebhookOutcome = "applied"
	WebhookOutcomeDuplicateIgnored WebhookOutcome = "duplicate_ignored"
	WebhookOutcomeFailed           WebhookOutcome = "failed"
)

// PaymentWebhookLog is the append-only audit trail of inbound webhook calls.
//
// Storage model (DynamoDB):
//   - PK: log_id
//   - GSI1 (dedup-index): provider + dedup_key
//
// Every inbound call produces exactly one row, byte-identical replays included.
// DedupKey (hash of provider + normalized body) is what makes the ingestion
// processor idempotent: a non-failed row already present for the key means the
// payload's side effects were applied by an earlier delivery. failed rows mark
// deliveries whose ledger update did not commit; they do not count for dedup,
// so the provider's retry gets to re-apply.
//
// Note carries a diagnostic for operator triage (signature failure, parse
// failure, no matching transaction); it is empty on the clean path.

type PaymentWebhookLog struct {
	LogID      string            `json:"log_id"`
	Provider   PaymentProvider   `json:"provider"`
	DedupKey   string            `json:"dedup_key"`
	Payload    string            `json:"payload"`
	Headers    map[string]string `json:"headers,omitempty"`
	ReceivedAt time.Time         `json:"received_at"`
	Outcome    WebhookOutcome    `json:"outcome"`
	Note       string            `json:"note,omitempty"`
}
