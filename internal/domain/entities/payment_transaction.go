package entities

import "time"

// PaymentProvider identifies an external payment rail.
//
// Each provider has exactly one gateway implementation registered at startup.

type PaymentProvider string

const (
	ProviderSLSwitch    PaymentProvider = "slswitch"
	ProviderManual      PaymentProvider = "manual"
	ProviderMercadoPago PaymentProvider = "mercadopago"
)

// ParseProvider maps the provider segment of a webhook URL (or any external
// provider name) onto the enum. Unknown names are a configuration error for
// the caller, not a transient failure.
func ParseProvider(name string) (PaymentProvider, bool) {
	switch PaymentProvider(name) {
	case ProviderSLSwitch, ProviderManual, ProviderMercadoPago:
		return PaymentProvider(name), true
	}
	return "", false
}

// TransactionStatus is the lifecycle state of a ledger row.
//
// Progression: initiated -> pending/processing -> completed | failed.
// refunded is reachable only from completed via an operator-triggered refund,
// never from webhook or polling status mapping.

type TransactionStatus string

const (
	StatusInitiated  TransactionStatus = "initiated"
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusRefunded   TransactionStatus = "refunded"
)

// IsTerminal reports whether the reconciliation poller should stop re-scanning
// a transaction in this status.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// PaymentTransaction is the ledger record for one payment attempt.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//   - GSI1 (provider-reference-index): provider + transaction_reference
//
// Invariants:
//   - (Provider, TransactionReference) identifies at most one logical transaction.
//   - CompletedDate is set if and only if Status == completed.
//   - Rows are never deleted by this subsystem; archival is an external concern.

type PaymentTransaction struct {
	PaymentID             string            `json:"payment_id"`
	TransactionReference  string            `json:"transaction_reference"`
	Provider              PaymentProvider   `json:"provider"`
	ProviderTransactionID string            `json:"provider_transaction_id,omitempty"`
	Amount                float64           `json:"amount"`
	Currency              string            `json:"currency"`
	Status                TransactionStatus `json:"status"`
	ProviderResponse      string            `json:"provider_response,omitempty"`
	CreatedDate           time.Time         `json:"created_date"`
	CompletedDate         *time.Time        `json:"completed_date,omitempty"`
}

// GatewayTransactionID is the identifier to hand back to the provider on
// status and refund calls. Providers like Mercado Pago assign their own
// numeric payment id at initiate; rails that echo our reference leave
// ProviderTransactionID empty and the reference is used.
func (t *PaymentTransaction) GatewayTransactionID() string {
	if t.ProviderTransactionID != "" {
		return t.ProviderTransactionID
	}
	return t.TransactionReference
}

// ApplyStatus overwrites the recorded status with the provider's authoritative
// view and stamps/clears CompletedDate to keep the completion invariant.
func (t *PaymentTransaction) ApplyStatus(status TransactionStatus, message string, now time.Time) {
	t.Status = status
	if message != "" {
		t.ProviderResponse = message
	}
	if status == StatusCompleted {
		if t.CompletedDate == nil {
			completed := now.UTC()
			t.CompletedDate = &completed
		}
	} else {
		t.CompletedDate = nil
	}
}
