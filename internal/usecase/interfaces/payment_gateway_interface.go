package interfaces

import (
	"context"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

// InitiateRequest carries the fields a gateway needs to start a transaction.
type InitiateRequest struct {
	PaymentID   string
	Amount      float64
	Currency    string
	Description string
	PayerPhone  string
}

// GatewayResponse is the uniform, transient result of any gateway operation.
//
// Status is already mapped into the domain enum; StatusMessage keeps the
// provider's own wording for the ledger's diagnostic column.
type GatewayResponse struct {
	Success           bool
	TransactionID     string
	ProviderReference string
	Status            entities.TransactionStatus
	StatusMessage     string
	Amount            *float64
}

// IPaymentGateway abstracts one external payment provider.
//
// Expected conditions (declined payment, provider without webhook support) are
// reported through the returned error or a failed GatewayResponse; none of the
// operations panic for them. GetStatus is a pure query and safe to call
// repeatedly.
type IPaymentGateway interface {
	Provider() entities.PaymentProvider
	Initiate(ctx context.Context, req InitiateRequest) (GatewayResponse, error)
	GetStatus(ctx context.Context, providerTransactionID string) (GatewayResponse, error)
	Refund(ctx context.Context, providerTransactionID string, amount float64) (GatewayResponse, error)
	ValidateWebhook(ctx context.Context, rawBody []byte, signature string) (bool, error)
	ProcessWebhook(ctx context.Context, rawBody []byte) (GatewayResponse, error)
}
