package interfaces

import (
	"context"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts DynamoDB persistence for the
// payment ledger.
//
// Both the webhook and the polling path key lookups on the
// (provider, transaction_reference) pair. ListNonTerminalByProvider feeds the
// reconciliation poller: pending/processing rows only, oldest created first,
// bounded by limit. Save is a full-row overwrite; each caller computes its
// mutation completely before committing.
type IPaymentTransactionRepository interface {
	Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, paymentID string) (entities.PaymentTransaction, error)
	GetByProviderAndReference(ctx context.Context, provider entities.PaymentProvider, reference string) (entities.PaymentTransaction, error)
	Save(ctx context.Context, t entities.PaymentTransaction) error
	ListNonTerminalByProvider(ctx context.Context, provider entities.PaymentProvider, limit int) ([]entities.PaymentTransaction, error)
}
