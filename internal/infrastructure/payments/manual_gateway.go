package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

// ErrWebhooksNotSupported is the typed failure for providers with no webhook
// channel. Callers treat it as a static capability limitation, not a crash.
var ErrWebhooksNotSupported = errors.New("webhooks not supported for this provider")

// ManualGateway covers offline payment methods (bank transfer, cash at
// office). No network endpoint exists: Initiate returns initiated awaiting
// back-office confirmation, GetStatus reports no remote progress, and refunds
// are operator-recorded.

type ManualGateway struct{}

var _ interfaces.IPaymentGateway = (*ManualGateway)(nil)

func NewManualGateway() *ManualGateway { return &ManualGateway{} }

func (g *ManualGateway) Provider() entities.PaymentProvider { return entities.ProviderManual }

func (g *ManualGateway) Initiate(_ context.Context, req interfaces.InitiateRequest) (interfaces.GatewayResponse, error) {
	amt := req.Amount
	return interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     req.PaymentID,
		ProviderReference: req.PaymentID,
		Status:            entities.StatusInitiated,
		StatusMessage:     "awaiting manual confirmation",
		Amount:            &amt,
	}, nil
}

func (g *ManualGateway) GetStatus(_ context.Context, providerTransactionID string) (interfaces.GatewayResponse, error) {
	// There is no remote party to ask; confirmation happens through the
	// back-office flow, which writes to the ledger directly.
	return interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     providerTransactionID,
		ProviderReference: providerTransactionID,
		Status:            entities.StatusPending,
		StatusMessage:     "awaiting manual confirmation",
	}, nil
}

func (g *ManualGateway) Refund(_ context.Context, providerTransactionID string, amount float64) (interfaces.GatewayResponse, error) {
	amt := amount
	return interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     providerTransactionID,
		ProviderReference: providerTransactionID,
		Status:            entities.StatusRefunded,
		StatusMessage:     fmt.Sprintf("manual refund recorded for %.2f", amount),
		Amount:            &amt,
	}, nil
}

func (g *ManualGateway) ValidateWebhook(_ context.Context, _ []byte, _ string) (bool, error) {
	// Nothing to validate.
	return true, nil
}

func (g *ManualGateway) ProcessWebhook(_ context.Context, _ []byte) (interfaces.GatewayResponse, error) {
	return interfaces.GatewayResponse{}, ErrWebhooksNotSupported
}
