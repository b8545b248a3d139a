package response

import (
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID             string     `json:"payment_id"`
	TransactionReference  string     `json:"transaction_reference"`
	Provider              string     `json:"provider"`
	ProviderTransactionID string     `json:"provider_transaction_id,omitempty"`
	Amount                float64    `json:"amount"`
	Currency              string     `json:"currency"`
	Status                string     `json:"status"`
	ProviderResponse      string     `json:"provider_response,omitempty"`
	CreatedDate           time.Time  `json:"created_date"`
	CompletedDate         *time.Time `json:"completed_date,omitempty"`
}

func FromPaymentTransaction(t entities.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		PaymentID:             t.PaymentID,
		TransactionReference:  t.TransactionReference,
		Provider:              string(t.Provider),
		ProviderTransactionID: t.ProviderTransactionID,
		Amount:                t.Amount,
		Currency:              t.Currency,
		Status:                string(t.Status),
		ProviderResponse:      t.ProviderResponse,
		CreatedDate:           t.CreatedDate,
		CompletedDate:         t.CompletedDate,
	}
}

// WebhookAckResponse is what providers see after delivering a callback.
type WebhookAckResponse struct {
	Status string `json:"status"`
}
