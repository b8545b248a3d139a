package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrPaymentNotRefundable = errors.New("payment not refundable")
	ErrGatewayDeclined      = errors.New("payment declined by gateway")
)

// InitiatePaymentInput is the application-level request to start a payment.
type InitiatePaymentInput struct {
	Provider    entities.PaymentProvider
	Amount      float64
	Currency    string
	Description string
	PayerPhone  string
}

// IPaymentUseCase covers the operator-facing payment lifecycle: initiate a
// transaction, read it back, trigger a refund. Status convergence afterwards
// is owned by the webhook processor and the reconciliation poller.

type IPaymentUseCase interface {
	InitiatePayment(ctx context.Context, in InitiatePaymentInput) (entities.PaymentTransaction, error)
	GetPayment(ctx context.Context, paymentID string) (entities.PaymentTransaction, error)
	RefundPayment(ctx context.Context, paymentID string) (entities.PaymentTransaction, error)
}

type PaymentUseCase struct {
	txRepo   interfaces.IPaymentTransactionRepository
	registry interfaces.IGatewayRegistry
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(txRepo interfaces.IPaymentTransactionRepository, registry interfaces.IGatewayRegistry) *PaymentUseCase {
	return &PaymentUseCase{txRepo: txRepo, registry: registry}
}

func (u *PaymentUseCase) InitiatePayment(ctx context.Context, in InitiatePaymentInput) (entities.PaymentTransaction, error) {
	log.Printf("[payment][usecase] initiate start provider=%s amount=%.2f currency=%s", in.Provider, in.Amount, in.Currency)
	if in.Amount <= 0 {
		return entities.PaymentTransaction{}, ErrInvalidPaymentAmount
	}
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(in.Currency) != 3 {
		return entities.PaymentTransaction{}, ErrInvalidCurrency
	}

	gateway, err := u.registry.Get(in.Provider)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	paymentID := uuid.NewString()
	resp, err := gateway.Initiate(ctx, interfaces.InitiateRequest{
		PaymentID:   paymentID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		PayerPhone:  in.PayerPhone,
	})
	if err != nil {
		log.Printf("[payment][usecase] initiate failed provider=%s err=%v", in.Provider, err)
		return entities.PaymentTransaction{}, err
	}
	if !resp.Success {
		log.Printf("[payment][usecase] initiate declined provider=%s message=%q", in.Provider, resp.StatusMessage)
		return entities.PaymentTransaction{}, ErrGatewayDeclined
	}

	reference := resp.ProviderReference
	if reference == "" {
		reference = paymentID
	}
	tx := entities.PaymentTransaction{
		PaymentID:             paymentID,
		TransactionReference:  reference,
		Provider:              in.Provider,
		ProviderTransactionID: resp.TransactionID,
		Amount:                in.Amount,
		Currency:              in.Currency,
		Status:                resp.Status,
		ProviderResponse:      resp.StatusMessage,
		CreatedDate:           time.Now().UTC(),
	}
	created, err := u.txRepo.Create(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[payment][usecase] initiate success payment_id=%s reference=%s status=%s", created.PaymentID, created.TransactionReference, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, paymentID string) (entities.PaymentTransaction, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentTransaction{}, ErrPaymentNotFound
	}
	tx, err := u.txRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.PaymentID == "" {
		return entities.PaymentTransaction{}, ErrPaymentNotFound
	}
	return tx, nil
}

// RefundPayment triggers the operator-only completed -> refunded transition.
func (u *PaymentUseCase) RefundPayment(ctx context.Context, paymentID string) (entities.PaymentTransaction, error) {
	tx, err := u.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.Status != entities.StatusCompleted {
		log.Printf("[payment][usecase] refund rejected payment_id=%s status=%s", tx.PaymentID, tx.Status)
		return entities.PaymentTransaction{}, ErrPaymentNotRefundable
	}

	gateway, err := u.registry.Get(tx.Provider)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	resp, err := gateway.Refund(ctx, tx.GatewayTransactionID(), tx.Amount)
	if err != nil {
		log.Printf("[payment][usecase] refund failed payment_id=%s err=%v", tx.PaymentID, err)
		return entities.PaymentTransaction{}, err
	}
	if !resp.Success {
		return entities.PaymentTransaction{}, ErrGatewayDeclined
	}

	tx.ApplyStatus(entities.StatusRefunded, resp.StatusMessage, time.Now())
	if err := u.txRepo.Save(ctx, tx); err != nil {
		log.Printf("[payment][usecase] ledger save failed payment_id=%s err=%v", tx.PaymentID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[payment][usecase] refund success payment_id=%s reference=%s", tx.PaymentID, tx.TransactionReference)
	return tx, nil
}
