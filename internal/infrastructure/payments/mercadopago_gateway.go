package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// mercadoPagoStatusMap translates provider payment statuses into the domain
// enum. Unknown statuses fall back to pending; the poller will converge.
// refunded means the funds were reversed at the provider, same as a
// chargeback; the domain refunded state is reserved for the operator flow.
var mercadoPagoStatusMap = map[string]entities.TransactionStatus{
	"approved":     entities.StatusCompleted,
	"rejected":     entities.StatusFailed,
	"cancelled":    entities.StatusFailed,
	"charged_back": entities.StatusFailed,
	"refunded":     entities.StatusFailed,
	"in_process":   entities.StatusProcessing,
	"authorized":   entities.StatusProcessing,
	"pending":      entities.StatusPending,
}

// MapMercadoPagoStatus resolves a raw provider status, defaulting safely.
func MapMercadoPagoStatus(status string) entities.TransactionStatus {
	if s, ok := mercadoPagoStatusMap[strings.ToLower(strings.TrimSpace(status))]; ok {
		return s
	}
	return entities.StatusPending
}

// mercadoPagoNotification is the JSON webhook envelope; the payment itself is
// fetched back from the API because the envelope carries only its id.
type mercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
	// mock-mode payloads inline these instead of requiring an API roundtrip
	ExternalReference string `json:"external_reference,omitempty"`
	Status            string `json:"status,omitempty"`
}

// MercadoPagoGateway is the card rail, backed by the official SDK.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) keeps local environments
// free of credentials and network calls.

type MercadoPagoGateway struct {
	paymentClient payment.Client
	refundClient  refund.Client
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	secret := os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mercado pago mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, webhookSecret: secret}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		paymentClient: payment.NewClient(cfg),
		refundClient:  refund.NewClient(cfg),
		webhookSecret: secret,
	}, nil
}

func (g *MercadoPagoGateway) Provider() entities.PaymentProvider {
	return entities.ProviderMercadoPago
}

func (g *MercadoPagoGateway) Initiate(ctx context.Context, req interfaces.InitiateRequest) (interfaces.GatewayResponse, error) {
	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		amt := req.Amount
		return interfaces.GatewayResponse{
			Success:           true,
			TransactionID:     id,
			ProviderReference: req.PaymentID,
			Status:            entities.StatusPending,
			StatusMessage:     "pending",
			Amount:            &amt,
		}, nil
	}
	if g.paymentClient == nil {
		return interfaces.GatewayResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.paymentClient.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		ExternalReference: req.PaymentID,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.GatewayResponse{}, err
	}
	return g.fromPaymentResponse(resp), nil
}

func (g *MercadoPagoGateway) GetStatus(ctx context.Context, providerTransactionID string) (interfaces.GatewayResponse, error) {
	if g.mockMode {
		return interfaces.GatewayResponse{
			Success:           true,
			TransactionID:     providerTransactionID,
			ProviderReference: providerTransactionID,
			Status:            entities.StatusPending,
			StatusMessage:     "pending",
		}, nil
	}
	if g.paymentClient == nil {
		return interfaces.GatewayResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerTransactionID)
	if err != nil {
		return interfaces.GatewayResponse{}, fmt.Errorf("invalid mercado pago payment id %q: %w", providerTransactionID, err)
	}
	resp, err := g.paymentClient.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%d err=%v", id, err)
		return interfaces.GatewayResponse{}, err
	}
	return g.fromPaymentResponse(resp), nil
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, providerTransactionID string, amount float64) (interfaces.GatewayResponse, error) {
	if g.mockMode {
		amt := amount
		return interfaces.GatewayResponse{
			Success:           true,
			TransactionID:     providerTransactionID,
			ProviderReference: providerTransactionID,
			Status:            entities.StatusRefunded,
			StatusMessage:     "refunded",
			Amount:            &amt,
		}, nil
	}
	if g.refundClient == nil {
		return interfaces.GatewayResponse{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerTransactionID)
	if err != nil {
		return interfaces.GatewayResponse{}, fmt.Errorf("invalid mercado pago payment id %q: %w", providerTransactionID, err)
	}
	resp, err := g.refundClient.CreatePartialRefund(ctx, id, amount)
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed payment_id=%d err=%v", id, err)
		return interfaces.GatewayResponse{}, err
	}
	amt := resp.Amount
	return interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     strconv.Itoa(resp.ID),
		ProviderReference: providerTransactionID,
		Status:            entities.StatusRefunded,
		StatusMessage:     resp.Status,
		Amount:            &amt,
	}, nil
}

// ValidateWebhook checks the x-signature header ("ts=...,v1=<hmac>") against
// the configured webhook secret. An unset secret disables the check.
func (g *MercadoPagoGateway) ValidateWebhook(_ context.Context, rawBody []byte, signature string) (bool, error) {
	if g.webhookSecret == "" {
		return true, nil
	}
	var v1 string
	for _, part := range strings.Split(signature, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if found && k == "v1" {
			v1 = v
		}
	}
	if v1 == "" {
		return false, nil
	}
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))), nil
}

func (g *MercadoPagoGateway) ProcessWebhook(ctx context.Context, rawBody []byte) (interfaces.GatewayResponse, error) {
	var n mercadoPagoNotification
	if err := json.Unmarshal(rawBody, &n); err != nil {
		return interfaces.GatewayResponse{}, fmt.Errorf("malformed mercado pago notification: %w", err)
	}
	if n.Data.ID == "" {
		return interfaces.GatewayResponse{}, errors.New("mercado pago notification missing data.id")
	}

	if g.mockMode {
		reference := n.ExternalReference
		if reference == "" {
			reference = n.Data.ID
		}
		return interfaces.GatewayResponse{
			Success:           true,
			TransactionID:     n.Data.ID,
			ProviderReference: reference,
			Status:            MapMercadoPagoStatus(n.Status),
			StatusMessage:     n.Status,
		}, nil
	}

	// The envelope only names the payment; pull the authoritative state back
	// from the API.
	return g.GetStatus(ctx, n.Data.ID)
}

func (g *MercadoPagoGateway) fromPaymentResponse(resp *payment.Response) interfaces.GatewayResponse {
	out := interfaces.GatewayResponse{
		Success:           true,
		TransactionID:     strconv.Itoa(resp.ID),
		ProviderReference: resp.ExternalReference,
		Status:            MapMercadoPagoStatus(resp.Status),
		StatusMessage:     resp.Status,
	}
	if resp.StatusDetail != "" {
		out.StatusMessage = fmt.Sprintf("%s: %s", resp.Status, resp.StatusDetail)
	}
	if resp.TransactionAmount > 0 {
		amt := resp.TransactionAmount
		out.Amount = &amt
	}
	if out.ProviderReference == "" {
		out.ProviderReference = out.TransactionID
	}
	return out
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
