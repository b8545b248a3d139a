package payments

import (
	"context"
	"testing"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

func TestMapMercadoPagoStatus(t *testing.T) {
	cases := []struct {
		status string
		want   entities.TransactionStatus
	}{
		{"approved", entities.StatusCompleted},
		{"APPROVED", entities.StatusCompleted},
		{"rejected", entities.StatusFailed},
		{"cancelled", entities.StatusFailed},
		{"charged_back", entities.StatusFailed},
		// refunded at the provider is a funds reversal, not the operator
		// refund state
		{"refunded", entities.StatusFailed},
		{"in_process", entities.StatusProcessing},
		{"authorized", entities.StatusProcessing},
		{"pending", entities.StatusPending},
		{"brand_new_status", entities.StatusPending},
		{"", entities.StatusPending},
	}
	for _, c := range cases {
		t.Run(c.status, func(t *testing.T) {
			if got := MapMercadoPagoStatus(c.status); got != c.want {
				t.Fatalf("MapMercadoPagoStatus(%q) = %s, want %s", c.status, got, c.want)
			}
		})
	}
}

func newMercadoPagoMockForTest(t *testing.T) *MercadoPagoGateway {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("MERCADOPAGO_WEBHOOK_SECRET", "")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("NewMercadoPagoGateway: %v", err)
	}
	return g
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g := newMercadoPagoMockForTest(t)
	ctx := context.Background()

	t.Run("initiate", func(t *testing.T) {
		resp, err := g.Initiate(ctx, interfaces.InitiateRequest{PaymentID: "pay-1", Amount: 100, Currency: "SLE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.StatusPending || resp.ProviderReference != "pay-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.TransactionID == "" {
			t.Fatalf("expected a synthetic transaction id")
		}
	})

	t.Run("refund", func(t *testing.T) {
		resp, err := g.Refund(ctx, "12345", 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.StatusRefunded {
			t.Fatalf("expected refunded, got %s", resp.Status)
		}
	})

	t.Run("webhook with inline payment state", func(t *testing.T) {
		body := []byte(`{"type":"payment","action":"payment.updated","data":{"id":"12345"},"external_reference":"pay-1","status":"approved"}`)
		resp, err := g.ProcessWebhook(ctx, body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderReference != "pay-1" || resp.Status != entities.StatusCompleted {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("webhook missing data.id", func(t *testing.T) {
		if _, err := g.ProcessWebhook(ctx, []byte(`{"type":"payment"}`)); err == nil {
			t.Fatalf("expected error for missing data.id")
		}
	})
}

func TestMercadoPagoGateway_MissingAccessToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if _, err := NewMercadoPagoGateway(""); err != ErrMissingMercadoPagoAccessToken {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_ValidateWebhook(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("MERCADOPAGO_WEBHOOK_SECRET", "topsecret")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("NewMercadoPagoGateway: %v", err)
	}

	body := []byte(`{"type":"payment","data":{"id":"12345"}}`)

	t.Run("missing v1 component fails", func(t *testing.T) {
		ok, err := g.ValidateWebhook(context.Background(), body, "ts=1700000000")
		if err != nil || ok {
			t.Fatalf("expected invalid, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("wrong hmac fails", func(t *testing.T) {
		ok, err := g.ValidateWebhook(context.Background(), body, "ts=1700000000,v1=deadbeef")
		if err != nil || ok {
			t.Fatalf("expected invalid, got ok=%v err=%v", ok, err)
		}
	})
}
