package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

func TestMapSLSwitchStatus(t *testing.T) {
	cases := []struct {
		token string
		want  entities.TransactionStatus
	}{
		{"ACSC", entities.StatusCompleted},
		{"COMPLETED", entities.StatusCompleted},
		{"completed", entities.StatusCompleted},
		{"RJCT", entities.StatusFailed},
		{"FAILED", entities.StatusFailed},
		{"PDNG", entities.StatusPending},
		{" pdng ", entities.StatusPending},
		{"SOMETHING_NEW", entities.StatusPending},
		{"", entities.StatusPending},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			if got := MapSLSwitchStatus(c.token); got != c.want {
				t.Fatalf("MapSLSwitchStatus(%q) = %s, want %s", c.token, got, c.want)
			}
		})
	}
}

func newSwitchGatewayForTest(t *testing.T, baseURL, secret string) *SLSwitchGateway {
	t.Helper()
	t.Setenv("SLSWITCH_BASE_URL", baseURL)
	t.Setenv("SLSWITCH_API_KEY", "test-key")
	t.Setenv("SLSWITCH_WEBHOOK_SECRET", secret)
	g, err := NewSLSwitchGateway()
	if err != nil {
		t.Fatalf("NewSLSwitchGateway: %v", err)
	}
	return g
}

func TestNewSLSwitchGateway_MissingBaseURL(t *testing.T) {
	t.Setenv("SLSWITCH_BASE_URL", "")
	if _, err := NewSLSwitchGateway(); err != ErrMissingSLSwitchBaseURL {
		t.Fatalf("expected ErrMissingSLSwitchBaseURL, got %v", err)
	}
}

func TestSLSwitchGateway_GetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payments/REF-1/status" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactionId":"TX-9","endToEndId":"REF-1","status":"ACSC","message":"settled","amount":150}`))
	}))
	defer srv.Close()

	g := newSwitchGatewayForTest(t, srv.URL, "")
	resp, err := g.GetStatus(context.Background(), "REF-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entities.StatusCompleted {
		t.Fatalf("expected completed, got %s", resp.Status)
	}
	if resp.ProviderReference != "REF-1" {
		t.Fatalf("expected REF-1, got %s", resp.ProviderReference)
	}
	if resp.Amount == nil || *resp.Amount != 150 {
		t.Fatalf("expected amount 150, got %v", resp.Amount)
	}
}

func TestSLSwitchGateway_GetStatusNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "switch maintenance window", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newSwitchGatewayForTest(t, srv.URL, "")
	if _, err := g.GetStatus(context.Background(), "REF-1"); err == nil {
		t.Fatalf("expected error on non-2xx so the poller retries")
	}
}

func TestSLSwitchGateway_Refund(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payments/REF-1/refund" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"transactionId":"TX-9","endToEndId":"REF-1","status":"ACSC","message":"refund settled"}`))
	}))
	defer srv.Close()

	g := newSwitchGatewayForTest(t, srv.URL, "")
	resp, err := g.Refund(context.Background(), "REF-1", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entities.StatusRefunded {
		t.Fatalf("expected refunded, got %s", resp.Status)
	}
}

func TestSLSwitchGateway_ValidateWebhook(t *testing.T) {
	const secret = "topsecret"
	body := []byte(`<PmtNtfctn><EndToEndId>REF-1</EndToEndId><TxSts>ACSC</TxSts></PmtNtfctn>`)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	t.Run("matching signature", func(t *testing.T) {
		g := newSwitchGatewayForTest(t, "http://switch.local", secret)
		ok, err := g.ValidateWebhook(context.Background(), body, signature)
		if err != nil || !ok {
			t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		g := newSwitchGatewayForTest(t, "http://switch.local", secret)
		ok, err := g.ValidateWebhook(context.Background(), append(body, ' '), signature)
		if err != nil || ok {
			t.Fatalf("expected invalid, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("unset secret disables the check", func(t *testing.T) {
		g := newSwitchGatewayForTest(t, "http://switch.local", "")
		ok, err := g.ValidateWebhook(context.Background(), body, "")
		if err != nil || !ok {
			t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
		}
	})
}

func TestSLSwitchGateway_ProcessWebhook(t *testing.T) {
	g := newSwitchGatewayForTest(t, "http://switch.local", "")

	t.Run("settled notification", func(t *testing.T) {
		body := []byte(`<PmtNtfctn><EndToEndId>REF-1</EndToEndId><TxSts>ACSC</TxSts><Amt>150</Amt></PmtNtfctn>`)
		resp, err := g.ProcessWebhook(context.Background(), body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderReference != "REF-1" || resp.Status != entities.StatusCompleted {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.Amount == nil || *resp.Amount != 150 {
			t.Fatalf("expected amount 150, got %v", resp.Amount)
		}
	})

	t.Run("rejection carries the reason", func(t *testing.T) {
		body := []byte(`<PmtNtfctn><EndToEndId>REF-2</EndToEndId><TxSts>RJCT</TxSts><StsRsnInf>AC01</StsRsnInf></PmtNtfctn>`)
		resp, err := g.ProcessWebhook(context.Background(), body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.StatusFailed {
			t.Fatalf("expected failed, got %s", resp.Status)
		}
		if resp.StatusMessage != "RJCT: AC01" {
			t.Fatalf("unexpected message %q", resp.StatusMessage)
		}
	})

	t.Run("unknown status maps to pending", func(t *testing.T) {
		body := []byte(`<PmtNtfctn><EndToEndId>REF-3</EndToEndId><TxSts>ACSP</TxSts></PmtNtfctn>`)
		resp, err := g.ProcessWebhook(context.Background(), body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.StatusPending {
			t.Fatalf("expected pending, got %s", resp.Status)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		body := []byte(`<PmtNtfctn><TxSts>ACSC</TxSts></PmtNtfctn>`)
		if _, err := g.ProcessWebhook(context.Background(), body); err == nil {
			t.Fatalf("expected error for missing EndToEndId")
		}
	})

	t.Run("malformed xml", func(t *testing.T) {
		if _, err := g.ProcessWebhook(context.Background(), []byte(`{"not":"xml"}`)); err == nil {
			t.Fatalf("expected error for malformed payload")
		}
	})
}
