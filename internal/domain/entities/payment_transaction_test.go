package entities

import (
	"testing"
	"time"
)

func TestParseProvider(t *testing.T) {
	cases := []struct {
		name string
		want PaymentProvider
		ok   bool
	}{
		{"slswitch", ProviderSLSwitch, true},
		{"manual", ProviderManual, true},
		{"mercadopago", ProviderMercadoPago, true},
		{"SLSWITCH", "", false},
		{"orange_money", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseProvider(c.name)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseProvider(%q) = (%q, %v), want (%q, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestTransactionStatusIsTerminal(t *testing.T) {
	terminal := []TransactionStatus{StatusCompleted, StatusFailed, StatusRefunded}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	open := []TransactionStatus{StatusInitiated, StatusPending, StatusProcessing}
	for _, s := range open {
		if s.IsTerminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestApplyStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("completion stamps CompletedDate once", func(t *testing.T) {
		tx := PaymentTransaction{Status: StatusPending}
		tx.ApplyStatus(StatusCompleted, "ACSC", now)
		if tx.CompletedDate == nil || !tx.CompletedDate.Equal(now) {
			t.Fatalf("expected CompletedDate %v, got %v", now, tx.CompletedDate)
		}

		later := now.Add(time.Hour)
		tx.ApplyStatus(StatusCompleted, "ACSC", later)
		if !tx.CompletedDate.Equal(now) {
			t.Fatalf("re-applying completed must keep the original stamp, got %v", tx.CompletedDate)
		}
	})

	t.Run("leaving completed clears CompletedDate", func(t *testing.T) {
		tx := PaymentTransaction{Status: StatusPending}
		tx.ApplyStatus(StatusCompleted, "", now)
		tx.ApplyStatus(StatusRefunded, "refund accepted", now.Add(time.Hour))
		if tx.CompletedDate != nil {
			t.Fatalf("expected CompletedDate cleared, got %v", tx.CompletedDate)
		}
		if tx.Status != StatusRefunded {
			t.Fatalf("expected refunded, got %s", tx.Status)
		}
	})

	t.Run("empty message keeps the last provider response", func(t *testing.T) {
		tx := PaymentTransaction{Status: StatusPending, ProviderResponse: "accepted by switch"}
		tx.ApplyStatus(StatusFailed, "", now)
		if tx.ProviderResponse != "accepted by switch" {
			t.Fatalf("unexpected provider response %q", tx.ProviderResponse)
		}
	})
}
