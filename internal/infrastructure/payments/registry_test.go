package payments

import (
	"errors"
	"testing"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

func TestRegistry(t *testing.T) {
	manual := NewManualGateway()

	t.Run("resolves a registered provider", func(t *testing.T) {
		r := NewRegistry(manual)
		g, err := r.Get(entities.ProviderManual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g != manual {
			t.Fatalf("expected the registered gateway back")
		}
	})

	t.Run("unregistered provider is a typed configuration error", func(t *testing.T) {
		r := NewRegistry(manual)
		_, err := r.Get(entities.ProviderSLSwitch)
		var notRegistered *GatewayNotRegisteredError
		if !errors.As(err, &notRegistered) {
			t.Fatalf("expected GatewayNotRegisteredError, got %v", err)
		}
		if notRegistered.Provider != entities.ProviderSLSwitch {
			t.Fatalf("expected provider slswitch, got %s", notRegistered.Provider)
		}
	})

	t.Run("nil and duplicate gateways are skipped", func(t *testing.T) {
		r := NewRegistry(nil, manual, NewManualGateway())
		if got := r.Providers(); len(got) != 1 || got[0] != entities.ProviderManual {
			t.Fatalf("unexpected providers: %v", got)
		}
		g, err := r.Get(entities.ProviderManual)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g != manual {
			t.Fatalf("first registration must win")
		}
	})

	t.Run("providers returns a copy in registration order", func(t *testing.T) {
		r := NewRegistry(manual)
		first := r.Providers()
		first[0] = entities.ProviderSLSwitch
		if got := r.Providers(); got[0] != entities.ProviderManual {
			t.Fatalf("Providers must not expose internal state, got %v", got)
		}
	})
}
