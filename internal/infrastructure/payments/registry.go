package payments

import (
	"fmt"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

// GatewayNotRegisteredError marks a configuration error: a provider with no
// gateway wired in. Distinct from transient gateway failures so callers can
// fail loudly instead of retrying.

type GatewayNotRegisteredError struct {
	Provider entities.PaymentProvider
}

func (e *GatewayNotRegisteredError) Error() string {
	return fmt.Sprintf("no payment gateway registered for provider %q", e.Provider)
}

// Registry is a fixed provider -> gateway map built once at startup.

type Registry struct {
	gateways map[entities.PaymentProvider]interfaces.IPaymentGateway
	order    []entities.PaymentProvider
}

var _ interfaces.IGatewayRegistry = (*Registry)(nil)

func NewRegistry(gateways ...interfaces.IPaymentGateway) *Registry {
	r := &Registry{gateways: make(map[entities.PaymentProvider]interfaces.IPaymentGateway, len(gateways))}
	for _, g := range gateways {
		if g == nil {
			continue
		}
		p := g.Provider()
		if _, dup := r.gateways[p]; dup {
			continue
		}
		r.gateways[p] = g
		r.order = append(r.order, p)
	}
	return r
}

func (r *Registry) Get(provider entities.PaymentProvider) (interfaces.IPaymentGateway, error) {
	g, ok := r.gateways[provider]
	if !ok {
		return nil, &GatewayNotRegisteredError{Provider: provider}
	}
	return g, nil
}

// Providers lists the registered providers in registration order.
func (r *Registry) Providers() []entities.PaymentProvider {
	out := make([]entities.PaymentProvider, len(r.order))
	copy(out, r.order)
	return out
}
