package interfaces

import "github.com/Telli/betts-ctis-sub020/internal/domain/entities"

// IGatewayRegistry resolves a provider enum to its gateway implementation.
// Asking for an unregistered provider is a configuration error and must be
// surfaced loudly at call time, never retried.
type IGatewayRegistry interface {
	Get(provider entities.PaymentProvider) (IPaymentGateway, error)
	Providers() []entities.PaymentProvider
}
