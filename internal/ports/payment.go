package ports

import (
	"context"

	"github.com/unipay-dev/gateway/internal/domain"
)

// PaymentProvider is implemented by every provider adapter. Charge issues
// exactly one outbound call; implementations hold only injected
// configuration and collaborators and are safe for concurrent use.
type PaymentProvider interface {
	Name() string
	Charge(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error)
}

// ProviderRegistry resolves a provider name to an adapter. Matching is
// case-insensitive.
type ProviderRegistry interface {
	Resolve(name string) (PaymentProvider, error)
	Names() []string
}

// RequestValidator checks a payment request and reports every violation at
// once as a domain.ValidationError.
type RequestValidator interface {
	ValidateRequest(req domain.PaymentRequest) error
}
