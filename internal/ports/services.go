package ports

import (
	"context"

	"github.com/unipay-dev/gateway/internal/domain"
)

// PaymentService is the top-level charge entry point used by the HTTP and
// CLI adapters.
type PaymentService interface {
	Charge(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error)
}
