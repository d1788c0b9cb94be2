package mocks

import (
	"context"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/ports"
)

type MockPaymentProvider struct {
	NameValue   string
	ChargeFunc  func(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error)
	ChargeCalls int
}

func (m *MockPaymentProvider) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m *MockPaymentProvider) Charge(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	m.ChargeCalls++
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, req)
	}
	return nil, nil
}

type MockProviderRegistry struct {
	ResolveFunc func(name string) (ports.PaymentProvider, error)
	NamesFunc   func() []string
}

func (m *MockProviderRegistry) Resolve(name string) (ports.PaymentProvider, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(name)
	}
	return nil, &domain.UnsupportedProviderError{Provider: name}
}

func (m *MockProviderRegistry) Names() []string {
	if m.NamesFunc != nil {
		return m.NamesFunc()
	}
	return nil
}

type MockRequestValidator struct {
	ValidateFunc func(req domain.PaymentRequest) error
}

func (m *MockRequestValidator) ValidateRequest(req domain.PaymentRequest) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(req)
	}
	return nil
}

type MockPaymentService struct {
	ChargeFunc func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error)
}

func (m *MockPaymentService) Charge(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if m.ChargeFunc != nil {
		return m.ChargeFunc(ctx, providerName, req)
	}
	return nil, nil
}
