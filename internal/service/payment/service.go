package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/observability/telemetry"
	"github.com/unipay-dev/gateway/internal/ports"
)

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Service is the top-level charge entry point shared by the HTTP and CLI
// adapters. It resolves the provider, delegates, and translates failures:
// client-input errors pass through unchanged, everything else is wrapped
// into a stable processing error with the cause preserved.
type Service struct {
	registry ports.ProviderRegistry
	log      *zap.Logger
	tracer   trace.Tracer
}

func NewService(registry ports.ProviderRegistry, log *zap.Logger) *Service {
	return &Service{
		registry: registry,
		log:      log,
		tracer:   otel.Tracer("payment-service"),
	}
}

func (s *Service) Charge(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "payment.charge", trace.WithAttributes(
		attribute.String("payment.provider", providerName),
		attribute.String("payment.currency", req.Currency),
	))
	defer span.End()

	log := s.log.With(
		zap.String("attempt_id", uuid.NewString()),
		zap.String("provider", providerName),
	)
	log.Info("starting payment process",
		zap.Float64("amount", req.Amount),
		zap.String("currency", req.Currency),
		zap.String("customer_id", req.CustomerID),
	)

	adapter, err := s.registry.Resolve(providerName)
	if err != nil {
		log.Error("unsupported payment provider requested", zap.Error(err))
		span.RecordError(err)
		telemetry.ChargesTotal.WithLabelValues(providerName, outcomeRejected).Inc()
		return nil, err
	}

	start := time.Now()
	response, err := adapter.Charge(ctx, req)
	telemetry.ChargeDuration.WithLabelValues(adapter.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		if domain.IsClientError(err) {
			log.Error("payment request rejected", zap.Error(err))
			telemetry.ChargesTotal.WithLabelValues(adapter.Name(), outcomeRejected).Inc()
			return nil, err
		}

		log.Error("payment processing failed", zap.Error(err))
		telemetry.ChargesTotal.WithLabelValues(adapter.Name(), outcomeFailed).Inc()
		var apiErr *domain.ProviderAPIError
		if errors.As(err, &apiErr) {
			telemetry.ProviderAPIErrors.WithLabelValues(adapter.Name()).Inc()
		}
		return nil, &domain.ProcessingError{Cause: err}
	}

	telemetry.ChargesTotal.WithLabelValues(adapter.Name(), outcomeSuccess).Inc()
	log.Info("payment processed successfully",
		zap.String("transaction_id", response.TransactionID),
		zap.Float64("amount", response.Amount),
		zap.String("currency", response.Currency),
	)
	return response, nil
}
