package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChargesTotal counts charge attempts by provider and outcome
	// (success, rejected, failed).
	ChargesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payment_charges_total",
		Help: "Charge attempts by provider and outcome",
	}, []string{"provider", "outcome"})

	ChargeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_payment_charge_duration_seconds",
		Help:    "End-to-end charge latency by provider",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	ProviderAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_provider_api_errors_total",
		Help: "Provider API and transport failures",
	}, []string{"provider"})
)
