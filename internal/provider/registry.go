// Package provider holds the provider adapters and the dispatch machinery
// around them: the name registry, the response assembler and the circuit
// breaker wrapping outbound calls.
package provider

import (
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/ports"
	"github.com/unipay-dev/gateway/pkg/config"
)

// Registry maps provider names to adapters. Registration happens during
// wiring, before any Resolve call; afterwards the registry is read-only and
// safe for concurrent use.
type Registry struct {
	providers map[string]ports.PaymentProvider
}

func NewRegistry(providers ...ports.PaymentProvider) *Registry {
	r := &Registry{providers: make(map[string]ports.PaymentProvider, len(providers))}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

func (r *Registry) Register(p ports.PaymentProvider) {
	r.providers[strings.ToLower(p.Name())] = p
}

// Resolve returns the adapter registered under name, matched
// case-insensitively. Unknown names fail with the offending name verbatim.
func (r *Registry) Resolve(name string) (ports.PaymentProvider, error) {
	p, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, &domain.UnsupportedProviderError{Provider: name}
	}
	return p, nil
}

// Names lists every registered provider name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry wires every supported provider. Adding a provider means
// adding one entry here, not touching the dispatch contract.
func NewDefaultRegistry(cfg config.ProvidersConfig, cbCfg config.CircuitBreakerConfig, client *resty.Client, validator ports.RequestValidator, log *zap.Logger) *Registry {
	return NewRegistry(
		NewShift4(cfg.Shift4, cbCfg, client, validator, log),
		NewOppwa(cfg.Oppwa, cbCfg, client, validator, log),
	)
}
