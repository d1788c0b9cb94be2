package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/ports"
	"github.com/unipay-dev/gateway/pkg/config"
)

const shift4Name = "shift4"

// Shift4 charges through the Shift4 API: HTTP basic auth with the secret key
// as username and an empty password, reading the just-created charge back
// from the charge list.
type Shift4 struct {
	cfg       config.Shift4Config
	client    *resty.Client
	validator ports.RequestValidator
	breaker   *gobreaker.CircuitBreaker
	log       *zap.Logger
}

func NewShift4(cfg config.Shift4Config, cbCfg config.CircuitBreakerConfig, client *resty.Client, validator ports.RequestValidator, log *zap.Logger) *Shift4 {
	return &Shift4{
		cfg:       cfg,
		client:    client,
		validator: validator,
		breaker:   newBreaker(shift4Name, cbCfg, log),
		log:       log.With(zap.String("provider", shift4Name)),
	}
}

func (p *Shift4) Name() string { return shift4Name }

type shift4Charge struct {
	ID       string `json:"id"`
	Created  int64  `json:"created"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Card     struct {
		First6 string `json:"first6"`
	} `json:"card"`
}

type shift4ChargeList struct {
	List []shift4Charge `json:"list"`
}

func (p *Shift4) Charge(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if err := p.validator.ValidateRequest(req); err != nil {
		return nil, err
	}
	if p.cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Provider: shift4Name, Missing: "api key"}
	}
	if p.cfg.APIURL == "" {
		return nil, &domain.ConfigurationError{Provider: shift4Name, Missing: "api url"}
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.headCharge(ctx)
	})
	if err != nil {
		var apiErr *domain.ProviderAPIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, &domain.ProviderAPIError{Provider: shift4Name, Message: err.Error(), Cause: err}
	}
	charge := result.(*shift4Charge)

	response, err := NewResponseAssembler().
		SetTransactionID(charge.ID).
		SetCreatedAt(time.Unix(charge.Created, 0).UTC()).
		SetAmount(float64(charge.Amount) / 100). // minor units on the wire
		SetCurrency(charge.Currency).
		SetCardBin(charge.Card.First6).
		Build()
	if err != nil {
		return nil, &domain.ResponseAssemblyError{Provider: shift4Name, Cause: err}
	}
	return response, nil
}

// headCharge lists recent charges and takes the first entry as "the" charge.
// This mirrors the provider contract the system was built against: there is
// no lookup-by-id, so concurrent charges through shift4 are not serializable
// with respect to each other.
func (p *Shift4) headCharge(ctx context.Context) (*shift4Charge, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.cfg.APIKey, "").
		Get(p.cfg.APIURL + "/charges")
	if err != nil {
		return nil, &domain.ProviderAPIError{Provider: shift4Name, Message: "request failed", Cause: err}
	}

	if resp.StatusCode() != http.StatusOK {
		p.log.Warn("charge list rejected", zap.Int("status", resp.StatusCode()))
		return nil, &domain.ProviderAPIError{Provider: shift4Name, Message: apiErrorMessage(resp.Body())}
	}

	var charges shift4ChargeList
	if err := json.Unmarshal(resp.Body(), &charges); err != nil {
		return nil, &domain.ProviderAPIError{Provider: shift4Name, Message: "malformed response body", Cause: err}
	}
	if len(charges.List) == 0 {
		return nil, &domain.ProviderAPIError{Provider: shift4Name, Message: "charge list is empty"}
	}
	return &charges.List[0], nil
}
