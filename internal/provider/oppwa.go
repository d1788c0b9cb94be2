package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/ports"
	"github.com/unipay-dev/gateway/pkg/config"
)

const oppwaName = "oppwa"

// oppwaTimeLayout is OPPWA's native timestamp format; RFC3339 is accepted
// as well.
const oppwaTimeLayout = "2006-01-02 15:04:05-0700"

// Oppwa charges through the OPPWA (Open Payment Platform) API: bearer-token
// POST of the card details, debit payment type.
type Oppwa struct {
	cfg       config.OppwaConfig
	client    *resty.Client
	validator ports.RequestValidator
	breaker   *gobreaker.CircuitBreaker
	log       *zap.Logger
}

func NewOppwa(cfg config.OppwaConfig, cbCfg config.CircuitBreakerConfig, client *resty.Client, validator ports.RequestValidator, log *zap.Logger) *Oppwa {
	return &Oppwa{
		cfg:       cfg,
		client:    client,
		validator: validator,
		breaker:   newBreaker(oppwaName, cbCfg, log),
		log:       log.With(zap.String("provider", oppwaName)),
	}
}

func (p *Oppwa) Name() string { return oppwaName }

type oppwaPayment struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Card      struct {
		Bin string `json:"bin"`
	} `json:"card"`
}

func (p *Oppwa) Charge(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if err := p.validator.ValidateRequest(req); err != nil {
		return nil, err
	}
	if p.cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Provider: oppwaName, Missing: "api key"}
	}
	if p.cfg.APIURL == "" {
		return nil, &domain.ConfigurationError{Provider: oppwaName, Missing: "api url"}
	}
	if p.cfg.EntityID == "" {
		return nil, &domain.ConfigurationError{Provider: oppwaName, Missing: "entity id"}
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.createPayment(ctx, req)
	})
	if err != nil {
		var apiErr *domain.ProviderAPIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, &domain.ProviderAPIError{Provider: oppwaName, Message: err.Error(), Cause: err}
	}
	payment := result.(*oppwaPayment)

	assembler := NewResponseAssembler().
		SetTransactionID(payment.ID).
		SetCurrency(payment.Currency).
		SetCardBin(payment.Card.Bin)
	if createdAt, err := parseOppwaTimestamp(payment.Timestamp); err == nil {
		assembler.SetCreatedAt(createdAt)
	}
	if amount, err := strconv.ParseFloat(payment.Amount, 64); err == nil {
		assembler.SetAmount(amount)
	}

	response, err := assembler.Build()
	if err != nil {
		return nil, &domain.ResponseAssemblyError{Provider: oppwaName, Cause: err}
	}
	return response, nil
}

func (p *Oppwa) createPayment(ctx context.Context, req domain.PaymentRequest) (*oppwaPayment, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.cfg.APIKey).
		SetFormData(map[string]string{
			"entityId":              p.cfg.EntityID,
			"amount":                fmt.Sprintf("%.2f", req.Amount),
			"currency":              req.Currency,
			"paymentBrand":          cardBrand(req.CardNumber),
			"paymentType":           "DB",
			"card.number":           req.CardNumber,
			"card.expiryMonth":      req.CardExpiryMonth,
			"card.expiryYear":       req.CardExpiryYear,
			"card.cvv":              req.CardCVV,
			"merchantTransactionId": req.CustomerID,
		}).
		Post(p.cfg.APIURL + "/payments")
	if err != nil {
		return nil, &domain.ProviderAPIError{Provider: oppwaName, Message: "request failed", Cause: err}
	}

	if resp.StatusCode() != http.StatusOK {
		p.log.Warn("payment rejected", zap.Int("status", resp.StatusCode()))
		return nil, &domain.ProviderAPIError{Provider: oppwaName, Message: apiErrorMessage(resp.Body())}
	}

	var payment oppwaPayment
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return nil, &domain.ProviderAPIError{Provider: oppwaName, Message: "malformed response body", Cause: err}
	}
	return &payment, nil
}

func parseOppwaTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(oppwaTimeLayout, value)
}
