package provider

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/unipay-dev/gateway/internal/domain"
)

var (
	binPattern      = regexp.MustCompile(`^[0-9]{6}$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ResponseAssembler accumulates scattered provider reply fields and produces
// a validated canonical response. One instance is created per charge attempt
// and discarded after Build; there is no reset.
type ResponseAssembler struct {
	transactionID *string
	createdAt     *time.Time
	amount        *float64
	currency      *string
	cardBin       *string
}

func NewResponseAssembler() *ResponseAssembler {
	return &ResponseAssembler{}
}

func (a *ResponseAssembler) SetTransactionID(id string) *ResponseAssembler {
	a.transactionID = &id
	return a
}

func (a *ResponseAssembler) SetCreatedAt(t time.Time) *ResponseAssembler {
	a.createdAt = &t
	return a
}

func (a *ResponseAssembler) SetAmount(amount float64) *ResponseAssembler {
	a.amount = &amount
	return a
}

func (a *ResponseAssembler) SetCurrency(currency string) *ResponseAssembler {
	a.currency = &currency
	return a
}

func (a *ResponseAssembler) SetCardBin(bin string) *ResponseAssembler {
	a.cardBin = &bin
	return a
}

// Build validates completeness first (naming every unset slot), then the
// shape of the assembled value (aggregating every violation), and only then
// releases the response.
func (a *ResponseAssembler) Build() (*domain.PaymentResponse, error) {
	var missing []string
	if a.transactionID == nil {
		missing = append(missing, "transactionId")
	}
	if a.createdAt == nil {
		missing = append(missing, "createdAt")
	}
	if a.amount == nil {
		missing = append(missing, "amount")
	}
	if a.currency == nil {
		missing = append(missing, "currency")
	}
	if a.cardBin == nil {
		missing = append(missing, "cardBin")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("response fields not set: %s", strings.Join(missing, ", "))
	}

	var violations []string
	if *a.transactionID == "" {
		violations = append(violations, "transactionId must not be empty")
	}
	if a.createdAt.IsZero() {
		violations = append(violations, "createdAt must be a valid timestamp")
	}
	if *a.amount < 0 {
		violations = append(violations, "amount must be zero or greater")
	}
	if !currencyPattern.MatchString(*a.currency) {
		violations = append(violations, "currency must be a three-letter ISO 4217 code")
	}
	if !binPattern.MatchString(*a.cardBin) {
		violations = append(violations, "cardBin must be exactly 6 digits")
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("invalid response fields: %s", strings.Join(violations, ", "))
	}

	return &domain.PaymentResponse{
		TransactionID: *a.transactionID,
		CreatedAt:     *a.createdAt,
		Amount:        *a.amount,
		Currency:      *a.currency,
		CardBin:       *a.cardBin,
	}, nil
}
