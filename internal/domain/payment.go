package domain

import (
	"time"
)

// PaymentRequest is the canonical, provider-agnostic payment instruction.
// It is constructed once by an entry point and handed unchanged to a single
// provider adapter invocation. Validity is a caller precondition, but
// adapters re-validate defensively since callers are not trusted to have
// done so.
type PaymentRequest struct {
	Amount          float64 `json:"amount" validate:"gte=0"`
	Currency        string  `json:"currency" validate:"required,iso4217"`
	CustomerID      string  `json:"customer_id" validate:"required"`
	CardNumber      string  `json:"-" validate:"required,numeric,credit_card"`
	CardExpiryMonth string  `json:"-" validate:"required,len=2,expmonth"`
	CardExpiryYear  string  `json:"-" validate:"required,len=4,numeric"`
	CardCVV         string  `json:"-" validate:"required,numeric,min=3,max=4"`
}

// PaymentResponse is the canonical confirmation produced after a successful
// charge. It is assembled and validated field by field by the response
// assembler and never mutated afterwards.
type PaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CardBin       string    `json:"card_bin"`
}
