package validation

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/unipay-dev/gateway/internal/domain"
)

// Validator checks payment requests against the canonical field constraints.
// All violations are collected and returned together as a single
// domain.ValidationError.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// len=2 is checked by its own tag; expmonth only cares about the range.
	_ = v.RegisterValidation("expmonth", validExpiryMonth)
	v.RegisterStructValidation(validateCardExpiry, domain.PaymentRequest{})
	return &Validator{validate: v}
}

func (va *Validator) ValidateRequest(req domain.PaymentRequest) error {
	err := va.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describe(fe))
	}
	return &domain.ValidationError{Violations: violations}
}

func validExpiryMonth(fl validator.FieldLevel) bool {
	m, err := strconv.Atoi(fl.Field().String())
	return err == nil && m >= 1 && m <= 12
}

// validateCardExpiry rejects expiry dates in the past. The check is
// year-granular, tightened to the month when the year is current. Field
// format errors are left to the per-field tags.
func validateCardExpiry(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.PaymentRequest)

	year, err := strconv.Atoi(req.CardExpiryYear)
	if err != nil {
		return
	}
	month, err := strconv.Atoi(req.CardExpiryMonth)
	if err != nil || month < 1 || month > 12 {
		month = 12
	}

	now := time.Now()
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		sl.ReportError(req.CardExpiryYear, "CardExpiryYear", "CardExpiryYear", "notpast", "")
	}
}

func describe(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Amount":
		return "amount must be zero or greater"
	case "Currency":
		if fe.Tag() == "required" {
			return "currency is required"
		}
		return "currency must be a valid ISO 4217 code"
	case "CustomerID":
		return "customer id is required"
	case "CardNumber":
		switch fe.Tag() {
		case "required":
			return "card number is required"
		case "numeric":
			return "card number must contain only digits"
		default:
			return "card number failed checksum validation"
		}
	case "CardExpiryMonth":
		return "card expiry month must be a two-digit value between 01 and 12"
	case "CardExpiryYear":
		if fe.Tag() == "notpast" {
			return "card expiry date must not be in the past"
		}
		return "card expiry year must be a four-digit number"
	case "CardCVV":
		return "card cvv must be 3 or 4 digits"
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.StructField(), fe.Tag())
	}
}
