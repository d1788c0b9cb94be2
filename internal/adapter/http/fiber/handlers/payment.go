package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/ports"
)

const defaultAPICustomerID = "api-customer"

type PaymentHandler struct {
	service ports.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service ports.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

type chargeRequest struct {
	Amount       *float64 `json:"amount"`
	Currency     string   `json:"currency"`
	CardNumber   string   `json:"cardNumber"`
	CardExpMonth string   `json:"cardExpMonth"`
	CardExpYear  string   `json:"cardExpYear"`
	CardCvv      string   `json:"cardCvv"`
	CustomerID   string   `json:"customerId"`
}

func (r *chargeRequest) missingFields() []string {
	var missing []string
	if r.Amount == nil {
		missing = append(missing, "amount")
	}
	if r.Currency == "" {
		missing = append(missing, "currency")
	}
	if r.CardNumber == "" {
		missing = append(missing, "cardNumber")
	}
	if r.CardExpYear == "" {
		missing = append(missing, "cardExpYear")
	}
	if r.CardExpMonth == "" {
		missing = append(missing, "cardExpMonth")
	}
	if r.CardCvv == "" {
		missing = append(missing, "cardCvv")
	}
	return missing
}

// Charge handles POST /api/v1/payments/:provider.
func (h *PaymentHandler) Charge(c *fiber.Ctx) error {
	providerName := c.Params("provider")

	var body chargeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if missing := body.missingFields(); len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing required fields: " + strings.Join(missing, ", "),
		})
	}

	customerID := body.CustomerID
	if customerID == "" {
		customerID = defaultAPICustomerID
	}

	req := domain.PaymentRequest{
		Amount:          *body.Amount,
		Currency:        body.Currency,
		CustomerID:      customerID,
		CardNumber:      body.CardNumber,
		CardExpiryMonth: body.CardExpMonth,
		CardExpiryYear:  body.CardExpYear,
		CardCVV:         body.CardCvv,
	}

	response, err := h.service.Charge(c.Context(), providerName, req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if domain.IsClientError(err) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":       "payment processed successfully",
		"transactionId": response.TransactionID,
		"amount":        response.Amount,
		"currency":      response.Currency,
		"createdAt":     response.CreatedAt.UTC().Format(time.RFC3339),
		"cardBin":       response.CardBin,
	})
}
