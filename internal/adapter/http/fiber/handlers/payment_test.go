package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/mocks"
)

func newTestApp(service *mocks.MockPaymentService) *fiber.App {
	app := fiber.New()
	handler := NewPaymentHandler(service, zap.NewNop())
	app.Post("/api/v1/payments/:provider", handler.Charge)
	return app
}

func chargeBody(t *testing.T, overrides map[string]any) io.Reader {
	t.Helper()
	body := map[string]any{
		"amount":       10.50,
		"currency":     "USD",
		"cardNumber":   "4111111111111111",
		"cardExpMonth": "05",
		"cardExpYear":  "2034",
		"cardCvv":      "123",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(raw)
}

func postCharge(t *testing.T, app *fiber.App, provider string, body io.Reader) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/"+provider, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return resp, decoded
}

func TestCharge_OK(t *testing.T) {
	var gotProvider string
	var gotRequest domain.PaymentRequest
	service := &mocks.MockPaymentService{
		ChargeFunc: func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
			gotProvider = providerName
			gotRequest = req
			return &domain.PaymentResponse{
				TransactionID: "ch_1",
				CreatedAt:     time.Date(2023, 6, 15, 9, 30, 0, 0, time.UTC),
				Amount:        10.50,
				Currency:      "USD",
				CardBin:       "411111",
			}, nil
		},
	}
	app := newTestApp(service)

	resp, body := postCharge(t, app, "shift4", chargeBody(t, map[string]any{"customerId": "cust-42"}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotProvider != "shift4" {
		t.Errorf("expected provider from the path, got %q", gotProvider)
	}
	if gotRequest.CustomerID != "cust-42" {
		t.Errorf("expected customer id forwarded, got %q", gotRequest.CustomerID)
	}
	if gotRequest.CardNumber != "4111111111111111" || gotRequest.Amount != 10.50 {
		t.Errorf("unexpected forwarded request: %+v", gotRequest)
	}

	want := map[string]any{
		"message":       "payment processed successfully",
		"transactionId": "ch_1",
		"amount":        10.50,
		"currency":      "USD",
		"createdAt":     "2023-06-15T09:30:00Z",
		"cardBin":       "411111",
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("expected body[%q] = %v, got %v", k, v, body[k])
		}
	}
}

func TestCharge_DefaultCustomerID(t *testing.T) {
	var gotRequest domain.PaymentRequest
	service := &mocks.MockPaymentService{
		ChargeFunc: func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
			gotRequest = req
			return &domain.PaymentResponse{TransactionID: "t1", CreatedAt: time.Now(), Currency: "USD", CardBin: "411111"}, nil
		},
	}
	app := newTestApp(service)

	resp, _ := postCharge(t, app, "shift4", chargeBody(t, nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if gotRequest.CustomerID != "api-customer" {
		t.Errorf("expected default customer id, got %q", gotRequest.CustomerID)
	}
}

func TestCharge_MissingFields(t *testing.T) {
	called := false
	service := &mocks.MockPaymentService{
		ChargeFunc: func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
			called = true
			return nil, nil
		},
	}
	app := newTestApp(service)

	resp, body := postCharge(t, app, "shift4", chargeBody(t, map[string]any{
		"amount":   nil,
		"cardCvv":  nil,
		"currency": "",
	}))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if called {
		t.Error("service must not be invoked for an incomplete request")
	}

	msg, _ := body["error"].(string)
	if !strings.HasPrefix(msg, "missing required fields: ") {
		t.Fatalf("unexpected error message %q", msg)
	}
	for _, field := range []string{"amount", "currency", "cardCvv"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected %q to be reported missing, got %q", field, msg)
		}
	}
}

func TestCharge_MalformedBody(t *testing.T) {
	app := newTestApp(&mocks.MockPaymentService{})

	resp, body := postCharge(t, app, "shift4", strings.NewReader("{not json"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "invalid request body" {
		t.Errorf("unexpected error message %v", body["error"])
	}
}

func TestCharge_ClientErrorsMapTo400(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"unsupported provider", &domain.UnsupportedProviderError{Provider: "paypal"}},
		{"validation", &domain.ValidationError{Violations: []string{"card number failed checksum validation"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &mocks.MockPaymentService{
				ChargeFunc: func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
					return nil, tc.err
				},
			}
			app := newTestApp(service)

			resp, body := postCharge(t, app, "paypal", chargeBody(t, nil))
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if body["error"] != tc.err.Error() {
				t.Errorf("expected error message %q, got %v", tc.err.Error(), body["error"])
			}
		})
	}
}

func TestCharge_ProcessingErrorMapsTo500(t *testing.T) {
	service := &mocks.MockPaymentService{
		ChargeFunc: func(ctx context.Context, providerName string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
			return nil, &domain.ProcessingError{Cause: &domain.ProviderAPIError{Provider: "shift4", Message: "boom"}}
		},
	}
	app := newTestApp(service)

	resp, body := postCharge(t, app, "shift4", chargeBody(t, nil))
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body["error"] != "payment processing failed" {
		t.Errorf("expected opaque processing message, got %v", body["error"])
	}
}
