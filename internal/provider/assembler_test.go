package provider

import (
	"strings"
	"testing"
	"time"
)

func TestResponseAssembler_Build(t *testing.T) {
	createdAt := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

	response, err := NewResponseAssembler().
		SetTransactionID("t1").
		SetCreatedAt(createdAt).
		SetAmount(92.00).
		SetCurrency("EUR").
		SetCardBin("420000").
		Build()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if response.TransactionID != "t1" {
		t.Errorf("expected transaction id 't1', got %q", response.TransactionID)
	}
	if !response.CreatedAt.Equal(createdAt) {
		t.Errorf("expected created at %v, got %v", createdAt, response.CreatedAt)
	}
	if response.Amount != 92.00 {
		t.Errorf("expected amount 92.00, got %v", response.Amount)
	}
	if response.Currency != "EUR" {
		t.Errorf("expected currency 'EUR', got %q", response.Currency)
	}
	if response.CardBin != "420000" {
		t.Errorf("expected card bin '420000', got %q", response.CardBin)
	}
}

func TestResponseAssembler_AllSlotsUnset(t *testing.T) {
	_, err := NewResponseAssembler().Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	want := "transactionId, createdAt, amount, currency, cardBin"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error to list all unset slots in order, got %q", err.Error())
	}
}

func TestResponseAssembler_SomeSlotsUnset(t *testing.T) {
	_, err := NewResponseAssembler().
		SetTransactionID("t1").
		SetCurrency("USD").
		SetCardBin("411111").
		Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, name := range []string{"createdAt", "amount"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error to name %q, got %q", name, err.Error())
		}
	}
	if strings.Contains(err.Error(), "transactionId") {
		t.Errorf("error should not name slots that are set, got %q", err.Error())
	}
}

func TestResponseAssembler_ShapeViolationsAggregated(t *testing.T) {
	_, err := NewResponseAssembler().
		SetTransactionID("").
		SetCreatedAt(time.Time{}).
		SetAmount(-1).
		SetCurrency("usd").
		SetCardBin("12345").
		Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, fragment := range []string{
		"transactionId must not be empty",
		"createdAt must be a valid timestamp",
		"amount must be zero or greater",
		"currency must be a three-letter ISO 4217 code",
		"cardBin must be exactly 6 digits",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected error to contain %q, got %q", fragment, err.Error())
		}
	}
}

func TestResponseAssembler_InvalidBin(t *testing.T) {
	for _, bin := range []string{"12345", "1234567", "41111a", ""} {
		_, err := NewResponseAssembler().
			SetTransactionID("t1").
			SetCreatedAt(time.Now()).
			SetAmount(1).
			SetCurrency("USD").
			SetCardBin(bin).
			Build()
		if err == nil {
			t.Errorf("expected error for bin %q, got nil", bin)
		}
	}
}
