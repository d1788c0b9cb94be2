// payctl submits a one-time card payment from the command line.
//
// Usage:
//
//	payctl [flags] <amount> <currency> <cardNumber> <cardExpYear> <cardExpMonth> <cardCvv>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/domain"
	"github.com/unipay-dev/gateway/internal/provider"
	"github.com/unipay-dev/gateway/internal/service/payment"
	"github.com/unipay-dev/gateway/internal/validation"
	"github.com/unipay-dev/gateway/pkg/config"
)

var (
	providerName = flag.String("provider", "shift4", "Payment provider (shift4 or oppwa)")
	customerID   = flag.String("customerId", "cli-customer", "Customer ID")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <amount> <currency> <cardNumber> <cardExpYear> <cardExpMonth> <cardCvv>\n\nFlags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 6 {
		flag.Usage()
		os.Exit(2)
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q: %v\n", args[0], err)
		os.Exit(2)
	}

	_ = godotenv.Load()

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	client := resty.New().SetTimeout(cfg.HTTPClient.Timeout)
	registry := provider.NewDefaultRegistry(cfg.Providers, cfg.CircuitBreaker, client, validation.New(), logger)
	service := payment.NewService(registry, logger)

	req := domain.PaymentRequest{
		Amount:          amount,
		Currency:        args[1],
		CustomerID:      *customerID,
		CardNumber:      args[2],
		CardExpiryYear:  args[3],
		CardExpiryMonth: args[4],
		CardCVV:         args[5],
	}

	response, err := service.Charge(context.Background(), *providerName, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Payment processing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Payment processed successfully")
	fmt.Printf("  Transaction ID: %s\n", response.TransactionID)
	fmt.Printf("  Amount:         %.2f %s\n", response.Amount, response.Currency)
	fmt.Printf("  Created At:     %s\n", response.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Card BIN:       %s\n", response.CardBin)
}
