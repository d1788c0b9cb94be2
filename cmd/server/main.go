package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/unipay-dev/gateway/internal/adapter/http/fiber/handlers"
	"github.com/unipay-dev/gateway/internal/adapter/http/fiber/middleware"
	"github.com/unipay-dev/gateway/internal/observability/telemetry"
	"github.com/unipay-dev/gateway/internal/provider"
	"github.com/unipay-dev/gateway/internal/service/payment"
	"github.com/unipay-dev/gateway/internal/validation"
	"github.com/unipay-dev/gateway/pkg/config"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("starting payment gateway",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	if cfg.Tracing.Enabled {
		tracerProvider, err := telemetry.InitTracer(cfg.App.Name, cfg.App.Version, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	client := resty.New().SetTimeout(cfg.HTTPClient.Timeout)
	validator := validation.New()
	registry := provider.NewDefaultRegistry(cfg.Providers, cfg.CircuitBreaker, client, validator, logger)
	service := payment.NewService(registry, logger)

	logger.Info("payment providers registered", zap.Strings("providers", registry.Names()))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(cors.New())

	paymentHandler := handlers.NewPaymentHandler(service, logger)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")
	api.Post("/payments/:provider", paymentHandler.Charge)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("http server stopped", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
