package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/heartsafe-training/booking-api/internal/api/router"
	"github.com/heartsafe-training/booking-api/internal/booking"
	appconfig "github.com/heartsafe-training/booking-api/internal/config"
	"github.com/heartsafe-training/booking-api/internal/notify"
	"github.com/heartsafe-training/booking-api/internal/observability/metrics"
	"github.com/heartsafe-training/booking-api/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	loc, err := time.LoadLocation(cfg.BusinessTZ)
	if err != nil {
		logger.Error("invalid BUSINESS_TZ, falling back to UTC", "tz", cfg.BusinessTZ, "error", err)
		loc = time.UTC
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis not available", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	dispatcher := buildMailDispatcher(cfg, logger)

	bookingMetrics := metrics.NewBookingMetrics(nil)
	store := booking.NewRedisStore(redisClient, nil)

	service := booking.NewService(store, dispatcher, booking.ServiceConfig{
		BusinessName:   cfg.BusinessName,
		AdminEmail:     cfg.AdminEmail,
		DaycareCCEmail: cfg.DaycareCCEmail,
	}, bookingMetrics, logger)
	sweeper := booking.NewSweeper(store, dispatcher, cfg.BusinessName, loc, bookingMetrics, logger)
	bookingHandler := booking.NewHandler(service, sweeper, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		BookingHandler:     bookingHandler,
		ReminderSecret:     cfg.ReminderSecret,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildMailDispatcher wires the default and daycare mailboxes for the
// configured email provider. Missing daycare credentials leave the daycare
// mailbox nil; the dispatcher then falls back to the default mailbox.
func buildMailDispatcher(cfg *appconfig.Config, logger *logging.Logger) *notify.Dispatcher {
	provider := cfg.EmailProvider
	if provider == "auto" {
		if cfg.SendGridAPIKey != "" {
			provider = "sendgrid"
		} else {
			provider = "stub"
		}
	}

	switch provider {
	case "sendgrid":
		def := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if def == nil {
			logger.Error("EMAIL_PROVIDER=sendgrid but SENDGRID_API_KEY is not set")
			os.Exit(1)
		}
		var daycare *notify.Mailbox
		if dc := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.DaycareSendGridAPIKey,
			FromEmail: cfg.DaycareFromEmail,
			FromName:  cfg.DaycareFromName,
		}, logger); dc != nil {
			daycare = &notify.Mailbox{Sender: dc, From: dc.From()}
		}
		return notify.NewDispatcher(notify.Mailbox{Sender: def, From: def.From()}, daycare, logger)

	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		client := sesv2.NewFromConfig(awsCfg)
		def := notify.NewSESSender(client, notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		var daycare *notify.Mailbox
		if cfg.DaycareFromEmail != "" {
			dc := notify.NewSESSender(client, notify.SESConfig{
				FromEmail: cfg.DaycareFromEmail,
				FromName:  cfg.DaycareFromName,
			}, logger)
			daycare = &notify.Mailbox{Sender: dc, From: dc.From()}
		}
		return notify.NewDispatcher(notify.Mailbox{Sender: def, From: def.From()}, daycare, logger)

	default:
		logger.Warn("email sending disabled, using stub sender", "provider", provider)
		stub := notify.NewStubEmailSender(logger)
		return notify.NewDispatcher(notify.Mailbox{Sender: stub, From: cfg.SendGridFromEmail}, nil, logger)
	}
}
