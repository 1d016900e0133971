package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luminashop/storefront/internal/api"
	"github.com/luminashop/storefront/internal/core/service"
	"github.com/luminashop/storefront/internal/core/store"
	"github.com/luminashop/storefront/internal/infrastructure/catalog"
	"github.com/luminashop/storefront/internal/infrastructure/config"
	"github.com/luminashop/storefront/internal/infrastructure/navigation"
	"github.com/luminashop/storefront/internal/infrastructure/payment"
	"github.com/luminashop/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Session state ---
	sessionStore := store.New(
		log.With().Str("component", "store").Logger(),
		store.WithNotificationTTL(cfg.Session.NotificationTTL),
	)
	bus := navigation.NewBus(log.With().Str("component", "navigation").Logger())

	// --- Services ---
	catalogService := service.NewCatalogService(catalog.Products())
	gateway := payment.NewSimulator(cfg.Mock.PaymentDelay, log.With().Str("component", "payment").Logger())
	checkoutService := service.NewCheckoutService(sessionStore, gateway, log.With().Str("component", "checkout").Logger())
	authService := service.NewAuthService(cfg.JWTSecret, cfg.Session.TokenTTL, cfg.Mock.LoginDelay, log.With().Str("component", "auth").Logger())

	e := api.NewRouter(ctx, api.Dependencies{
		Store:     sessionStore,
		Catalog:   catalogService,
		Checkout:  checkoutService,
		Auth:      authService,
		Bus:       bus,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("storefront API stopped")
}
