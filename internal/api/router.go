package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/api/handler"
	"github.com/luminashop/storefront/internal/api/middleware"
	"github.com/luminashop/storefront/internal/core/ports"
	"github.com/luminashop/storefront/internal/core/store"
	"github.com/luminashop/storefront/internal/infrastructure/navigation"
)

// Dependencies carries everything the router needs; main builds it once.
type Dependencies struct {
	Store     *store.Store
	Catalog   ports.CatalogService
	Checkout  ports.CheckoutService
	Auth      ports.AuthService
	Bus       *navigation.Bus
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The view tracker runs until ctx is cancelled.
func NewRouter(ctx context.Context, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			deps.Logger.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Store)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	cartHandler := handler.NewCartHandler(deps.Store, deps.Catalog)
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)
	notificationHandler := handler.NewNotificationHandler(deps.Store)
	navigationHandler := handler.NewNavigationHandler(deps.Bus, deps.Checkout)
	navigationHandler.Start(ctx)
	healthHandler := handler.NewHealthHandler()

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/demo", authHandler.DemoLogin)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Catalog ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/categories", catalogHandler.Categories)
	e.GET("/v1/products/:id", catalogHandler.Get)

	// --- Cart ---
	e.GET("/v1/cart", cartHandler.Get)
	e.DELETE("/v1/cart", cartHandler.Clear)
	e.POST("/v1/cart/toggle", cartHandler.Toggle)
	e.POST("/v1/cart/items", cartHandler.AddItem)
	e.PATCH("/v1/cart/items/:id", cartHandler.UpdateItem)
	e.DELETE("/v1/cart/items/:id", cartHandler.RemoveItem)

	// --- Checkout ---
	e.GET("/v1/checkout", checkoutHandler.State)
	e.POST("/v1/checkout/shipping", checkoutHandler.SubmitShipping)
	e.POST("/v1/checkout/back", checkoutHandler.Back)
	e.POST("/v1/checkout/payment", checkoutHandler.SubmitPayment)
	e.POST("/v1/checkout/reset", checkoutHandler.Reset)

	// --- Notifications ---
	e.GET("/v1/notifications", notificationHandler.List)
	e.DELETE("/v1/notifications/:id", notificationHandler.Dismiss)

	// --- Navigation ---
	e.GET("/v1/navigation", navigationHandler.Current)
	e.POST("/v1/navigation", navigationHandler.Navigate)

	// --- Profile (session token required) ---
	e.GET("/v1/profile", authHandler.Profile, authMiddleware)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
