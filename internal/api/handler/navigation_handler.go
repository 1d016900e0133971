package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/core/ports"
	"github.com/luminashop/storefront/internal/infrastructure/navigation"
)

// NavigationHandler is the top-level view selector: it publishes navigation
// requests on the bus and tracks the view currently rendered. Leaving the
// checkout view abandons any in-progress checkout flow, so a payment that
// resolves afterwards cannot touch the session.
type NavigationHandler struct {
	bus      *navigation.Bus
	checkout ports.CheckoutService

	mu   sync.RWMutex
	view navigation.View
}

func NewNavigationHandler(bus *navigation.Bus, checkout ports.CheckoutService) *NavigationHandler {
	return &NavigationHandler{bus: bus, checkout: checkout, view: navigation.ViewHome}
}

// Start consumes navigation signals until ctx is cancelled.
func (h *NavigationHandler) Start(ctx context.Context) {
	ch, cancel := h.bus.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				h.apply(v)
			}
		}
	}()
}

func (h *NavigationHandler) apply(v navigation.View) {
	h.mu.Lock()
	prev := h.view
	h.view = v
	h.mu.Unlock()

	if prev == navigation.ViewCheckout && v != navigation.ViewCheckout {
		h.checkout.Reset()
	}
}

// Current handles GET /v1/navigation.
//
// @Summary      Get the currently rendered view
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  navigationResponse
// @Router       /v1/navigation [get]
func (h *NavigationHandler) Current(c echo.Context) error {
	h.mu.RLock()
	view := h.view
	h.mu.RUnlock()

	return c.JSON(http.StatusOK, navigationResponse{View: string(view)})
}

// Navigate handles POST /v1/navigation — broadcasts a view change request.
//
// @Summary      Request navigation to a view
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "Target view"
// @Success      202   {object}  navigationResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/navigation [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	h.bus.Publish(navigation.View(req.View))
	return c.JSON(http.StatusAccepted, navigationResponse{View: req.View})
}
