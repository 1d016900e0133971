package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/api/metrics"
	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
	"github.com/luminashop/storefront/internal/core/store"
)

// CartHandler exposes the session cart. Every mutation is a single store
// dispatch, so cart edits stay atomic even with concurrent requests.
type CartHandler struct {
	store   *store.Store
	catalog ports.CatalogService
}

func NewCartHandler(st *store.Store, catalog ports.CatalogService) *CartHandler {
	return &CartHandler{store: st, catalog: catalog}
}

func cartView(s store.State) cartResponse {
	return cartResponse{
		Items: s.Cart,
		Total: s.Total(),
		Count: domain.CartCount(s.Cart),
		Open:  s.CartOpen,
	}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, cartView(h.store.Snapshot()))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product to add"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	h.store.Dispatch(store.AddToCart{Product: *product})
	snap := h.store.Dispatch(store.ShowNotification{
		Kind:    domain.NotificationSuccess,
		Message: "added to cart",
	})
	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	metrics.NotificationsShownTotal.WithLabelValues(string(domain.NotificationSuccess)).Inc()

	return c.JSON(http.StatusOK, cartView(snap))
}

// UpdateItem handles PATCH /v1/cart/items/:id.
//
// @Summary      Update the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Product ID"
// @Param        body  body      updateCartItemRequest  true  "New quantity (clamped to a minimum of 1)"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	snap := h.store.Dispatch(store.UpdateQuantity{ProductID: id, Quantity: req.Quantity})
	metrics.CartOperationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, cartView(snap))
}

// RemoveItem handles DELETE /v1/cart/items/:id. Removing an absent line is a
// no-op, not an error.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  cartResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
	}

	snap := h.store.Dispatch(store.RemoveFromCart{ProductID: id})
	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, cartView(snap))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	snap := h.store.Dispatch(store.ClearCart{})
	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()

	return c.JSON(http.StatusOK, cartView(snap))
}

// Toggle handles POST /v1/cart/toggle.
//
// @Summary      Flip the cart panel flag
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart/toggle [post]
func (h *CartHandler) Toggle(c echo.Context) error {
	snap := h.store.Dispatch(store.ToggleCart{})
	metrics.CartOperationsTotal.WithLabelValues("toggle").Inc()

	return c.JSON(http.StatusOK, cartView(snap))
}
