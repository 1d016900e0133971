package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/api/metrics"
	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
)

// CheckoutHandler drives the checkout flow over HTTP.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func checkoutView(s ports.CheckoutState) checkoutStateResponse {
	return checkoutStateResponse{
		Step:       string(s.Step),
		Items:      s.Items,
		Total:      s.Total,
		CartEmpty:  s.CartEmpty,
		Processing: s.Processing,
	}
}

// State handles GET /v1/checkout.
//
// @Summary      Get the current checkout state
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  checkoutStateResponse
// @Router       /v1/checkout [get]
func (h *CheckoutHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, checkoutView(h.checkout.State()))
}

// SubmitShipping handles POST /v1/checkout/shipping.
//
// @Summary      Submit the shipping form and advance to payment
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      shippingRequest  true  "Shipping details (all fields required)"
// @Success      200   {object}  checkoutStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/checkout/shipping [post]
func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	var req shippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.checkout.SubmitShipping(ports.ShippingInput{
		Name:       req.Name,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, checkoutView(h.checkout.State()))
}

// Back handles POST /v1/checkout/back.
//
// @Summary      Return from the payment step to shipping
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  checkoutStateResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/checkout/back [post]
func (h *CheckoutHandler) Back(c echo.Context) error {
	if err := h.checkout.Back(); err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, checkoutView(h.checkout.State()))
}

// SubmitPayment handles POST /v1/checkout/payment.
//
// @Summary      Submit payment details and place the order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      paymentRequest  true  "Card details"
// @Success      200   {object}  paymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      402   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/checkout/payment [post]
func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := h.checkout.SubmitPayment(c.Request().Context(), ports.CardDetails{
		Number: req.CardNumber,
		Expiry: req.Expiry,
		CVC:    req.CVC,
	})
	metrics.PaymentDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrPaymentRejected) {
			metrics.PaymentsTotal.WithLabelValues("rejected").Inc()
			metrics.NotificationsShownTotal.WithLabelValues(string(domain.NotificationError)).Inc()
			return c.JSON(http.StatusPaymentRequired, errorResponse{Error: domain.ErrPaymentRejected.Error()})
		}
		return checkoutError(c, err)
	}

	metrics.PaymentsTotal.WithLabelValues("success").Inc()
	metrics.OrdersPlacedTotal.Inc()
	metrics.NotificationsShownTotal.WithLabelValues(string(domain.NotificationSuccess)).Inc()

	return c.JSON(http.StatusOK, paymentResponse{
		TransactionID: result.TransactionID,
		Order:         result.Order,
	})
}

// Reset handles POST /v1/checkout/reset — abandoning the flow.
//
// @Summary      Abandon the checkout flow
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  checkoutStateResponse
// @Router       /v1/checkout/reset [post]
func (h *CheckoutHandler) Reset(c echo.Context) error {
	h.checkout.Reset()
	return c.JSON(http.StatusOK, checkoutView(h.checkout.State()))
}

// checkoutError maps checkout flow errors onto HTTP statuses.
func checkoutError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.JSON(http.StatusConflict, errorResponse{Error: "cart is empty"})
	case errors.Is(err, domain.ErrInvalidStep):
		return c.JSON(http.StatusConflict, errorResponse{Error: "invalid checkout step"})
	case errors.Is(err, domain.ErrPaymentInProgress):
		return c.JSON(http.StatusConflict, errorResponse{Error: "payment already in progress"})
	case errors.Is(err, domain.ErrIncompleteForm):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCheckoutAbandoned):
		return c.JSON(http.StatusGone, errorResponse{Error: "checkout flow abandoned"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
