package ports

import (
	"context"

	"github.com/luminashop/storefront/internal/core/domain"
)

// CheckoutStep is one of the three checkout flow states.
type CheckoutStep string

const (
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepSuccess  CheckoutStep = "success"
)

// ShippingInput is the first checkout form. All fields are required; no
// further validation is applied.
type ShippingInput struct {
	Name       string
	Email      string
	Address    string
	City       string
	PostalCode string
}

// CheckoutState is a view of the flow for rendering.
type CheckoutState struct {
	Step     CheckoutStep
	Shipping ShippingInput
	// Total is recomputed from the live cart on every call.
	Total float64
	Items []domain.CartLine
	// CartEmpty signals the empty-cart guard: outside the success step the
	// flow refuses to render the form and offers navigation back instead.
	CartEmpty bool
	// Processing is true while a payment round trip is pending.
	Processing bool
}

// PaymentResult is returned on a successful payment submission.
type PaymentResult struct {
	Order         domain.Order
	TransactionID string
}

// CheckoutService drives the shipping → payment → success flow that converts
// a cart into an order.
type CheckoutService interface {
	State() CheckoutState
	SubmitShipping(input ShippingInput) error
	// Back returns from the payment step to the shipping step.
	Back() error
	SubmitPayment(ctx context.Context, card CardDetails) (*PaymentResult, error)
	// Reset abandons the flow (navigation away). Any payment still in flight
	// resolves, but its result no longer touches the session state.
	Reset()
}
