package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrPaymentRejected is the single business error of the checkout flow.
	// Its text is the human-readable reason surfaced to the user.
	ErrPaymentRejected = errors.New("payment declined by bank")

	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidStep       = errors.New("invalid checkout step")
	ErrPaymentInProgress = errors.New("payment already in progress")
	ErrIncompleteForm    = errors.New("shipping form incomplete")
	// ErrCheckoutAbandoned reports that a payment resolved after the flow was
	// reset; the result was discarded without touching session state.
	ErrCheckoutAbandoned = errors.New("checkout flow abandoned")
	ErrNotLoggedIn       = errors.New("no user logged in")
)
