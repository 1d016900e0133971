package ports

import "context"

// CardDetails is the payment input collected by the checkout form.
type CardDetails struct {
	Number string
	Expiry string
	CVC    string
}

// Transaction is the gateway's success response.
type Transaction struct {
	ID     string
	Status string
}

// PaymentGateway approximates a real payment provider: one round trip, one of
// exactly two outcomes (a transaction or domain.ErrPaymentRejected), no
// partial or streaming state. A started charge always resolves; the delay is
// not cancellable through ctx.
type PaymentGateway interface {
	Process(ctx context.Context, card CardDetails, amount float64) (*Transaction, error)
}
