package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
	"github.com/luminashop/storefront/internal/core/store"
)

// CheckoutService drives the two-step checkout: shipping → payment → success.
// The flow refuses to operate on an empty cart (outside the terminal success
// state) and recomputes the total from the live cart on every use.
//
// A generation counter guards against abandoned flows: Reset bumps it, and a
// payment that resolves under a stale generation is dropped without touching
// the session store.
type CheckoutService struct {
	store   *store.Store
	gateway ports.PaymentGateway
	log     zerolog.Logger

	mu         sync.Mutex
	step       ports.CheckoutStep
	shipping   ports.ShippingInput
	processing bool
	generation uint64
}

func NewCheckoutService(st *store.Store, gateway ports.PaymentGateway, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		store:   st,
		gateway: gateway,
		log:     log,
		step:    ports.StepShipping,
	}
}

// State returns a render view of the flow against the current cart.
func (s *CheckoutService) State() ports.CheckoutState {
	snap := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.CheckoutState{
		Step:       s.step,
		Shipping:   s.shipping,
		Total:      snap.Total(),
		Items:      snap.Cart,
		CartEmpty:  len(snap.Cart) == 0,
		Processing: s.processing,
	}
}

// SubmitShipping stores the shipping form and advances to the payment step.
// All form fields are required; no further validation is applied.
func (s *CheckoutService) SubmitShipping(input ports.ShippingInput) error {
	if input.Name == "" || input.Email == "" || input.Address == "" ||
		input.City == "" || input.PostalCode == "" {
		return fmt.Errorf("submit shipping: %w", domain.ErrIncompleteForm)
	}
	if len(s.store.Snapshot().Cart) == 0 {
		return fmt.Errorf("submit shipping: %w", domain.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != ports.StepShipping {
		return fmt.Errorf("submit shipping: %w", domain.ErrInvalidStep)
	}
	s.shipping = input
	s.step = ports.StepPayment
	return nil
}

// Back returns from the payment step to the shipping step.
func (s *CheckoutService) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != ports.StepPayment {
		return fmt.Errorf("checkout back: %w", domain.ErrInvalidStep)
	}
	s.step = ports.StepShipping
	return nil
}

// SubmitPayment charges the cart's current total through the gateway. On
// success it commits the order and clears the cart as one store transition;
// on rejection the flow stays in the payment step so the user can retry.
// While a charge is in flight, resubmission is refused.
func (s *CheckoutService) SubmitPayment(ctx context.Context, card ports.CardDetails) (*ports.PaymentResult, error) {
	s.mu.Lock()
	if s.step != ports.StepPayment {
		s.mu.Unlock()
		return nil, fmt.Errorf("submit payment: %w", domain.ErrInvalidStep)
	}
	if s.processing {
		s.mu.Unlock()
		return nil, fmt.Errorf("submit payment: %w", domain.ErrPaymentInProgress)
	}

	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("submit payment: %w", domain.ErrEmptyCart)
	}

	// A guest user is created from the shipping form so the order has an
	// owner even without a login.
	if snap.User == nil {
		s.store.Dispatch(store.SetUser{User: &domain.User{
			ID:    "guest",
			Name:  s.shipping.Name,
			Email: s.shipping.Email,
		}})
	}

	s.processing = true
	gen := s.generation
	total := snap.Total()
	items := snap.Cart
	s.mu.Unlock()

	txn, err := s.gateway.Process(ctx, card, total)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.processing = false

	if gen != s.generation {
		s.log.Warn().
			Str("reason", "flow reset while payment in flight").
			Bool("charged", err == nil).
			Msg("payment result discarded")
		return nil, fmt.Errorf("submit payment: %w", domain.ErrCheckoutAbandoned)
	}

	if err != nil {
		s.store.Dispatch(store.ShowNotification{
			Kind:    domain.NotificationError,
			Message: err.Error(),
		})
		s.log.Info().Err(err).Float64("amount", total).Msg("payment rejected")
		return nil, fmt.Errorf("submit payment: %w", err)
	}

	order := domain.Order{
		ID:        txn.ID,
		CreatedAt: time.Now().UTC(),
		Items:     items,
		Total:     total,
		Status:    domain.OrderStatusPaid,
	}
	s.store.Dispatch(store.AddOrder{Order: order})
	s.store.Dispatch(store.ShowNotification{
		Kind:    domain.NotificationSuccess,
		Message: "payment accepted",
	})
	s.step = ports.StepSuccess

	s.log.Info().
		Str("transaction_id", txn.ID).
		Float64("amount", total).
		Int("items", len(items)).
		Msg("order placed")

	return &ports.PaymentResult{Order: order, TransactionID: txn.ID}, nil
}

// Reset abandons the flow and returns it to the shipping step. A payment
// still in flight will resolve but its result is discarded.
func (s *CheckoutService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = ports.StepShipping
	s.shipping = ports.ShippingInput{}
	s.generation++
}
