// Package payment provides the simulated payment gateway used by the demo
// storefront. It preserves the contract of a real gateway: a single round
// trip with artificial latency and exactly two outcomes.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
)

// rejectCVC is the sentinel CVC value the simulator declines.
const rejectCVC = "000"

// Simulator implements ports.PaymentGateway with a fixed artificial delay.
type Simulator struct {
	delay time.Duration
	log   zerolog.Logger
}

func NewSimulator(delay time.Duration, log zerolog.Logger) *Simulator {
	return &Simulator{delay: delay, log: log}
}

// Process charges the given amount. The ctx parameter is deliberately not
// observed during the delay: a started charge cannot be aborted and always
// resolves to success or rejection.
func (s *Simulator) Process(_ context.Context, card ports.CardDetails, amount float64) (*ports.Transaction, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	if card.CVC == rejectCVC {
		s.log.Info().Float64("amount", amount).Msg("payment declined")
		return nil, domain.ErrPaymentRejected
	}

	txn := &ports.Transaction{
		ID:     "txn_" + uuid.NewString(),
		Status: "success",
	}
	s.log.Info().Str("transaction_id", txn.ID).Float64("amount", amount).Msg("payment captured")
	return txn, nil
}
