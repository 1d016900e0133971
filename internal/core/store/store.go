// Package store holds all mutable session state behind a single reducer-style
// dispatch entry point. Every mutation funnels through Dispatch, which applies
// a pure transition function under a lock, so transitions are atomic and
// serial in call order regardless of how many goroutines drive the API.
package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/core/domain"
)

// Store owns the session state for its whole lifetime.
type Store struct {
	mu       sync.Mutex
	state    State
	notifSeq atomic.Int64
	ttl      time.Duration
	log      zerolog.Logger
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithNotificationTTL makes the store remove each notification automatically
// after d has elapsed. A non-positive d disables auto-expiry.
func WithNotificationTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// New returns an empty session store.
func New(log zerolog.Logger, opts ...Option) *Store {
	s := &Store{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies one action and returns the resulting snapshot. Safe for
// concurrent use; actions are applied serially in lock acquisition order.
func (s *Store) Dispatch(action Action) State {
	if show, ok := action.(ShowNotification); ok && show.ID == 0 {
		show.ID = s.notifSeq.Add(1)
		action = show
	}

	s.mu.Lock()
	s.state = reduce(s.state, action)
	snap := s.state.clone()
	s.mu.Unlock()

	s.log.Debug().
		Str("action", action.actionName()).
		Int("cart_lines", len(snap.Cart)).
		Msg("action dispatched")

	if show, ok := action.(ShowNotification); ok && s.ttl > 0 {
		id := show.ID
		time.AfterFunc(s.ttl, func() {
			s.Dispatch(HideNotification{ID: id})
		})
	}

	return snap
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// reduce is the pure transition function: same snapshot plus same action
// always yields the same result.
func reduce(s State, action Action) State {
	switch a := action.(type) {
	case AddToCart:
		for i, line := range s.Cart {
			if line.Product.ID == a.Product.ID {
				cart := make([]domain.CartLine, len(s.Cart))
				copy(cart, s.Cart)
				cart[i].Quantity++
				s.Cart = cart
				s.CartOpen = true
				return s
			}
		}
		cart := make([]domain.CartLine, len(s.Cart), len(s.Cart)+1)
		copy(cart, s.Cart)
		s.Cart = append(cart, domain.CartLine{Product: a.Product, Quantity: 1})
		s.CartOpen = true
		return s

	case RemoveFromCart:
		cart := make([]domain.CartLine, 0, len(s.Cart))
		for _, line := range s.Cart {
			if line.Product.ID != a.ProductID {
				cart = append(cart, line)
			}
		}
		s.Cart = cart
		return s

	case UpdateQuantity:
		for i, line := range s.Cart {
			if line.Product.ID == a.ProductID {
				cart := make([]domain.CartLine, len(s.Cart))
				copy(cart, s.Cart)
				cart[i].Quantity = max(1, a.Quantity)
				s.Cart = cart
				return s
			}
		}
		return s

	case ClearCart:
		s.Cart = nil
		return s

	case SetUser:
		s.User = a.User
		return s

	case ToggleCart:
		s.CartOpen = !s.CartOpen
		return s

	case AddOrder:
		if s.User == nil {
			return s
		}
		u := *s.User
		orders := make([]domain.Order, 0, len(u.Orders)+1)
		orders = append(orders, a.Order)
		orders = append(orders, u.Orders...)
		u.Orders = orders
		s.User = &u
		s.Cart = nil
		return s

	case ShowNotification:
		notifs := make([]domain.Notification, len(s.Notifications), len(s.Notifications)+1)
		copy(notifs, s.Notifications)
		s.Notifications = append(notifs, domain.Notification{
			ID:      a.ID,
			Kind:    a.Kind,
			Message: a.Message,
		})
		return s

	case HideNotification:
		notifs := make([]domain.Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != a.ID {
				notifs = append(notifs, n)
			}
		}
		s.Notifications = notifs
		return s
	}

	return s
}
