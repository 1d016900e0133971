package store

import "github.com/luminashop/storefront/internal/core/domain"

// State is one immutable snapshot of the session: cart, user, cart-panel flag
// and pending notifications. Dispatch always produces a complete new snapshot;
// callers never observe a partial update.
type State struct {
	Cart          []domain.CartLine     `json:"cart"`
	User          *domain.User          `json:"user"`
	CartOpen      bool                  `json:"cart_open"`
	Notifications []domain.Notification `json:"notifications"`
}

// Total returns the current cart total.
func (s State) Total() float64 {
	return domain.CartTotal(s.Cart)
}

// clone deep-copies the mutable parts of the snapshot. Orders are immutable
// once created, so their item slices are shared.
func (s State) clone() State {
	out := s
	if s.Cart != nil {
		out.Cart = make([]domain.CartLine, len(s.Cart))
		copy(out.Cart, s.Cart)
	}
	if s.Notifications != nil {
		out.Notifications = make([]domain.Notification, len(s.Notifications))
		copy(out.Notifications, s.Notifications)
	}
	if s.User != nil {
		u := *s.User
		if s.User.Orders != nil {
			u.Orders = make([]domain.Order, len(s.User.Orders))
			copy(u.Orders, s.User.Orders)
		}
		out.User = &u
	}
	return out
}
