package store

import "github.com/luminashop/storefront/internal/core/domain"

// Action is one of the fixed set of state transitions the store understands.
// Actions referencing missing identifiers degrade to no-ops, never errors.
type Action interface {
	actionName() string
}

// AddToCart increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. Opens the cart panel as a side effect.
type AddToCart struct {
	Product domain.Product
}

// RemoveFromCart deletes the line matching ProductID, if present.
type RemoveFromCart struct {
	ProductID int
}

// UpdateQuantity sets the matching line's quantity to max(1, Quantity).
type UpdateQuantity struct {
	ProductID int
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// SetUser replaces the current user. A nil User logs out.
type SetUser struct {
	User *domain.User
}

// ToggleCart flips the cart-panel flag.
type ToggleCart struct{}

// AddOrder prepends the order to the user's history and clears the cart in the
// same transition. No-op when no user is set.
type AddOrder struct {
	Order domain.Order
}

// ShowNotification appends a notification. ID is assigned by the store at
// dispatch time when left zero; callers normally leave it zero.
type ShowNotification struct {
	Kind    domain.NotificationKind
	Message string
	ID      int64
}

// HideNotification removes the notification with the given ID, if present.
type HideNotification struct {
	ID int64
}

func (AddToCart) actionName() string        { return "add_to_cart" }
func (RemoveFromCart) actionName() string   { return "remove_from_cart" }
func (UpdateQuantity) actionName() string   { return "update_quantity" }
func (ClearCart) actionName() string        { return "clear_cart" }
func (SetUser) actionName() string          { return "set_user" }
func (ToggleCart) actionName() string       { return "toggle_cart" }
func (AddOrder) actionName() string         { return "add_order" }
func (ShowNotification) actionName() string { return "show_notification" }
func (HideNotification) actionName() string { return "hide_notification" }
