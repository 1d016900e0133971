package handler

import "github.com/luminashop/storefront/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Catalog ---

type productListResponse struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// --- Cart ---

type addCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// cartResponse is the full cart view: lines, derived totals and the panel flag.
type cartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
	Open  bool              `json:"open"`
}

// --- Checkout ---

type shippingRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Address    string `json:"address"     validate:"required"`
	City       string `json:"city"        validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type paymentRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	Expiry     string `json:"expiry"      validate:"required"`
	CVC        string `json:"cvc"         validate:"required,min=3"`
}

type checkoutStateResponse struct {
	Step       string            `json:"step"`
	Items      []domain.CartLine `json:"items"`
	Total      float64           `json:"total"`
	CartEmpty  bool              `json:"cart_empty"`
	Processing bool              `json:"processing"`
}

type paymentResponse struct {
	TransactionID string       `json:"transaction_id"`
	Order         domain.Order `json:"order"`
}

// --- Notifications ---

type notificationListResponse struct {
	Items []domain.Notification `json:"items"`
}

// --- Navigation ---

type navigateRequest struct {
	View string `json:"view" validate:"required,oneof=home checkout profile"`
}

type navigationResponse struct {
	View string `json:"view"`
}

// --- Profile ---

type profileResponse struct {
	User   *domain.User   `json:"user"`
	Orders []domain.Order `json:"orders"`
}
