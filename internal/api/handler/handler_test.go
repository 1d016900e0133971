package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
)

// newContext builds an echo.Context for a single handler invocation. JSON
// bodies are wired through the same validator the router installs.
func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(r, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubCatalog struct {
	products  []domain.Product
	lastInput ports.ListProductsInput
}

func (s *stubCatalog) List(input ports.ListProductsInput) []domain.Product {
	s.lastInput = input
	return s.products
}

func (s *stubCatalog) Get(id int) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubCatalog) Categories() []string {
	return []string{domain.CategoryAll, "Audio"}
}

type stubCheckout struct {
	state        ports.CheckoutState
	shippingErr  error
	backErr      error
	paymentErr   error
	result       *ports.PaymentResult
	lastShipping ports.ShippingInput
	lastCard     ports.CardDetails
	resets       int
}

func (s *stubCheckout) State() ports.CheckoutState { return s.state }

func (s *stubCheckout) SubmitShipping(input ports.ShippingInput) error {
	s.lastShipping = input
	return s.shippingErr
}

func (s *stubCheckout) Back() error { return s.backErr }

func (s *stubCheckout) SubmitPayment(_ context.Context, card ports.CardDetails) (*ports.PaymentResult, error) {
	s.lastCard = card
	if s.paymentErr != nil {
		return nil, s.paymentErr
	}
	return s.result, nil
}

func (s *stubCheckout) Reset() { s.resets++ }

type stubAuth struct {
	loginErr  error
	lastEmail string
}

func (s *stubAuth) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.lastEmail = email
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "token-u1", &domain.User{ID: "u1", Name: "Jan Kowalski", Email: email}, nil
}

func (s *stubAuth) DemoLogin() (string, *domain.User, error) {
	return "token-demo", &domain.User{ID: "demo", Name: "Demo User", Email: "demo@lumina.com"}, nil
}
