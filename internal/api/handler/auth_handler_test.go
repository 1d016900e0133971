package handler

import (
	"net/http"
	"testing"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/store"
)

func TestAuthHandler_Login(t *testing.T) {
	st := store.New(discardLogger)
	stub := &stubAuth{}
	h := NewAuthHandler(stub, st)

	c, rec := newContext(t, http.MethodPost, "/auth/login", `{"email":"jan@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp authResponse
	decode(t, rec, &resp)
	if resp.Token == "" || resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("unexpected auth response: %+v", resp)
	}
	if stub.lastEmail != "jan@example.com" {
		t.Errorf("credentials not forwarded, got %q", stub.lastEmail)
	}

	if user := st.Snapshot().User; user == nil || user.ID != "u1" {
		t.Error("login must set the session user")
	}
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	h := NewAuthHandler(&stubAuth{}, store.New(discardLogger))

	cases := map[string]string{
		"missing password": `{"email":"jan@example.com"}`,
		"bad email":        `{"email":"nope","password":"secret"}`,
	}
	for name, body := range cases {
		c, rec := newContext(t, http.MethodPost, "/auth/login", body)
		if err := h.Login(c); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestAuthHandler_DemoLogin(t *testing.T) {
	st := store.New(discardLogger)
	h := NewAuthHandler(&stubAuth{}, st)

	c, rec := newContext(t, http.MethodPost, "/auth/demo", "")
	if err := h.DemoLogin(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp authResponse
	decode(t, rec, &resp)
	if resp.User == nil || resp.User.ID != "demo" {
		t.Errorf("expected the demo user, got %+v", resp.User)
	}
	if user := st.Snapshot().User; user == nil || user.ID != "demo" {
		t.Error("demo login must set the session user")
	}
}

func TestAuthHandler_Logout_ClearsUser(t *testing.T) {
	st := store.New(discardLogger)
	st.Dispatch(store.SetUser{User: &domain.User{ID: "u1"}})
	h := NewAuthHandler(&stubAuth{}, st)

	c, rec := newContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if st.Snapshot().User != nil {
		t.Error("logout must clear the session user")
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	st := store.New(discardLogger)
	st.Dispatch(store.SetUser{User: &domain.User{ID: "u1", Name: "Jan Kowalski"}})
	st.Dispatch(store.AddToCart{Product: domain.Product{ID: 1, Price: 10}})
	st.Dispatch(store.AddOrder{Order: domain.Order{ID: "txn_1", Total: 10, Status: domain.OrderStatusPaid}})
	h := NewAuthHandler(&stubAuth{}, st)

	c, rec := newContext(t, http.MethodGet, "/v1/profile", "")
	if err := h.Profile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp profileResponse
	decode(t, rec, &resp)
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected profile user: %+v", resp.User)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].ID != "txn_1" {
		t.Errorf("expected the order history, got %+v", resp.Orders)
	}
}

func TestAuthHandler_Profile_NotLoggedIn(t *testing.T) {
	h := NewAuthHandler(&stubAuth{}, store.New(discardLogger))

	c, rec := newContext(t, http.MethodGet, "/v1/profile", "")
	if err := h.Profile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
