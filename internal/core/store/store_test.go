package store

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func testProduct(id int, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Product", Price: price, Category: "Audio"}
}

func newTestStore() *Store {
	return New(discardLogger)
}

// ---------------------------------------------------------------------------
// Cart actions
// ---------------------------------------------------------------------------

func TestStore_AddToCart_RepeatedAddsIncrementQuantity(t *testing.T) {
	s := newTestStore()
	p := testProduct(1, 100)

	var snap State
	for i := 0; i < 5; i++ {
		snap = s.Dispatch(AddToCart{Product: p})
	}

	if len(snap.Cart) != 1 {
		t.Fatalf("expected exactly 1 cart line, got %d", len(snap.Cart))
	}
	if snap.Cart[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", snap.Cart[0].Quantity)
	}
}

func TestStore_AddToCart_OpensCartPanel(t *testing.T) {
	s := newTestStore()

	snap := s.Dispatch(AddToCart{Product: testProduct(1, 10)})
	if !snap.CartOpen {
		t.Error("adding to cart must open the cart panel")
	}
}

func TestStore_AddToCart_DistinctProductsGetOwnLines(t *testing.T) {
	s := newTestStore()

	s.Dispatch(AddToCart{Product: testProduct(1, 10)})
	snap := s.Dispatch(AddToCart{Product: testProduct(2, 20)})

	if len(snap.Cart) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(snap.Cart))
	}
}

func TestStore_UpdateQuantity_ClampsToOne(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	for _, q := range []int{0, -1, -100} {
		snap := s.Dispatch(UpdateQuantity{ProductID: 1, Quantity: q})
		if snap.Cart[0].Quantity != 1 {
			t.Errorf("quantity %d: expected clamp to 1, got %d", q, snap.Cart[0].Quantity)
		}
	}
}

func TestStore_UpdateQuantity_SetsValue(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	snap := s.Dispatch(UpdateQuantity{ProductID: 1, Quantity: 7})
	if snap.Cart[0].Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", snap.Cart[0].Quantity)
	}
}

func TestStore_UpdateQuantity_MissingLineIsNoOp(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	snap := s.Dispatch(UpdateQuantity{ProductID: 99, Quantity: 3})
	if len(snap.Cart) != 1 || snap.Cart[0].Quantity != 1 {
		t.Error("updating a missing line must not change the cart")
	}
}

func TestStore_RemoveFromCart_Idempotent(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})
	s.Dispatch(AddToCart{Product: testProduct(2, 20)})

	first := s.Dispatch(RemoveFromCart{ProductID: 1})
	if len(first.Cart) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(first.Cart))
	}

	second := s.Dispatch(RemoveFromCart{ProductID: 1})
	if len(second.Cart) != 1 || second.Cart[0].Product.ID != 2 {
		t.Error("removing an already-removed line must leave the cart unchanged")
	}
}

func TestStore_ClearCart(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})
	s.Dispatch(AddToCart{Product: testProduct(2, 20)})

	snap := s.Dispatch(ClearCart{})
	if len(snap.Cart) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(snap.Cart))
	}
}

func TestStore_CartTotal(t *testing.T) {
	s := newTestStore()
	a := testProduct(1, 100)
	b := testProduct(2, 50)

	s.Dispatch(AddToCart{Product: a})
	s.Dispatch(AddToCart{Product: a})
	snap := s.Dispatch(AddToCart{Product: b})

	if got := snap.Total(); got != 250.00 {
		t.Errorf("expected total 250.00, got %.2f", got)
	}
}

// ---------------------------------------------------------------------------
// User and orders
// ---------------------------------------------------------------------------

func TestStore_ToggleCart(t *testing.T) {
	s := newTestStore()

	if snap := s.Dispatch(ToggleCart{}); !snap.CartOpen {
		t.Error("first toggle must open the cart")
	}
	if snap := s.Dispatch(ToggleCart{}); snap.CartOpen {
		t.Error("second toggle must close the cart")
	}
}

func TestStore_SetUser_ReplacesAndClears(t *testing.T) {
	s := newTestStore()

	snap := s.Dispatch(SetUser{User: &domain.User{ID: "u1", Name: "Jan"}})
	if snap.User == nil || snap.User.ID != "u1" {
		t.Fatal("expected user u1 to be set")
	}

	snap = s.Dispatch(SetUser{User: nil})
	if snap.User != nil {
		t.Error("expected logout to clear the user")
	}
}

func TestStore_AddOrder_NoUserIsNoOp(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	before := s.Snapshot()
	after := s.Dispatch(AddOrder{Order: domain.Order{ID: "txn_1", Total: 10}})

	if after.User != nil {
		t.Error("no user must remain set")
	}
	if len(after.Cart) != len(before.Cart) {
		t.Error("cart must be untouched when AddOrder is a no-op")
	}
}

func TestStore_AddOrder_PrependsAndClearsCartAtomically(t *testing.T) {
	s := newTestStore()
	s.Dispatch(SetUser{User: &domain.User{ID: "u1", Name: "Jan"}})
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})
	s.Dispatch(AddOrder{Order: domain.Order{ID: "txn_old"}})

	s.Dispatch(AddToCart{Product: testProduct(2, 20)})
	snap := s.Dispatch(AddOrder{Order: domain.Order{ID: "txn_new"}})

	if len(snap.User.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(snap.User.Orders))
	}
	if snap.User.Orders[0].ID != "txn_new" {
		t.Errorf("newest order must be first, got %s", snap.User.Orders[0].ID)
	}
	if len(snap.Cart) != 0 {
		t.Error("cart must be cleared in the same transition as the order commit")
	}
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

func TestStore_ShowNotification_AssignsUniqueIDs(t *testing.T) {
	s := newTestStore()

	a := s.Dispatch(ShowNotification{Kind: domain.NotificationSuccess, Message: "one"})
	b := s.Dispatch(ShowNotification{Kind: domain.NotificationError, Message: "two"})

	if len(b.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(b.Notifications))
	}
	if a.Notifications[0].ID == b.Notifications[1].ID {
		t.Error("notification ids must be unique")
	}
	if b.Notifications[1].ID <= b.Notifications[0].ID {
		t.Error("notification ids must be monotonically increasing")
	}
}

func TestStore_HideNotification_Idempotent(t *testing.T) {
	s := newTestStore()
	snap := s.Dispatch(ShowNotification{Kind: domain.NotificationSuccess, Message: "hello"})
	id := snap.Notifications[0].ID

	first := s.Dispatch(HideNotification{ID: id})
	if len(first.Notifications) != 0 {
		t.Fatalf("expected notification removed, got %d left", len(first.Notifications))
	}

	second := s.Dispatch(HideNotification{ID: id})
	if len(second.Notifications) != 0 {
		t.Error("hiding an already-hidden notification must be a no-op")
	}
}

func TestStore_Notification_ExpiresAfterTTL(t *testing.T) {
	s := New(discardLogger, WithNotificationTTL(20*time.Millisecond))

	snap := s.Dispatch(ShowNotification{Kind: domain.NotificationSuccess, Message: "transient"})
	if len(snap.Notifications) != 1 {
		t.Fatal("notification must appear immediately")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(s.Snapshot().Notifications) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("notification did not expire within the TTL")
}

// ---------------------------------------------------------------------------
// Snapshot semantics
// ---------------------------------------------------------------------------

func TestStore_SnapshotIsIsolatedFromLaterDispatches(t *testing.T) {
	s := newTestStore()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	snap := s.Snapshot()
	s.Dispatch(AddToCart{Product: testProduct(1, 10)})

	if snap.Cart[0].Quantity != 1 {
		t.Error("earlier snapshot must not observe later transitions")
	}
}

func TestStore_ReducerIsDeterministic(t *testing.T) {
	base := State{Cart: []domain.CartLine{{Product: testProduct(1, 10), Quantity: 2}}}
	action := UpdateQuantity{ProductID: 1, Quantity: 4}

	first := reduce(base, action)
	second := reduce(base, action)

	if first.Cart[0].Quantity != second.Cart[0].Quantity {
		t.Error("same snapshot and action must yield the same result")
	}
	if base.Cart[0].Quantity != 2 {
		t.Error("reduce must not mutate its input snapshot")
	}
}
