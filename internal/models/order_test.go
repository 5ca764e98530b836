package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func checkoutFixture(t *testing.T) (*Cart, ShippingInfo, PaymentRecord) {
	t.Helper()
	cart := NewCart()
	book := testBook("The Great Gatsby", 15.99)
	if err := cart.AddBook(&book, 2); err != nil {
		t.Fatalf("AddBook returned error: %v", err)
	}
	shipping := ShippingInfo{Name: "Test User", Address: "123 Test Street", City: "Test City", ZipCode: "12345"}
	return cart, shipping, PaymentRecord{Method: "cash"}
}

func TestNewOrderSnapshotsCart(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	total := cart.TotalPrice()

	order, err := NewOrder("ORD001", "test@example.com", cart.Items(), shipping, pay, total)
	if err != nil {
		t.Fatalf("NewOrder returned error: %v", err)
	}

	cart.Clear()

	if order.ItemCount() != 1 {
		t.Fatalf("expected 1 item entry in order after cart clear, got %d", order.ItemCount())
	}
	if !order.TotalAmount.Equal(total) {
		t.Fatalf("expected order total %s to survive cart clear, got %s", total, order.TotalAmount)
	}
	item, ok := order.Items()["The Great Gatsby"]
	if !ok || item.Quantity != 2 {
		t.Fatalf("expected snapshot entry with quantity 2, got %+v (present=%v)", item, ok)
	}
}

func TestNewOrderStampsDateAndStatus(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)

	before := time.Now()
	order, err := NewOrder("ORD002", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())
	if err != nil {
		t.Fatalf("NewOrder returned error: %v", err)
	}

	if order.Status() != StatusCreated {
		t.Fatalf("expected initial status %q, got %q", StatusCreated, order.Status())
	}
	if order.OrderDate.Before(before) || order.OrderDate.After(time.Now()) {
		t.Fatalf("order date %s outside construction window", order.OrderDate)
	}
	if order.ConfirmedAt() != nil {
		t.Fatal("expected no confirmation timestamp at construction")
	}
}

func TestNewOrderRejectsEmptyID(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	if _, err := NewOrder("  ", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice()); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
}

func TestNewOrderRejectsNonPositiveTotal(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	for _, total := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-1)} {
		if _, err := NewOrder("ORD003", "test@example.com", cart.Items(), shipping, pay, total); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for total=%s, got %v", total, err)
		}
	}
}

func TestMarkPaidAdvancesStatus(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD004", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())

	if err := order.MarkPaid("TXN-1"); err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if order.Status() != StatusPaid {
		t.Fatalf("expected status %q, got %q", StatusPaid, order.Status())
	}
	if order.TransactionID() != "TXN-1" {
		t.Fatalf("expected transaction id TXN-1, got %q", order.TransactionID())
	}
}

func TestMarkPaidRequiresTransactionID(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD005", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())

	if err := order.MarkPaid(" "); !errors.Is(err, ErrMissingTransaction) {
		t.Fatalf("expected ErrMissingTransaction, got %v", err)
	}
	if order.Status() != StatusCreated {
		t.Fatalf("status should not advance on rejected MarkPaid, got %q", order.Status())
	}
}

func TestMarkPaidTwiceFails(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD006", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())

	order.MarkPaid("TXN-1")
	if err := order.MarkPaid("TXN-2"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
	if order.TransactionID() != "TXN-1" {
		t.Fatalf("transaction id should not change, got %q", order.TransactionID())
	}
}

func TestConfirmUnpaidOrderFails(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD007", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())

	if err := order.Confirm(); !errors.Is(err, ErrNotPaid) {
		t.Fatalf("expected ErrNotPaid, got %v", err)
	}
}

func TestConfirmStampsTimestampAndIsTerminal(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD008", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())
	order.MarkPaid("TXN-1")

	if err := order.Confirm(); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if order.Status() != StatusConfirmed {
		t.Fatalf("expected status %q, got %q", StatusConfirmed, order.Status())
	}
	if order.ConfirmedAt() == nil {
		t.Fatal("expected confirmation timestamp to be stamped")
	}

	if err := order.Confirm(); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("expected ErrAlreadyConfirmed on second confirm, got %v", err)
	}
	if err := order.MarkPaid("TXN-2"); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid after confirmation, got %v", err)
	}
}

func TestOrderItemsReturnsCopy(t *testing.T) {
	cart, shipping, pay := checkoutFixture(t)
	order, _ := NewOrder("ORD009", "test@example.com", cart.Items(), shipping, pay, cart.TotalPrice())

	items := order.Items()
	delete(items, "The Great Gatsby")

	if order.ItemCount() != 1 {
		t.Fatal("mutating the returned items map must not change the order")
	}
}
