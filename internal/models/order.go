package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks the order state machine. An order starts as created,
// becomes paid when the gateway approves it and confirmed once the one-time
// confirmation step runs. Confirmed is terminal.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusPaid      OrderStatus = "paid"
	StatusConfirmed OrderStatus = "confirmed"
)

var (
	ErrInvalidOrderID     = errors.New("order id is required")
	ErrInvalidAmount      = errors.New("order total must be greater than zero")
	ErrMissingTransaction = errors.New("transaction id is required to mark an order paid")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrNotPaid            = errors.New("order is not paid")
	ErrAlreadyConfirmed   = errors.New("order is already confirmed")
)

// ShippingInfo is the delivery destination captured at checkout.
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// PaymentRecord is the payment metadata an order keeps. Card numbers are
// stored masked only.
type PaymentRecord struct {
	Method     string `json:"method"`
	MaskedCard string `json:"maskedCard,omitempty"`
}

// Order is an immutable snapshot of a completed checkout. The item snapshot
// is copied at construction, so clearing or mutating the originating cart
// never changes an existing order. Only the status advances after
// construction, via MarkPaid and Confirm.
type Order struct {
	OrderID     string
	UserEmail   string
	Shipping    ShippingInfo
	Payment     PaymentRecord
	TotalAmount decimal.Decimal
	OrderDate   time.Time

	items         map[string]CartItem
	status        OrderStatus
	transactionID string
	confirmedAt   *time.Time
}

// NewOrder builds an order from a cart snapshot. The order id must be
// non-empty and the total positive; both are rejected here so no invalid
// order can enter the system.
func NewOrder(orderID, userEmail string, items map[string]CartItem, shipping ShippingInfo, payment PaymentRecord, total decimal.Decimal) (*Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if total.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	snapshot := make(map[string]CartItem, len(items))
	for title, item := range items {
		snapshot[title] = item
	}

	return &Order{
		OrderID:     orderID,
		UserEmail:   userEmail,
		Shipping:    shipping,
		Payment:     payment,
		TotalAmount: total,
		OrderDate:   time.Now(),
		items:       snapshot,
		status:      StatusCreated,
	}, nil
}

func (o *Order) Status() OrderStatus {
	return o.status
}

// Items returns a value copy of the order's item snapshot.
func (o *Order) Items() map[string]CartItem {
	items := make(map[string]CartItem, len(o.items))
	for title, item := range o.items {
		items[title] = item
	}
	return items
}

// ItemCount is the number of distinct titles in the order.
func (o *Order) ItemCount() int {
	return len(o.items)
}

func (o *Order) TransactionID() string {
	return o.transactionID
}

func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// MarkPaid moves the order from created to paid. The transaction id must be
// the non-empty id of a successful gateway transaction; marking an order paid
// without one is an orchestration bug.
func (o *Order) MarkPaid(transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return ErrMissingTransaction
	}
	if o.status != StatusCreated {
		return ErrAlreadyPaid
	}
	o.status = StatusPaid
	o.transactionID = transactionID
	return nil
}

// Confirm finalizes a paid order and stamps the confirmation time. Confirming
// an unpaid order or confirming twice are orchestration bugs and fail.
func (o *Order) Confirm() error {
	switch o.status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusCreated:
		return ErrNotPaid
	}
	now := time.Now()
	o.status = StatusConfirmed
	o.confirmedAt = &now
	return nil
}
