package checkout

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"bookstore/internal/models"
	"bookstore/internal/payment"
	"bookstore/internal/store"
)

var (
	ErrNilUser   = errors.New("user is required")
	ErrEmptyCart = errors.New("cannot checkout with empty cart")
)

// PaymentProcessor authorizes payments for the checkout flow.
type PaymentProcessor interface {
	ProcessPayment(info *payment.Info) (payment.Result, error)
}

// ConfirmationSender delivers the post-checkout notification.
type ConfirmationSender interface {
	SendOrderConfirmation(recipient string, order *models.Order) error
}

// Request is the shipping and payment input captured at checkout.
type Request struct {
	Shipping models.ShippingInfo
	Payment  payment.Info
}

// Result reports the outcome of a checkout attempt. A payment decline is a
// result, not an error, so the caller can prompt the user to retry.
type Result struct {
	Order     *models.Order
	Payment   payment.Result
	Declined  bool
	EmailSent bool
}

// Service converts a cart into a confirmed order: it snapshots the cart,
// authorizes payment, advances the order state machine, records the order,
// clears the cart and sends the confirmation.
type Service struct {
	gateway PaymentProcessor
	mailer  ConfirmationSender
	orders  *store.OrderStore
}

func NewService(gateway PaymentProcessor, mailer ConfirmationSender, orders *store.OrderStore) *Service {
	return &Service{gateway: gateway, mailer: mailer, orders: orders}
}

// Checkout runs the full orchestration for one cart. The cart is cleared only
// after the order is fully constructed and confirmed; a failed notification
// never rolls the order back.
func (s *Service) Checkout(user *models.User, cart *models.Cart, req Request) (*Result, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total := cart.TotalPrice()
	if total.Sign() <= 0 {
		return nil, models.ErrInvalidAmount
	}

	payRes, err := s.gateway.ProcessPayment(&req.Payment)
	if err != nil {
		return nil, err
	}
	if !payRes.Success {
		log.Println("[CHECKOUT] [INFO] payment declined for", user.Email)
		return &Result{Payment: payRes, Declined: true}, nil
	}

	order, err := models.NewOrder(
		newOrderID(),
		user.Email,
		cart.Items(),
		req.Shipping,
		models.PaymentRecord{Method: req.Payment.Method, MaskedCard: payRes.MaskedCard},
		total,
	)
	if err != nil {
		return nil, err
	}
	if err := order.MarkPaid(payRes.TransactionID); err != nil {
		return nil, err
	}
	if err := order.Confirm(); err != nil {
		return nil, err
	}

	s.orders.Add(order)
	user.AddOrder(order)
	cart.Clear()

	result := &Result{Order: order, Payment: payRes}
	if err := s.mailer.SendOrderConfirmation(user.Email, order); err != nil {
		log.Println("[CHECKOUT] [ERROR] confirmation email failed:", err)
	} else {
		result.EmailSent = true
	}

	log.Printf("[CHECKOUT] [INFO] order %s confirmed for %s (%s)", order.OrderID, user.Email, total.StringFixed(2))
	return result, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
