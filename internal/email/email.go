package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookstore/internal/models"
)

var validate = validator.New()

// Sender is the notification contract the checkout flow depends on. The core
// only needs "send an order confirmation"; the transport behind it is an
// external concern.
type Sender interface {
	SendEmail(to, subject, body string) error
	SendOrderConfirmation(recipient string, order *models.Order) error
}

// LogSender writes outgoing mail to the process log instead of a real
// transport. It still enforces the contract: recipients must be valid
// addresses and messages must have content.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendEmail(to, subject, body string) error {
	if err := validateRecipient(to); err != nil {
		return err
	}
	if strings.TrimSpace(subject) == "" {
		return &models.ValidationError{Field: "subject", Reason: "is required"}
	}
	if strings.TrimSpace(body) == "" {
		return &models.ValidationError{Field: "body", Reason: "is required"}
	}

	log.Printf("[EMAIL] [INFO] sent to %s: %s", to, subject)
	return nil
}

// SendOrderConfirmation sends the post-checkout confirmation for order.
func (s *LogSender) SendOrderConfirmation(recipient string, order *models.Order) error {
	if err := validateRecipient(recipient); err != nil {
		return err
	}
	if order == nil {
		return &models.ValidationError{Field: "order", Reason: "is required"}
	}

	subject := fmt.Sprintf("Order Confirmation - %s", order.OrderID)
	body := orderSummary(order)
	return s.SendEmail(recipient, subject, body)
}

func validateRecipient(recipient string) error {
	if strings.TrimSpace(recipient) == "" {
		return &models.ValidationError{Field: "recipient", Reason: "is required"}
	}
	if err := validate.Var(recipient, "email"); err != nil {
		return &models.ValidationError{Field: "recipient", Reason: "must be a valid email address"}
	}
	return nil
}

func orderSummary(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order %s.\n", order.OrderID)
	for title, item := range order.Items() {
		fmt.Fprintf(&b, "- %s x%d (%s)\n", title, item.Quantity, item.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s", order.TotalAmount.StringFixed(2))
	return b.String()
}
