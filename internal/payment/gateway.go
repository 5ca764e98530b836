package payment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	MethodCash       = "cash"
	MethodCreditCard = "credit_card"
)

// InvalidCardSentinel is the literal returned for empty card input.
const InvalidCardSentinel = "Invalid card number"

const cardNumberLength = 16

// ErrNilPaymentInfo is returned when the payment info itself is missing.
// Malformed-but-present input is reported as a failure result instead.
var ErrNilPaymentInfo = errors.New("payment info is required")

// Info is the payment input captured at checkout. CardNumber is required for
// credit_card and ignored for cash.
type Info struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
}

// Result is the outcome of a payment attempt. A declined payment has
// Success=false and no transaction id.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	MaskedCard    string `json:"maskedCard,omitempty"`
}

// Gateway simulates an external payment processor. It is stateless: the only
// side effect of a successful call is a fresh transaction id, so concurrent
// calls are independent.
type Gateway struct{}

func NewGateway() *Gateway {
	return &Gateway{}
}

// ProcessPayment authorizes a payment. Cash always succeeds. Credit cards
// succeed only with a 16-digit numeric card number; anything else, including
// an unknown payment method, is a decline rather than an error.
func (g *Gateway) ProcessPayment(info *Info) (Result, error) {
	if info == nil {
		return Result{}, ErrNilPaymentInfo
	}

	switch info.Method {
	case MethodCash:
		return Result{Success: true, TransactionID: newTransactionID()}, nil
	case MethodCreditCard:
		if !isFullCardNumber(info.CardNumber) {
			return Result{}, nil
		}
		return Result{
			Success:       true,
			TransactionID: newTransactionID(),
			MaskedCard:    MaskCardNumber(info.CardNumber),
		}, nil
	default:
		return Result{}, nil
	}
}

// MaskCardNumber obscures all but the last four digits of a full-length card
// number. Empty input yields the sentinel; input that is not clearly a
// full-length card number comes back unchanged rather than half-masked.
func MaskCardNumber(cardNumber string) string {
	if cardNumber == "" {
		return InvalidCardSentinel
	}
	if !isFullCardNumber(cardNumber) {
		return cardNumber
	}
	return "**** **** **** " + cardNumber[len(cardNumber)-4:]
}

func isFullCardNumber(cardNumber string) bool {
	if len(cardNumber) != cardNumberLength {
		return false
	}
	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}
