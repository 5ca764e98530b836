package payment

import (
	"errors"
	"testing"
)

func TestProcessPaymentCashAlwaysSucceeds(t *testing.T) {
	gateway := NewGateway()

	result, err := gateway.ProcessPayment(&Info{Method: MethodCash})
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if !result.Success {
		t.Fatal("expected cash payment to succeed")
	}
	if result.TransactionID == "" {
		t.Fatal("expected a non-empty transaction id")
	}
}

func TestProcessPaymentValidCard(t *testing.T) {
	gateway := NewGateway()

	result, err := gateway.ProcessPayment(&Info{Method: MethodCreditCard, CardNumber: "1234567812345678"})
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if !result.Success {
		t.Fatal("expected valid card payment to succeed")
	}
	if result.TransactionID == "" {
		t.Fatal("expected a non-empty transaction id")
	}
	if result.MaskedCard != "**** **** **** 5678" {
		t.Fatalf("expected masked card in result, got %q", result.MaskedCard)
	}
}

func TestProcessPaymentDeclinesMalformedCards(t *testing.T) {
	gateway := NewGateway()

	cards := []string{"", "123", "12345678", "invalid_card_num", "12345678123456789", "1234 5678 1234 5"}
	for _, card := range cards {
		result, err := gateway.ProcessPayment(&Info{Method: MethodCreditCard, CardNumber: card})
		if err != nil {
			t.Fatalf("malformed card %q must decline, not error: %v", card, err)
		}
		if result.Success {
			t.Fatalf("expected decline for card %q", card)
		}
		if result.TransactionID != "" {
			t.Fatalf("declined payment must not carry a transaction id, got %q", result.TransactionID)
		}
	}
}

func TestProcessPaymentUnknownMethodDeclines(t *testing.T) {
	gateway := NewGateway()

	result, err := gateway.ProcessPayment(&Info{Method: "cheque"})
	if err != nil {
		t.Fatalf("unknown method must decline, not error: %v", err)
	}
	if result.Success {
		t.Fatal("expected decline for unknown payment method")
	}
}

func TestProcessPaymentNilInfoIsAnError(t *testing.T) {
	gateway := NewGateway()

	if _, err := gateway.ProcessPayment(nil); !errors.Is(err, ErrNilPaymentInfo) {
		t.Fatalf("expected ErrNilPaymentInfo, got %v", err)
	}
}

func TestTransactionIDsAreUnique(t *testing.T) {
	gateway := NewGateway()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		result, err := gateway.ProcessPayment(&Info{Method: MethodCash})
		if err != nil {
			t.Fatalf("ProcessPayment returned error: %v", err)
		}
		if _, dup := seen[result.TransactionID]; dup {
			t.Fatalf("duplicate transaction id %q", result.TransactionID)
		}
		seen[result.TransactionID] = struct{}{}
	}
}

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234567812345678", "**** **** **** 5678"},
		{"0000000000000000", "**** **** **** 0000"},
		{"", InvalidCardSentinel},
		{"123", "123"},
		{"12345678", "12345678"},
		{"invalid_card_number", "invalid_card_number"},
	}
	for _, tt := range tests {
		if got := MaskCardNumber(tt.in); got != tt.want {
			t.Fatalf("MaskCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkProcessPaymentCard(b *testing.B) {
	gateway := NewGateway()
	info := &Info{Method: MethodCreditCard, CardNumber: "1234567812345678"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gateway.ProcessPayment(info)
	}
}

func BenchmarkMaskCardNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MaskCardNumber("1234567812345678")
	}
}
