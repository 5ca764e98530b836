package models

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

// Benchmarks mirror the hot paths the original profile harness exercised:
// bulk cart mutation, total computation over large carts and credential
// verification.

func BenchmarkCartAddBook(b *testing.B) {
	book := testBook("The Great Gatsby", 15.99)
	cart := NewCart()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cart.AddBook(&book, 1)
	}
}

func BenchmarkCartTotalPriceLargeCart(b *testing.B) {
	cart := NewCart()
	for i := 0; i < 500; i++ {
		book := Book{Title: fmt.Sprintf("Book %d", i), Price: decimal.NewFromFloat(9.99)}
		cart.AddBook(&book, i%5+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cart.TotalPrice()
	}
}

func BenchmarkCartSnapshot(b *testing.B) {
	cart := NewCart()
	for i := 0; i < 50; i++ {
		book := Book{Title: fmt.Sprintf("Book %d", i), Price: decimal.NewFromFloat(9.99)}
		cart.AddBook(&book, 2)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cart.Items()
	}
}

func BenchmarkCheckPassword(b *testing.B) {
	user, err := NewUser("bench@example.com", "StrongPass123", "Bench User", "")
	if err != nil {
		b.Fatalf("NewUser returned error: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		user.CheckPassword("StrongPass123")
	}
}
