package models

import "github.com/shopspring/decimal"

// Book is a single purchasable catalog entry. The title is the unique key
// the rest of the system uses to refer to it. Books are immutable once seeded.
type Book struct {
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"imagePath,omitempty"`
}
