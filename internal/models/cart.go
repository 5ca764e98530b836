package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNilBook is returned when a caller tries to add a nil book to a cart.
	ErrNilBook = errors.New("book is required")
	// ErrInvalidQuantity is returned when an add uses a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// CartItem pairs one catalog book with a desired quantity.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// LineTotal is the price of the book multiplied by the quantity.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Book.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart is a per-session collection of books keyed by title. A cart belongs to
// exactly one session and is not safe for concurrent mutation; the store that
// hands carts out serializes access per session.
type Cart struct {
	items map[string]CartItem
}

func NewCart() *Cart {
	return &Cart{items: make(map[string]CartItem)}
}

// AddBook puts quantity copies of book into the cart. Adding a title that is
// already present accumulates quantities rather than overwriting them.
func (c *Cart) AddBook(book *Book, quantity int) error {
	if book == nil {
		return ErrNilBook
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	item, ok := c.items[book.Title]
	if ok {
		item.Quantity += quantity
	} else {
		item = CartItem{Book: *book, Quantity: quantity}
	}
	c.items[book.Title] = item
	return nil
}

// UpdateQuantity sets the quantity for an existing entry. A quantity of zero
// or less removes the entry; entries never stay in the cart with quantity < 1.
// Updating a title that is not in the cart is a no-op.
func (c *Cart) UpdateQuantity(title string, quantity int) {
	item, ok := c.items[title]
	if !ok {
		return
	}
	if quantity < 1 {
		delete(c.items, title)
		return
	}
	item.Quantity = quantity
	c.items[title] = item
}

// RemoveBook drops the entry for title. Removing an absent title is a no-op.
func (c *Cart) RemoveBook(title string) {
	delete(c.items, title)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[string]CartItem)
}

// TotalPrice sums the line totals of all entries; an empty cart totals zero.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalItems sums the quantities across all entries.
func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Item returns the entry for title, if present.
func (c *Cart) Item(title string) (CartItem, bool) {
	item, ok := c.items[title]
	return item, ok
}

// Items returns a value copy of the cart contents. Mutating the cart after
// taking a snapshot never changes the returned map.
func (c *Cart) Items() map[string]CartItem {
	snapshot := make(map[string]CartItem, len(c.items))
	for title, item := range c.items {
		snapshot[title] = item
	}
	return snapshot
}
