package store

import (
	"strings"
	"sync"

	"bookstore/internal/models"
)

// OrderStore keeps completed orders in memory, indexed by id and by the
// owning user's email.
type OrderStore struct {
	mu     sync.RWMutex
	byID   map[string]*models.Order
	byUser map[string][]*models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID:   make(map[string]*models.Order),
		byUser: make(map[string][]*models.Order),
	}
}

// Add records a completed order. Orders are append-only; an id is never
// overwritten.
func (s *OrderStore) Add(order *models.Order) {
	if order == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[order.OrderID]; exists {
		return
	}
	s.byID[order.OrderID] = order
	key := strings.ToLower(order.UserEmail)
	s.byUser[key] = append(s.byUser[key], order)
}

// ByID returns the order with the given id.
func (s *OrderStore) ByID(id string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.byID[id]
	return order, ok
}

// ByUser returns a user's orders in the order they were placed.
func (s *OrderStore) ByUser(email string) []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byUser[strings.ToLower(strings.TrimSpace(email))]
	orders := make([]*models.Order, len(stored))
	copy(orders, stored)
	return orders
}

// Count reports the total number of stored orders.
func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
