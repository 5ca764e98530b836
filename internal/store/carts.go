package store

import (
	"sync"

	"github.com/google/uuid"

	"bookstore/internal/models"
)

// CartStore hands out one cart per session. The session handle is an opaque
// id the HTTP layer round-trips; the store never exposes a shared global
// cart. The lock guards the map only — a single session is expected to
// mutate its cart one request at a time.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*models.Cart)}
}

// GetOrCreate returns the cart for id, creating one under a fresh id when id
// is empty or unknown. The id actually used is returned alongside the cart.
func (s *CartStore) GetOrCreate(id string) (string, *models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if cart, ok := s.carts[id]; ok {
			return id, cart
		}
	}

	id = uuid.NewString()
	cart := models.NewCart()
	s.carts[id] = cart
	return id, cart
}

// Get returns the cart for id, if one exists.
func (s *CartStore) Get(id string) (*models.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	return cart, ok
}

// Drop discards the cart for id, ending the session.
func (s *CartStore) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
