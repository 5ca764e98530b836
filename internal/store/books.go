package store

import (
	"sort"
	"strings"
	"sync"

	"bookstore/internal/models"
)

// BookStore holds the seeded catalog. Books never change after seeding, so
// reads dominate and a RWMutex is enough.
type BookStore struct {
	mu      sync.RWMutex
	books   []models.Book
	byTitle map[string]models.Book
}

func NewBookStore(books []models.Book) *BookStore {
	s := &BookStore{byTitle: make(map[string]models.Book, len(books))}
	for _, book := range books {
		key := strings.ToLower(book.Title)
		if _, exists := s.byTitle[key]; exists {
			continue
		}
		s.byTitle[key] = book
		s.books = append(s.books, book)
	}
	return s
}

// List returns every catalog book in seed order.
func (s *BookStore) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, len(s.books))
	copy(books, s.books)
	return books
}

// ByTitle looks a book up by title, case-insensitively.
func (s *BookStore) ByTitle(title string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.byTitle[strings.ToLower(strings.TrimSpace(title))]
	return book, ok
}

// ByCategory returns the books whose category matches, case-insensitively.
func (s *BookStore) ByCategory(category string) []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var books []models.Book
	for _, book := range s.books {
		if strings.EqualFold(book.Category, category) {
			books = append(books, book)
		}
	}
	return books
}

// Search matches query as a case-insensitive substring of title or category.
func (s *BookStore) Search(query string) []models.Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var books []models.Book
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Title), query) ||
			strings.Contains(strings.ToLower(book.Category), query) {
			books = append(books, book)
		}
	}
	return books
}

// Categories returns the distinct categories in sorted order.
func (s *BookStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, book := range s.books {
		if _, ok := seen[book.Category]; ok {
			continue
		}
		seen[book.Category] = struct{}{}
		categories = append(categories, book.Category)
	}
	sort.Strings(categories)
	return categories
}
