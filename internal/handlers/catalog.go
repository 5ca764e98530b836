package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/store"
)

// Home is the API landing route.
func Home(books *store.BookStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":    "Online Bookstore API",
			"books":      len(books.List()),
			"categories": books.Categories(),
		})
	}
}

// GetBooks lists the catalog, optionally filtered by ?category=.
func GetBooks(books *store.BookStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /books"
		defer handlePanic(c, route)

		if category := c.Query("category"); category != "" {
			matches := books.ByCategory(category)
			if len(matches) == 0 {
				respondWithError(c, http.StatusNotFound, route, "category not found")
				return
			}
			c.JSON(http.StatusOK, gin.H{"books": matches})
			return
		}

		c.JSON(http.StatusOK, gin.H{"books": books.List()})
	}
}

// GetBook looks a single book up by its title.
func GetBook(books *store.BookStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /books/:title"
		defer handlePanic(c, route)

		book, ok := books.ByTitle(c.Param("title"))
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "book not found")
			return
		}

		c.JSON(http.StatusOK, book)
	}
}

// SearchBooks matches ?query= against titles and categories.
func SearchBooks(books *store.BookStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /search"
		defer handlePanic(c, route)

		query := c.Query("query")
		if query == "" {
			respondWithError(c, http.StatusBadRequest, route, "query is required")
			return
		}

		results := books.Search(query)
		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"results": results,
			"count":   len(results),
		})
	}
}

// GetCategories lists the distinct catalog categories.
func GetCategories(books *store.BookStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": books.Categories()})
	}
}
