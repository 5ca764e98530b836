package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/models"
	"bookstore/internal/store"
)

const (
	cartCookieName   = "cart_id"
	cartCookieMaxAge = 7 * 24 * 60 * 60
)

type addToCartRequest struct {
	Title    string `json:"title" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type updateCartRequest struct {
	Title    string `json:"title" binding:"required"`
	Quantity int    `json:"quantity"`
}

// sessionCart resolves the caller's cart from the cart_id cookie, creating a
// fresh cart (and cookie) for new sessions.
func sessionCart(c *gin.Context, carts *store.CartStore) *models.Cart {
	id, _ := c.Cookie(cartCookieName)
	id, cart := carts.GetOrCreate(id)
	c.SetCookie(cartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return cart
}

// GetCart returns the session's cart contents and totals.
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		cart := sessionCart(c, carts)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// AddToCart adds a catalog book to the session's cart. Adding a title that is
// already there accumulates the quantity.
func AddToCart(books *store.BookStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		book, ok := books.ByTitle(req.Title)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "book not found")
			return
		}

		cart := sessionCart(c, carts)
		if err := cart.AddBook(&book, req.Quantity); err != nil {
			if errors.Is(err, models.ErrInvalidQuantity) {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			respondWithError(c, http.StatusBadRequest, route, "could not add book to cart")
			return
		}

		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// UpdateCartItem sets the quantity for a cart entry. A quantity of zero or
// less removes the entry.
func UpdateCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items"
		defer handlePanic(c, route)

		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		cart := sessionCart(c, carts)
		cart.UpdateQuantity(req.Title, req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// RemoveFromCart drops one title from the cart. Removing an absent title is
// not an error.
func RemoveFromCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:title"
		defer handlePanic(c, route)

		cart := sessionCart(c, carts)
		cart.RemoveBook(c.Param("title"))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

// ClearCart empties the session's cart.
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		cart := sessionCart(c, carts)
		cart.Clear()
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}
