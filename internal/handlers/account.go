package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/store"
)

// GetOrderHistory returns the authenticated user's orders, oldest first.
func GetOrderHistory(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /account/orders"
		defer handlePanic(c, route)

		user, ok := authenticatedUser(c, users)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		history := user.OrderHistory()
		orders := make([]orderResponse, 0, len(history))
		for _, order := range history {
			orders = append(orders, toOrderResponse(order))
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
