package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/checkout"
	"bookstore/internal/models"
	"bookstore/internal/payment"
	"bookstore/internal/store"
)

type checkoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	CardNumber    string `json:"cardNumber"`
}

// ProcessCheckout converts the session's cart into a confirmed order for the
// authenticated user. Payment declines come back as 402 with the gateway
// result so the client can retry with different payment details.
func ProcessCheckout(users *store.UserStore, carts *store.CartStore, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		user, ok := authenticatedUser(c, users)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "unauthorized")
			return
		}

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		cartID, err := c.Cookie(cartCookieName)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, checkout.ErrEmptyCart.Error())
			return
		}
		cart, ok := carts.Get(cartID)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, checkout.ErrEmptyCart.Error())
			return
		}

		result, err := svc.Checkout(user, cart, checkout.Request{
			Shipping: models.ShippingInfo{
				Name:    req.Name,
				Address: req.Address,
				City:    req.City,
				ZipCode: req.ZipCode,
			},
			Payment: payment.Info{
				Method:     req.PaymentMethod,
				CardNumber: req.CardNumber,
			},
		})
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, models.ErrInvalidAmount):
				respondWithError(c, http.StatusBadRequest, route, err.Error())
			case errors.Is(err, payment.ErrNilPaymentInfo):
				respondWithError(c, http.StatusBadRequest, route, err.Error())
			default:
				respondWithError(c, http.StatusInternalServerError, route, "checkout failed")
			}
			return
		}

		if result.Declined {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":   "payment declined",
				"payment": result.Payment,
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order Confirmation - Thank you for your order",
			"order":     toOrderResponse(result.Order),
			"payment":   result.Payment,
			"emailSent": result.EmailSent,
		})
	}
}
