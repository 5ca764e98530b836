package handlers

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"bookstore/internal/models"
)

type cartItemResponse struct {
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
}

type orderResponse struct {
	OrderID       string               `json:"orderId"`
	UserEmail     string               `json:"userEmail"`
	Items         []cartItemResponse   `json:"items"`
	Shipping      models.ShippingInfo  `json:"shipping"`
	Payment       models.PaymentRecord `json:"payment"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	OrderDate     time.Time            `json:"orderDate"`
	Status        models.OrderStatus   `json:"status"`
	TransactionID string               `json:"transactionId,omitempty"`
	ConfirmedAt   *time.Time           `json:"confirmedAt,omitempty"`
}

func itemResponses(items map[string]models.CartItem) []cartItemResponse {
	out := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemResponse{
			Title:     item.Book.Title,
			Category:  item.Book.Category,
			Price:     item.Book.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func toCartResponse(cart *models.Cart) cartResponse {
	return cartResponse{
		Items:      itemResponses(cart.Items()),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

func toOrderResponse(order *models.Order) orderResponse {
	return orderResponse{
		OrderID:       order.OrderID,
		UserEmail:     order.UserEmail,
		Items:         itemResponses(order.Items()),
		Shipping:      order.Shipping,
		Payment:       order.Payment,
		TotalAmount:   order.TotalAmount,
		OrderDate:     order.OrderDate,
		Status:        order.Status(),
		TransactionID: order.TransactionID(),
		ConfirmedAt:   order.ConfirmedAt(),
	}
}
