package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bookstore/internal/checkout"
	"bookstore/internal/config"
	"bookstore/internal/email"
	"bookstore/internal/handlers"
	"bookstore/internal/middleware"
	"bookstore/internal/payment"
	"bookstore/internal/store"
)

func main() {
	config.Load()

	books := store.NewBookStore(store.SeedBooks())
	users := store.NewUserStore()
	carts := store.NewCartStore()
	orders := store.NewOrderStore()

	checkoutSvc := checkout.NewService(payment.NewGateway(), email.NewLogSender(), orders)

	log.Printf("[MAIN] [INFO] catalog seeded with %d books", len(books.List()))

	r := gin.Default()

	r.GET("/", handlers.Home(books))
	r.GET("/books", handlers.GetBooks(books))
	r.GET("/books/:title", handlers.GetBook(books))
	r.GET("/search", handlers.SearchBooks(books))
	r.GET("/categories", handlers.GetCategories(books))

	r.POST("/auth/register", handlers.Register(users, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.POST("/auth/login", handlers.Login(users, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	r.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(users))

	cart := r.Group("/cart")
	{
		cart.GET("", handlers.GetCart(carts))
		cart.POST("/items", handlers.AddToCart(books, carts))
		cart.PUT("/items", handlers.UpdateCartItem(carts))
		cart.DELETE("/items/:title", handlers.RemoveFromCart(carts))
		cart.DELETE("", handlers.ClearCart(carts))
	}

	authed := r.Group("/")
	authed.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		authed.POST("/checkout", handlers.ProcessCheckout(users, carts, checkoutSvc))
		authed.GET("/account/orders", handlers.GetOrderHistory(users))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
