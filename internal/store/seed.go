package store

import (
	"github.com/shopspring/decimal"

	"bookstore/internal/models"
)

// SeedBooks is the default bookstore catalog.
func SeedBooks() []models.Book {
	return []models.Book{
		{Title: "The Great Gatsby", Category: "Fiction", Price: decimal.NewFromFloat(15.99), ImagePath: "/images/gatsby.jpg"},
		{Title: "The Sun Also Rises", Category: "Fiction", Price: decimal.NewFromFloat(20.99), ImagePath: "/images/sun.jpg"},
		{Title: "1984", Category: "Fiction", Price: decimal.NewFromFloat(12.49), ImagePath: "/images/1984.jpg"},
		{Title: "A Brief History of Time", Category: "Science", Price: decimal.NewFromFloat(18.50), ImagePath: "/images/brief-history.jpg"},
		{Title: "The Selfish Gene", Category: "Science", Price: decimal.NewFromFloat(16.25), ImagePath: "/images/selfish-gene.jpg"},
		{Title: "Sapiens", Category: "Non-Fiction", Price: decimal.NewFromFloat(22.00), ImagePath: "/images/sapiens.jpg"},
		{Title: "Educated", Category: "Non-Fiction", Price: decimal.NewFromFloat(17.75), ImagePath: "/images/educated.jpg"},
		{Title: "The Hobbit", Category: "Fantasy", Price: decimal.NewFromFloat(14.99), ImagePath: "/images/hobbit.jpg"},
		{Title: "A Game of Thrones", Category: "Fantasy", Price: decimal.NewFromFloat(19.99), ImagePath: "/images/got.jpg"},
	}
}
