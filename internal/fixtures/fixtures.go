// Package fixtures holds the seed data the service starts from when the
// persistence bridge is empty or disabled.
package fixtures

import (
	"time"

	"github.com/invenhub/pos-service/internal/domain"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Products returns the seed catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:           "1",
			Name:         "Safari Adventure T-Shirt",
			Barcode:      "123456789001",
			Category:     "Apparel",
			Price:        29.99,
			CostPrice:    12.99,
			Stock:        42,
			Supplier:     "Jungle Threads Ltd",
			ReorderLevel: 10,
			CreatedAt:    date("2023-01-15"),
			UpdatedAt:    date("2023-05-20"),
		},
		{
			ID:           "2",
			Name:         "Handcrafted Bastar Art Elephant",
			Barcode:      "123456789002",
			Category:     "Bastar Art",
			Price:        149.99,
			CostPrice:    89.99,
			Stock:        15,
			Supplier:     "Tribal Artisans Co-op",
			ReorderLevel: 5,
			CreatedAt:    date("2023-01-10"),
			UpdatedAt:    date("2023-06-12"),
		},
		{
			ID:           "3",
			Name:         "Jungle Safari Water Bottle",
			Barcode:      "123456789003",
			Category:     "Bottles",
			Price:        24.99,
			CostPrice:    9.99,
			Stock:        78,
			Supplier:     "EcoBottle Supplies",
			ReorderLevel: 20,
			CreatedAt:    date("2023-02-05"),
			UpdatedAt:    date("2023-04-18"),
		},
		{
			ID:           "4",
			Name:         "Animal Keyring Set",
			Barcode:      "123456789004",
			Category:     "Keyrings",
			Price:        12.99,
			CostPrice:    4.99,
			Stock:        120,
			Supplier:     "Safari Gifts Inc",
			ReorderLevel: 25,
			CreatedAt:    date("2023-03-22"),
			UpdatedAt:    date("2023-07-05"),
		},
		{
			ID:           "5",
			Name:         "Safari Landscape Canvas Print",
			Barcode:      "123456789005",
			Category:     "Canvas",
			Price:        79.99,
			CostPrice:    39.99,
			Stock:        24,
			Supplier:     "WildArt Prints",
			ReorderLevel: 8,
			CreatedAt:    date("2023-02-18"),
			UpdatedAt:    date("2023-05-30"),
		},
		{
			ID:           "6",
			Name:         "Wildlife Notebook Set",
			Barcode:      "123456789006",
			Category:     "Stationery",
			Price:        18.99,
			CostPrice:    7.99,
			Stock:        67,
			Supplier:     "Jungle Stationery Co",
			ReorderLevel: 15,
			CreatedAt:    date("2023-01-25"),
			UpdatedAt:    date("2023-06-08"),
		},
	}
}

// Sales returns the seed transactions referencing the seed catalog by value.
func Sales() []domain.Sale {
	products := Products()

	return []domain.Sale{
		{
			ID: "1",
			Products: []domain.LineItem{
				{Product: products[0], Quantity: 1, PriceAtSale: products[0].Price},
			},
			TotalAmount:   products[0].Price,
			PaymentMethod: domain.PaymentCard,
			Channel:       domain.ChannelInStore,
			EmployeeID:    "1",
			Timestamp:     time.Date(2023, time.July, 15, 14, 23, 5, 0, time.UTC),
		},
		{
			ID: "2",
			Products: []domain.LineItem{
				{Product: products[1], Quantity: 1, PriceAtSale: products[1].Price},
				{Product: products[2], Quantity: 2, PriceAtSale: products[2].Price},
			},
			TotalAmount:   products[1].Price + products[2].Price*2,
			PaymentMethod: domain.PaymentCash,
			Channel:       domain.ChannelInStore,
			EmployeeID:    "2",
			Timestamp:     time.Date(2023, time.July, 16, 10, 45, 22, 0, time.UTC),
		},
		{
			ID: "3",
			Products: []domain.LineItem{
				{Product: products[3], Quantity: 1, PriceAtSale: products[3].Price},
			},
			TotalAmount:   products[3].Price,
			PaymentMethod: domain.PaymentOnline,
			Channel:       domain.ChannelOnline,
			CustomerID:    "cust001",
			EmployeeID:    "1",
			Timestamp:     time.Date(2023, time.July, 17, 16, 12, 40, 0, time.UTC),
		},
	}
}

// Users returns the seed accounts for the mock login flow.
func Users() []domain.User {
	return []domain.User{
		{ID: "1", Name: "John Appleseed", Email: "john@invenhub.com", Role: domain.RoleAdmin},
		{ID: "2", Name: "Emily Parker", Email: "emily@invenhub.com", Role: domain.RoleManager},
		{ID: "3", Name: "Michael Smith", Email: "michael@invenhub.com", Role: domain.RoleEmployee},
	}
}
