package domain

import (
	"time"
)

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Barcode      string    `json:"barcode"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	CostPrice    float64   `json:"cost_price"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"image_url,omitempty"`
	Supplier     string    `json:"supplier,omitempty"`
	ReorderLevel int       `json:"reorder_level,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	ID        string  `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Barcode   string  `json:"barcode" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Price     float64 `json:"price" binding:"required,min=0"`
	CostPrice float64 `json:"cost_price" binding:"min=0"`
	Stock     int     `json:"stock" binding:"min=0"`
	ImageURL  string  `json:"image_url"`
	Supplier  string  `json:"supplier"`
}

// ChartPoint is the {name, value} pair every aggregate view is shaped into.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProductPerformance accumulates sold quantity and revenue per product id
// across the whole sales history.
type ProductPerformance struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}
