package domain

import (
	"time"
)

// Payment methods accepted at checkout.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

// Sales channels.
const (
	ChannelInStore = "in-store"
	ChannelOnline  = "online"
)

// LineItem is one product-quantity-price triple inside a Sale. Product is a
// value copy of the catalog entry as it existed at sale time, so historical
// sales stay accurate when catalog price or cost later changes.
type LineItem struct {
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
}

// Sale is one completed transaction. TotalAmount is the sum of
// quantity * price_at_sale over Products.
type Sale struct {
	ID            string     `json:"id"`
	Products      []LineItem `json:"products"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	Channel       string     `json:"channel"`
	EmployeeID    string     `json:"employee_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}

// SalePatch carries a partial update. Nil fields are left untouched.
type SalePatch struct {
	Products      *[]LineItem `json:"products"`
	TotalAmount   *float64    `json:"total_amount"`
	PaymentMethod *string     `json:"payment_method"`
	Channel       *string     `json:"channel"`
	EmployeeID    *string     `json:"employee_id"`
	CustomerID    *string     `json:"customer_id"`
	Timestamp     *time.Time  `json:"timestamp"`
}

type CreateSaleRequest struct {
	ID            string     `json:"id"`
	Products      []LineItem `json:"products" binding:"required,min=1"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method" binding:"required,oneof=cash card online"`
	Channel       string     `json:"channel" binding:"required,oneof=in-store online"`
	EmployeeID    string     `json:"employee_id" binding:"required"`
	CustomerID    string     `json:"customer_id"`
	Timestamp     time.Time  `json:"timestamp"`
}

// AnalyticsSummary is the dashboard KPI block.
type AnalyticsSummary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCost         float64 `json:"total_cost"`
	TotalProfit       float64 `json:"total_profit"`
	ProfitMargin      float64 `json:"profit_margin"`
	TotalItemsSold    int     `json:"total_items_sold"`
	AverageOrderValue float64 `json:"average_order_value"`
	SaleCount         int     `json:"sale_count"`
}
