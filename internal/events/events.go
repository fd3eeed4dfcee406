package events

import (
	"time"
)

// SaleRecordedEvent is published after a sale is appended to the ledger.
type SaleRecordedEvent struct {
	EventID       string     `json:"event_id"`
	SaleID        string     `json:"sale_id"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
	Channel       string     `json:"channel"`
	EmployeeID    string     `json:"employee_id"`
	Items         []SaleItem `json:"items"`
	Timestamp     time.Time  `json:"timestamp"`
}

type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
}
