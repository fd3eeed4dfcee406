package domain

// BillItem is a line of the bill being composed at the terminal. It holds a
// live catalog reference and exists only until checkout or cancellation.
type BillItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// BillTotals is the running total block shown while composing a bill. Tax is
// display-only; the recorded sale keeps the pre-tax line-item sum.
type BillTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type AddBillItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card online"`
	Channel       string `json:"channel" binding:"required,oneof=in-store online"`
	EmployeeID    string `json:"employee_id" binding:"required"`
	CustomerID    string `json:"customer_id"`
}
