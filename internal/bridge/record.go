package bridge

import (
	"fmt"
	"sort"
	"time"

	"github.com/invenhub/pos-service/internal/domain"
)

// saleRecord is the serialized shape of a sale. Timestamps travel as strings
// and are normalized back to time values in exactly one place: decodeSale.
type saleRecord struct {
	ID            string           `json:"id" dynamodbav:"sale_id"`
	Products      []lineItemRecord `json:"products" dynamodbav:"products"`
	TotalAmount   float64          `json:"total_amount" dynamodbav:"total_amount"`
	PaymentMethod string           `json:"payment_method" dynamodbav:"payment_method"`
	Channel       string           `json:"channel" dynamodbav:"channel"`
	EmployeeID    string           `json:"employee_id" dynamodbav:"employee_id"`
	CustomerID    string           `json:"customer_id,omitempty" dynamodbav:"customer_id,omitempty"`
	Timestamp     string           `json:"timestamp" dynamodbav:"timestamp"`
}

type lineItemRecord struct {
	Product     domain.Product `json:"product" dynamodbav:"product"`
	Quantity    int            `json:"quantity" dynamodbav:"quantity"`
	PriceAtSale float64        `json:"price_at_sale" dynamodbav:"price_at_sale"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func encodeSale(s domain.Sale) saleRecord {
	items := make([]lineItemRecord, len(s.Products))
	for i, item := range s.Products {
		items[i] = lineItemRecord{
			Product:     item.Product,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		}
	}
	return saleRecord{
		ID:            s.ID,
		Products:      items,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Channel:       s.Channel,
		EmployeeID:    s.EmployeeID,
		CustomerID:    s.CustomerID,
		Timestamp:     s.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func decodeSale(r saleRecord) (domain.Sale, error) {
	ts, err := parseTimestamp(r.Timestamp)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("sale %s: %w", r.ID, err)
	}
	items := make([]domain.LineItem, len(r.Products))
	for i, item := range r.Products {
		items[i] = domain.LineItem{
			Product:     item.Product,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		}
	}
	return domain.Sale{
		ID:            r.ID,
		Products:      items,
		TotalAmount:   r.TotalAmount,
		PaymentMethod: r.PaymentMethod,
		Channel:       r.Channel,
		EmployeeID:    r.EmployeeID,
		CustomerID:    r.CustomerID,
		Timestamp:     ts,
	}, nil
}

// sortByTimestamp restores a deterministic order after loading from stores
// that do not preserve insertion order (redis hashes, dynamodb scans).
func sortByTimestamp(sales []domain.Sale) {
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Timestamp.Equal(sales[j].Timestamp) {
			return sales[i].ID < sales[j].ID
		}
		return sales[i].Timestamp.Before(sales[j].Timestamp)
	})
}
