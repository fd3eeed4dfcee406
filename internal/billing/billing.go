// Package billing composes a bill at the point-of-sale terminal and turns it
// into a recorded sale at checkout. Bill items hold live catalog references;
// only checkout snapshots them into immutable line items.
package billing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/catalog"
	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/service"
)

var (
	ErrEmptyBill         = errors.New("bill is empty")
	ErrItemNotInBill     = errors.New("item not in bill")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	sales   *service.SalesService
	taxRate float64
	items   []domain.BillItem
	logger  *zap.Logger
}

func New(cat *catalog.Catalog, sales *service.SalesService, taxRate float64, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		sales:   sales,
		taxRate: taxRate,
		logger:  logger,
	}
}

// AddItem puts quantity units of a catalog product on the bill, merging with
// an existing line for the same product. The requested quantity may not
// exceed the product's current stock; this is the only place stock is
// checked.
func (s *Service) AddItem(productID string, quantity int) ([]domain.BillItem, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		newQuantity := s.items[i].Quantity + quantity
		if newQuantity > product.Stock {
			return nil, ErrInsufficientStock
		}
		s.items[i].Product = product
		s.items[i].Quantity = newQuantity
		s.items[i].Subtotal = product.Price * float64(newQuantity)
		return s.itemsCopy(), nil
	}

	if quantity > product.Stock {
		return nil, ErrInsufficientStock
	}
	s.items = append(s.items, domain.BillItem{
		Product:  product,
		Quantity: quantity,
		Subtotal: product.Price * float64(quantity),
	})
	return s.itemsCopy(), nil
}

// RemoveItem drops the bill line for the given product.
func (s *Service) RemoveItem(productID string) ([]domain.BillItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.itemsCopy(), nil
		}
	}
	return nil, ErrItemNotInBill
}

// Clear discards the bill being composed.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *Service) Items() []domain.BillItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsCopy()
}

// Totals returns the running subtotal, tax and total for display. Tax never
// reaches the recorded sale.
func (s *Service) Totals() domain.BillTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Service) totalsLocked() domain.BillTotals {
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.Subtotal
	}
	tax := subtotal * s.taxRate
	return domain.BillTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// Checkout finalizes the bill into a sale. Each bill line is snapshotted
// into a line item with the price charged now, the sale is recorded through
// the sales service and the bill is cleared.
func (s *Service) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return domain.Sale{}, ErrEmptyBill
	}

	lineItems := make([]domain.LineItem, len(s.items))
	var total float64
	for i, item := range s.items {
		lineItems[i] = domain.LineItem{
			Product:     item.Product,
			Quantity:    item.Quantity,
			PriceAtSale: item.Product.Price,
		}
		total += item.Product.Price * float64(item.Quantity)
	}

	sale := domain.Sale{
		ID:            uuid.NewString(),
		Products:      lineItems,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		Channel:       req.Channel,
		EmployeeID:    req.EmployeeID,
		CustomerID:    req.CustomerID,
		Timestamp:     time.Now().UTC(),
	}

	recorded := s.sales.Record(ctx, sale)
	s.items = nil

	s.logger.Info("Checkout completed",
		zap.String("sale_id", recorded.ID),
		zap.Float64("total_amount", recorded.TotalAmount),
		zap.String("payment_method", recorded.PaymentMethod))

	return recorded, nil
}

func (s *Service) itemsCopy() []domain.BillItem {
	out := make([]domain.BillItem, len(s.items))
	copy(out, s.items)
	return out
}
