package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/bridge"
	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/events"
	"github.com/invenhub/pos-service/internal/ledger"
)

var ErrSaleNotFound = errors.New("sale not found")

const persistTimeout = 5 * time.Second

// SalesService wraps the ledger with logging, best-effort persistence and
// event publishing. The store and producer may be nil when disabled.
type SalesService struct {
	ledger   *ledger.Ledger
	store    bridge.Store
	producer *events.KafkaProducer
	logger   *zap.Logger
}

func NewSalesService(l *ledger.Ledger, store bridge.Store, producer *events.KafkaProducer, logger *zap.Logger) *SalesService {
	return &SalesService{
		ledger:   l,
		store:    store,
		producer: producer,
		logger:   logger,
	}
}

// ListSales returns the recorded sales sorted by timestamp descending, the
// order the transaction history displays them in.
func (s *SalesService) ListSales() []domain.Sale {
	sales := s.ledger.Sales()
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Timestamp.After(sales[j].Timestamp)
	})
	return sales
}

func (s *SalesService) GetSale(id string) (domain.Sale, error) {
	sale, ok := s.ledger.Get(id)
	if !ok {
		return domain.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}

// RecordSale builds a sale from the request and appends it. A missing id gets
// a fresh uuid, a zero timestamp becomes now, and a zero total is derived
// from the line items.
func (s *SalesService) RecordSale(ctx context.Context, req domain.CreateSaleRequest) (domain.Sale, error) {
	sale := domain.Sale{
		ID:            req.ID,
		Products:      req.Products,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Channel:       req.Channel,
		EmployeeID:    req.EmployeeID,
		CustomerID:    req.CustomerID,
		Timestamp:     req.Timestamp,
	}
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.Timestamp.IsZero() {
		sale.Timestamp = time.Now().UTC()
	}
	if sale.TotalAmount == 0 {
		for _, item := range sale.Products {
			sale.TotalAmount += item.PriceAtSale * float64(item.Quantity)
		}
	}
	return s.Record(ctx, sale), nil
}

// Record appends a fully built sale, mirrors it to the bridge and publishes
// the sale-recorded event.
func (s *SalesService) Record(ctx context.Context, sale domain.Sale) domain.Sale {
	s.ledger.Add(sale)

	s.logger.Info("Sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.String("payment_method", sale.PaymentMethod),
		zap.String("channel", sale.Channel),
		zap.Int("line_items", len(sale.Products)))

	s.persistPut(sale)
	s.publish(sale)

	recorded, _ := s.ledger.Get(sale.ID)
	return recorded
}

// UpdateSale patches the sale matching id and returns the updated copy.
func (s *SalesService) UpdateSale(ctx context.Context, id string, patch domain.SalePatch) (domain.Sale, error) {
	if !s.ledger.Update(id, patch) {
		return domain.Sale{}, ErrSaleNotFound
	}

	sale, _ := s.ledger.Get(id)
	s.logger.Info("Sale updated", zap.String("sale_id", id))
	s.persistPut(sale)
	return sale, nil
}

func (s *SalesService) DeleteSale(ctx context.Context, id string) error {
	if !s.ledger.Delete(id) {
		return ErrSaleNotFound
	}

	s.logger.Info("Sale deleted", zap.String("sale_id", id))
	s.persistDelete(id)
	return nil
}

// persistPut mirrors a sale to the bridge without blocking the caller.
// Persistence is fire-and-forget; failures are logged, never surfaced.
func (s *SalesService) persistPut(sale domain.Sale) {
	if s.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.store.PutSale(ctx, sale); err != nil {
			s.logger.Error("Failed to persist sale",
				zap.String("sale_id", sale.ID),
				zap.Error(err))
		}
	}()
}

func (s *SalesService) persistDelete(id string) {
	if s.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.store.DeleteSale(ctx, id); err != nil {
			s.logger.Error("Failed to delete persisted sale",
				zap.String("sale_id", id),
				zap.Error(err))
		}
	}()
}

func (s *SalesService) publish(sale domain.Sale) {
	if s.producer == nil {
		return
	}
	items := make([]events.SaleItem, len(sale.Products))
	for i, item := range sale.Products {
		items[i] = events.SaleItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		}
	}
	event := events.SaleRecordedEvent{
		EventID:       uuid.NewString(),
		SaleID:        sale.ID,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		Channel:       sale.Channel,
		EmployeeID:    sale.EmployeeID,
		Items:         items,
		Timestamp:     sale.Timestamp,
	}
	if err := s.producer.PublishSaleRecorded(event); err != nil {
		s.logger.Error("Failed to publish sale event",
			zap.String("sale_id", sale.ID),
			zap.Error(err))
	}
}
