package service

import (
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/ledger"
)

// AnalyticsService exposes the ledger's derived views to the HTTP layer. It
// never computes aggregates itself; everything comes from the ledger.
type AnalyticsService struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func NewAnalyticsService(l *ledger.Ledger, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		ledger: l,
		logger: logger,
	}
}

func (s *AnalyticsService) Summary() domain.AnalyticsSummary {
	summary := s.ledger.Summary()
	s.logger.Debug("Computed analytics summary",
		zap.Float64("total_revenue", summary.TotalRevenue),
		zap.Int("sale_count", summary.SaleCount))
	return summary
}

func (s *AnalyticsService) SalesByChannel() []domain.ChartPoint {
	return s.ledger.SalesByChannel()
}

func (s *AnalyticsService) SalesByCategory() []domain.ChartPoint {
	return s.ledger.SalesByCategory()
}

func (s *AnalyticsService) SalesByPaymentMethod() []domain.ChartPoint {
	return s.ledger.SalesByPaymentMethod()
}

func (s *AnalyticsService) MonthlySales() []domain.ChartPoint {
	return s.ledger.MonthlySales()
}

func (s *AnalyticsService) ProductPerformance() []domain.ProductPerformance {
	return s.ledger.ProductPerformance()
}

func (s *AnalyticsService) LowStockProducts() []domain.Product {
	return s.ledger.LowStockProducts()
}
