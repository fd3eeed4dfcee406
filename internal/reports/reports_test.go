package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invenhub/pos-service/internal/domain"
)

func TestSalesReportProducesPDF(t *testing.T) {
	sales := []domain.Sale{
		{
			ID: "s1",
			Products: []domain.LineItem{
				{Product: domain.Product{ID: "p1", Name: "Mug", CostPrice: 4}, Quantity: 2, PriceAtSale: 10},
			},
			TotalAmount:   20,
			PaymentMethod: domain.PaymentCash,
			Channel:       domain.ChannelInStore,
			Timestamp:     time.Date(2023, 7, 15, 14, 0, 0, 0, time.UTC),
		},
	}
	summary := domain.AnalyticsSummary{
		TotalRevenue: 20, TotalCost: 8, TotalProfit: 12,
		ProfitMargin: 60, TotalItemsSold: 2, AverageOrderValue: 20, SaleCount: 1,
	}

	out, err := SalesReport(sales, summary, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, len(out) > 500)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSalesReportWithWindow(t *testing.T) {
	sales := []domain.Sale{
		{ID: "old", TotalAmount: 5, Timestamp: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "new", TotalAmount: 7, Timestamp: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := SalesReport(sales, domain.AnalyticsSummary{}, start, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
