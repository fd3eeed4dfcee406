package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/catalog"
	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/ledger"
	"github.com/invenhub/pos-service/internal/service"
)

func newTestService(t *testing.T) (*Service, *ledger.Ledger) {
	t.Helper()
	products := []domain.Product{
		{ID: "p1", Name: "Mug", Barcode: "100", Category: "Kitchen", Price: 10, CostPrice: 4, Stock: 5},
		{ID: "p2", Name: "Print", Barcode: "200", Category: "Canvas", Price: 80, CostPrice: 40, Stock: 2},
	}
	l := ledger.New(nil)
	sales := service.NewSalesService(l, nil, nil, zap.NewNop())
	return New(catalog.New(products), sales, 0.08, zap.NewNop()), l
}

func TestAddItemAndTotals(t *testing.T) {
	svc, _ := newTestService(t)

	items, err := svc.AddItem("p1", 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 20.0, items[0].Subtotal)

	totals := svc.Totals()
	assert.InDelta(t, 20.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 1.6, totals.Tax, 1e-9)
	assert.InDelta(t, 21.6, totals.Total, 1e-9)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem("p1", 2)
	require.NoError(t, err)
	items, err := svc.AddItem("p1", 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 50.0, items[0].Subtotal)
}

func TestAddItemRejectsOverStock(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem("p2", 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = svc.AddItem("p2", 2)
	require.NoError(t, err)
	_, err = svc.AddItem("p2", 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem("missing", 1)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem("p1", 1)
	require.NoError(t, err)

	items, err := svc.RemoveItem("p1")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = svc.RemoveItem("p1")
	assert.ErrorIs(t, err, ErrItemNotInBill)
}

func TestCheckoutRecordsSaleAndClearsBill(t *testing.T) {
	svc, l := newTestService(t)

	_, err := svc.AddItem("p1", 2)
	require.NoError(t, err)
	_, err = svc.AddItem("p2", 1)
	require.NoError(t, err)

	sale, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCard,
		Channel:       domain.ChannelInStore,
		EmployeeID:    "1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sale.ID)
	// Recorded total is the pre-tax line-item sum.
	assert.InDelta(t, 100.0, sale.TotalAmount, 1e-9)
	require.Len(t, sale.Products, 2)
	assert.Equal(t, 10.0, sale.Products[0].PriceAtSale)
	assert.False(t, sale.Timestamp.IsZero())

	assert.Equal(t, 1, l.Count())
	assert.Empty(t, svc.Items())
}

func TestCheckoutEmptyBill(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCash,
		Channel:       domain.ChannelInStore,
		EmployeeID:    "1",
	})
	assert.ErrorIs(t, err, ErrEmptyBill)
}
