package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/ledger"
)

// fakeStore records bridge calls so tests can assert on the fire-and-forget
// persistence path.
type fakeStore struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
}

func (f *fakeStore) PutSale(_ context.Context, sale domain.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, sale.ID)
	return nil
}

func (f *fakeStore) DeleteSale(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeStore) LoadSales(context.Context) ([]domain.Sale, error) { return nil, nil }
func (f *fakeStore) Close() error                                    { return nil }

func (f *fakeStore) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.puts)
}

func (f *fakeStore) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deletes)
}

func testRequest() domain.CreateSaleRequest {
	return domain.CreateSaleRequest{
		Products: []domain.LineItem{
			{
				Product:  domain.Product{ID: "p1", Name: "Mug", Price: 10, CostPrice: 4, Stock: 20},
				Quantity: 2, PriceAtSale: 10,
			},
		},
		PaymentMethod: domain.PaymentCash,
		Channel:       domain.ChannelInStore,
		EmployeeID:    "1",
	}
}

func TestRecordSaleFillsDefaults(t *testing.T) {
	svc := NewSalesService(ledger.New(nil), nil, nil, zap.NewNop())

	sale, err := svc.RecordSale(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
	assert.False(t, sale.Timestamp.IsZero())
	assert.Equal(t, 20.0, sale.TotalAmount)
}

func TestRecordSaleKeepsExplicitValues(t *testing.T) {
	svc := NewSalesService(ledger.New(nil), nil, nil, zap.NewNop())

	req := testRequest()
	req.ID = "s1"
	req.TotalAmount = 19.5 // caller-provided totals are not re-derived
	req.Timestamp = time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)

	sale, err := svc.RecordSale(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, 19.5, sale.TotalAmount)
	assert.True(t, req.Timestamp.Equal(sale.Timestamp))
}

func TestMutationsMirrorToStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewSalesService(ledger.New(nil), store, nil, zap.NewNop())

	sale, err := svc.RecordSale(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return store.putCount() == 1 }, time.Second, 10*time.Millisecond)

	method := domain.PaymentCard
	_, err = svc.UpdateSale(context.Background(), sale.ID, domain.SalePatch{PaymentMethod: &method})
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return store.putCount() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID))
	assert.Eventually(t, func() bool { return store.deleteCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestUpdateAndDeleteUnknownSale(t *testing.T) {
	svc := NewSalesService(ledger.New(nil), nil, nil, zap.NewNop())

	method := domain.PaymentCard
	_, err := svc.UpdateSale(context.Background(), "missing", domain.SalePatch{PaymentMethod: &method})
	assert.ErrorIs(t, err, ErrSaleNotFound)

	assert.ErrorIs(t, svc.DeleteSale(context.Background(), "missing"), ErrSaleNotFound)
}

func TestListSalesSortsNewestFirst(t *testing.T) {
	l := ledger.New([]domain.Sale{
		{ID: "old", Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "new", Timestamp: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	})
	svc := NewSalesService(l, nil, nil, zap.NewNop())

	sales := svc.ListSales()
	require.Len(t, sales, 2)
	assert.Equal(t, "new", sales[0].ID)
}
