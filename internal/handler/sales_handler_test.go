package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/ledger"
	"github.com/invenhub/pos-service/internal/service"
)

func newSalesRouter(seed []domain.Sale) (*gin.Engine, *ledger.Ledger) {
	gin.SetMode(gin.TestMode)

	l := ledger.New(seed)
	salesService := service.NewSalesService(l, nil, nil, zap.NewNop())
	h := NewSalesHandler(salesService, zap.NewNop())

	router := gin.New()
	router.GET("/sales", h.ListSales)
	router.GET("/sales/:id", h.GetSale)
	router.POST("/sales", h.CreateSale)
	router.PATCH("/sales/:id", h.UpdateSale)
	router.DELETE("/sales/:id", h.DeleteSale)
	return router, l
}

func seedSale(id string, ts time.Time) domain.Sale {
	return domain.Sale{
		ID: id,
		Products: []domain.LineItem{
			{
				Product:  domain.Product{ID: "p1", Name: "Mug", Category: "Kitchen", Price: 10, CostPrice: 4, Stock: 20},
				Quantity: 2, PriceAtSale: 10,
			},
		},
		TotalAmount:   20,
		PaymentMethod: domain.PaymentCash,
		Channel:       domain.ChannelInStore,
		EmployeeID:    "1",
		Timestamp:     ts,
	}
}

func TestListSalesNewestFirst(t *testing.T) {
	router, _ := newSalesRouter([]domain.Sale{
		seedSale("old", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		seedSale("new", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var sales []domain.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
	require.Len(t, sales, 2)
	assert.Equal(t, "new", sales[0].ID)
	assert.Equal(t, "old", sales[1].ID)
}

func TestCreateSale(t *testing.T) {
	router, l := newSalesRouter(nil)

	body, _ := json.Marshal(domain.CreateSaleRequest{
		Products: []domain.LineItem{
			{
				Product:  domain.Product{ID: "p1", Name: "Mug", Price: 10, CostPrice: 4},
				Quantity: 1, PriceAtSale: 10,
			},
		},
		PaymentMethod: domain.PaymentCard,
		Channel:       domain.ChannelOnline,
		EmployeeID:    "2",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var sale domain.Sale
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, 10.0, sale.TotalAmount)
	assert.Equal(t, 1, l.Count())
}

func TestCreateSaleRejectsEmptyLineItems(t *testing.T) {
	router, _ := newSalesRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader([]byte(`{"payment_method":"cash","channel":"online","employee_id":"1","products":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchSale(t *testing.T) {
	router, l := newSalesRouter([]domain.Sale{seedSale("s1", time.Now())})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/sales/s1", bytes.NewReader([]byte(`{"payment_method":"card"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got, ok := l.Get("s1")
	require.True(t, ok)
	assert.Equal(t, domain.PaymentCard, got.PaymentMethod)
	assert.Equal(t, 20.0, got.TotalAmount)
}

func TestPatchUnknownSaleReturns404(t *testing.T) {
	router, _ := newSalesRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/sales/missing", bytes.NewReader([]byte(`{"payment_method":"card"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSale(t *testing.T) {
	router, l := newSalesRouter([]domain.Sale{seedSale("s1", time.Now())})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/sales/s1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, l.Count())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/sales/s1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
