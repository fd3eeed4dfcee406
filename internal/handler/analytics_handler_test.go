package handler

import (
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

func newAnalyticsRouter(seed []domain.Sale) *gin.Engine {
	gin.SetMode(gin.TestMode)

	analyticsService := service.NewAnalyticsService(ledger.New(seed), zap.NewNop())
	h := NewAnalyticsHandler(analyticsService, zap.NewNop())

	router := gin.New()
	router.GET("/analytics/summary", h.Summary)
	router.GET("/analytics/channels", h.SalesByChannel)
	router.GET("/analytics/monthly", h.MonthlySales)
	return router
}

func TestSummaryEndpoint(t *testing.T) {
	router := newAnalyticsRouter([]domain.Sale{
		seedSale("s1", time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.AnalyticsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 20.0, summary.TotalRevenue)
	assert.Equal(t, 8.0, summary.TotalCost)
	assert.Equal(t, 12.0, summary.TotalProfit)
	assert.Equal(t, 60.0, summary.ProfitMargin)
	assert.Equal(t, 1, summary.SaleCount)
}

func TestSummaryEmptyLedger(t *testing.T) {
	router := newAnalyticsRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.AnalyticsSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Zero(t, summary.ProfitMargin)
	assert.Zero(t, summary.AverageOrderValue)
}

func TestMonthlyEndpointAlwaysTwelveBuckets(t *testing.T) {
	router := newAnalyticsRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/monthly", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var points []domain.ChartPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Name)
	assert.Equal(t, "Dec", points[11].Name)
}
