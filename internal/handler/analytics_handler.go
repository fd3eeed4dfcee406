package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.Summary())
}

func (h *AnalyticsHandler) SalesByChannel(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.SalesByChannel())
}

func (h *AnalyticsHandler) SalesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.SalesByCategory())
}

func (h *AnalyticsHandler) SalesByPaymentMethod(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.SalesByPaymentMethod())
}

func (h *AnalyticsHandler) MonthlySales(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.MonthlySales())
}

func (h *AnalyticsHandler) ProductPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.ProductPerformance())
}

func (h *AnalyticsHandler) LowStockProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyticsService.LowStockProducts())
}
