package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
	"github.com/invenhub/pos-service/internal/service"
)

type SalesHandler struct {
	salesService *service.SalesService
	logger       *zap.Logger
}

func NewSalesHandler(salesService *service.SalesService, logger *zap.Logger) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.salesService.ListSales())
}

func (h *SalesHandler) GetSale(c *gin.Context) {
	sale, err := h.salesService.GetSale(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Sale not found",
		})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req domain.CreateSaleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to record sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record sale",
		})
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func (h *SalesHandler) UpdateSale(c *gin.Context) {
	saleID := c.Param("id")

	var patch domain.SalePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sale, err := h.salesService.UpdateSale(c.Request.Context(), saleID, patch)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sale not found",
			})
			return
		}

		h.logger.Error("Failed to update sale",
			zap.String("sale_id", saleID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update sale",
		})
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *SalesHandler) DeleteSale(c *gin.Context) {
	saleID := c.Param("id")

	if err := h.salesService.DeleteSale(c.Request.Context(), saleID); err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sale not found",
			})
			return
		}

		h.logger.Error("Failed to delete sale",
			zap.String("sale_id", saleID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete sale",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
