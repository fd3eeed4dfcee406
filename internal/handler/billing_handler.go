package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/billing"
	"github.com/invenhub/pos-service/internal/catalog"
	"github.com/invenhub/pos-service/internal/domain"
)

type BillingHandler struct {
	billingService *billing.Service
	logger         *zap.Logger
}

func NewBillingHandler(billingService *billing.Service, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

func (h *BillingHandler) GetBill(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":  h.billingService.Items(),
		"totals": h.billingService.Totals(),
	})
}

func (h *BillingHandler) AddItem(c *gin.Context) {
	var req domain.AddBillItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	items, err := h.billingService.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		if errors.Is(err, billing.ErrInsufficientStock) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Insufficient stock",
				"requested": req.Quantity,
			})
			return
		}

		h.logger.Error("Failed to add bill item",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add bill item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": h.billingService.Totals(),
	})
}

func (h *BillingHandler) RemoveItem(c *gin.Context) {
	items, err := h.billingService.RemoveItem(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not in bill",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"totals": h.billingService.Totals(),
	})
}

func (h *BillingHandler) ClearBill(c *gin.Context) {
	h.billingService.Clear()
	c.Status(http.StatusNoContent)
}

func (h *BillingHandler) Checkout(c *gin.Context) {
	var req domain.CheckoutRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sale, err := h.billingService.Checkout(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, billing.ErrEmptyBill) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bill is empty",
			})
			return
		}

		h.logger.Error("Failed to complete checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to complete checkout",
		})
		return
	}

	c.JSON(http.StatusCreated, sale)
}
