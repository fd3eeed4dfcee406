package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/catalog"
	"github.com/invenhub/pos-service/internal/domain"
)

type ProductHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewProductHandler(cat *catalog.Catalog, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		logger:  logger,
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, h.catalog.Search(query))
		return
	}
	c.JSON(http.StatusOK, h.catalog.List())
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetProductByBarcode(c *gin.Context) {
	product, err := h.catalog.GetByBarcode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	product, err := h.catalog.Create(domain.Product{
		ID:        req.ID,
		Name:      req.Name,
		Barcode:   req.Barcode,
		Category:  req.Category,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
		Supplier:  req.Supplier,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrProductExists) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Product already exists",
			})
			return
		}

		h.logger.Error("Failed to create product",
			zap.String("product_id", req.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create product",
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}
