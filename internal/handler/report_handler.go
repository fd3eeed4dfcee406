package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/reports"
	"github.com/invenhub/pos-service/internal/service"
)

type ReportHandler struct {
	salesService     *service.SalesService
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewReportHandler(salesService *service.SalesService, analyticsService *service.AnalyticsService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		salesService:     salesService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// SalesReport streams a PDF of the sales history, optionally bounded by
// start/end query parameters (RFC3339 or YYYY-MM-DD).
func (h *ReportHandler) SalesReport(c *gin.Context) {
	start, ok := parseBound(c, "start")
	if !ok {
		return
	}
	end, ok := parseBound(c, "end")
	if !ok {
		return
	}

	pdf, err := reports.SalesReport(h.salesService.ListSales(), h.analyticsService.Summary(), start, end)
	if err != nil {
		h.logger.Error("Failed to generate sales report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate report",
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=sales_report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func parseBound(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid " + name + " date",
	})
	return time.Time{}, false
}
