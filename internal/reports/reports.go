// Package reports renders ledger data into downloadable PDF documents.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/invenhub/pos-service/internal/domain"
)

// SalesReport renders the given sales and summary into a PDF. When start or
// end is non-zero, sales outside the window are skipped (the summary is
// passed in by the caller and reflects whatever scope it chose).
func SalesReport(sales []domain.Sale, summary domain.AnalyticsSummary, start, end time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "InvenHub Sales Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	period := "All time"
	if !start.IsZero() || !end.IsZero() {
		period = fmt.Sprintf("%s - %s", formatBound(start, "beginning"), formatBound(end, "now"))
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	widths := []float64{32, 46, 18, 28, 40, 26}
	headers := []string{"Date", "Sale ID", "Items", "Payment", "Channel", "Total"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, sale := range sales {
		if !start.IsZero() && sale.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && sale.Timestamp.After(end) {
			continue
		}
		items := 0
		for _, li := range sale.Products {
			items += li.Quantity
		}
		row := []string{
			sale.Timestamp.Format("2006-01-02 15:04"),
			sale.ID,
			fmt.Sprintf("%d", items),
			sale.PaymentMethod,
			sale.Channel,
			fmt.Sprintf("$%.2f", sale.TotalAmount),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Total revenue: $%.2f", summary.TotalRevenue),
		fmt.Sprintf("Total cost: $%.2f", summary.TotalCost),
		fmt.Sprintf("Total profit: $%.2f", summary.TotalProfit),
		fmt.Sprintf("Profit margin: %.1f%%", summary.ProfitMargin),
		fmt.Sprintf("Items sold: %d", summary.TotalItemsSold),
		fmt.Sprintf("Average order value: $%.2f", summary.AverageOrderValue),
		fmt.Sprintf("Sales: %d", summary.SaleCount),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render sales report: %w", err)
	}
	return buf.Bytes(), nil
}

func formatBound(t time.Time, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	return t.Format("2006-01-02")
}
