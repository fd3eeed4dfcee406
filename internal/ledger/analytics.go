package ledger

import (
	"github.com/invenhub/pos-service/internal/domain"
)

// Derived views. Each one is a pure function of the current sales sequence,
// recomputed per call. Grouped outputs keep first-seen key order from a
// single linear pass, never sorted.

const lowStockThreshold = 10

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// TotalRevenue sums TotalAmount over all sales.
func (l *Ledger) TotalRevenue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total float64
	for i := range l.sales {
		total += l.sales[i].TotalAmount
	}
	return total
}

// TotalCost sums cost price times quantity over every line item.
func (l *Ledger) TotalCost() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total float64
	for i := range l.sales {
		for _, item := range l.sales[i].Products {
			total += item.Product.CostPrice * float64(item.Quantity)
		}
	}
	return total
}

// TotalProfit is revenue minus cost.
func (l *Ledger) TotalProfit() float64 {
	return l.TotalRevenue() - l.TotalCost()
}

// ProfitMargin is profit over revenue as a percentage, 0 when revenue is 0.
func (l *Ledger) ProfitMargin() float64 {
	revenue := l.TotalRevenue()
	if revenue == 0 {
		return 0
	}
	return (revenue - l.TotalCost()) / revenue * 100
}

// TotalItemsSold sums quantities over every line item of every sale.
func (l *Ledger) TotalItemsSold() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total int
	for i := range l.sales {
		for _, item := range l.sales[i].Products {
			total += item.Quantity
		}
	}
	return total
}

// AverageOrderValue is revenue over sale count, 0 when the ledger is empty.
func (l *Ledger) AverageOrderValue() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.sales) == 0 {
		return 0
	}
	var total float64
	for i := range l.sales {
		total += l.sales[i].TotalAmount
	}
	return total / float64(len(l.sales))
}

// SalesByChannel groups TotalAmount by sales channel.
func (l *Ledger) SalesByChannel() []domain.ChartPoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.groupTotals(func(s *domain.Sale) string { return s.Channel })
}

// SalesByPaymentMethod groups TotalAmount by payment method.
func (l *Ledger) SalesByPaymentMethod() []domain.ChartPoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.groupTotals(func(s *domain.Sale) string { return s.PaymentMethod })
}

// groupTotals accumulates TotalAmount per key in first-seen order. Caller
// holds at least a read lock.
func (l *Ledger) groupTotals(key func(*domain.Sale) string) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, 4)
	index := make(map[string]int, 4)
	for i := range l.sales {
		k := key(&l.sales[i])
		at, ok := index[k]
		if !ok {
			at = len(points)
			index[k] = at
			points = append(points, domain.ChartPoint{Name: k})
		}
		points[at].Value += l.sales[i].TotalAmount
	}
	return points
}

// SalesByCategory groups line-item revenue (quantity * price at sale) by the
// item's product category, summed across all sales.
func (l *Ledger) SalesByCategory() []domain.ChartPoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	points := make([]domain.ChartPoint, 0, 8)
	index := make(map[string]int, 8)
	for i := range l.sales {
		for _, item := range l.sales[i].Products {
			cat := item.Product.Category
			at, ok := index[cat]
			if !ok {
				at = len(points)
				index[cat] = at
				points = append(points, domain.ChartPoint{Name: cat})
			}
			points[at].Value += item.PriceAtSale * float64(item.Quantity)
		}
	}
	return points
}

// MonthlySales returns a fixed Jan-Dec series accumulating TotalAmount by
// calendar month of the sale timestamp. Sales from different years collapse
// into the same bucket.
func (l *Ledger) MonthlySales() []domain.ChartPoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	points := make([]domain.ChartPoint, len(monthNames))
	for i, name := range monthNames {
		points[i] = domain.ChartPoint{Name: name}
	}
	for i := range l.sales {
		month := int(l.sales[i].Timestamp.Month()) - 1
		points[month].Value += l.sales[i].TotalAmount
	}
	return points
}

// ProductPerformance accumulates sold quantity and revenue per distinct
// product id referenced by any line item. The display name comes from the
// first occurrence encountered.
func (l *Ledger) ProductPerformance() []domain.ProductPerformance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	perf := make([]domain.ProductPerformance, 0, 8)
	index := make(map[string]int, 8)
	for i := range l.sales {
		for _, item := range l.sales[i].Products {
			id := item.Product.ID
			at, ok := index[id]
			if !ok {
				at = len(perf)
				index[id] = at
				perf = append(perf, domain.ProductPerformance{
					ProductID: id,
					Name:      item.Product.Name,
				})
			}
			perf[at].Sold += item.Quantity
			perf[at].Revenue += item.PriceAtSale * float64(item.Quantity)
		}
	}
	return perf
}

// LowStockProducts returns the distinct products referenced anywhere in the
// sales history whose snapshot stock is below the threshold. A catalog
// product that was never sold is invisible to this view; that matches the
// historical behavior of the dashboard and is intentional.
func (l *Ledger) LowStockProducts() []domain.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool, 8)
	low := make([]domain.Product, 0, 4)
	for i := range l.sales {
		for _, item := range l.sales[i].Products {
			if seen[item.Product.ID] {
				continue
			}
			seen[item.Product.ID] = true
			if item.Product.Stock < lowStockThreshold {
				low = append(low, item.Product)
			}
		}
	}
	return low
}

// Summary bundles the headline aggregates for the dashboard.
func (l *Ledger) Summary() domain.AnalyticsSummary {
	return domain.AnalyticsSummary{
		TotalRevenue:      l.TotalRevenue(),
		TotalCost:         l.TotalCost(),
		TotalProfit:       l.TotalProfit(),
		ProfitMargin:      l.ProfitMargin(),
		TotalItemsSold:    l.TotalItemsSold(),
		AverageOrderValue: l.AverageOrderValue(),
		SaleCount:         l.Count(),
	}
}
