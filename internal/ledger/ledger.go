package ledger

import (
	"sync"

	"github.com/invenhub/pos-service/internal/domain"
)

// Ledger owns the ordered sequence of recorded sales and derives every
// aggregate view from it on demand. Storage order is insertion order; callers
// that need chronological order sort by timestamp themselves.
type Ledger struct {
	mu    sync.RWMutex
	sales []domain.Sale
}

// New builds a ledger from a seed sequence. The seed is copied, so the caller
// keeps ownership of its slice.
func New(seed []domain.Sale) *Ledger {
	l := &Ledger{sales: make([]domain.Sale, 0, len(seed))}
	for _, s := range seed {
		l.sales = append(l.sales, normalizeSale(s))
	}
	return l
}

// Add appends a sale. No deduplication and no total validation; callers are
// responsible for unique ids and consistent totals.
func (l *Ledger) Add(sale domain.Sale) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append(l.sales, normalizeSale(sale))
}

// Update replaces the fields present in patch on the sale matching id and
// reports whether a sale matched.
func (l *Ledger) Update(id string, patch domain.SalePatch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID != id {
			continue
		}
		s := &l.sales[i]
		if patch.Products != nil {
			s.Products = copyLineItems(*patch.Products)
		}
		if patch.TotalAmount != nil {
			s.TotalAmount = *patch.TotalAmount
		}
		if patch.PaymentMethod != nil {
			s.PaymentMethod = *patch.PaymentMethod
		}
		if patch.Channel != nil {
			s.Channel = *patch.Channel
		}
		if patch.EmployeeID != nil {
			s.EmployeeID = *patch.EmployeeID
		}
		if patch.CustomerID != nil {
			s.CustomerID = *patch.CustomerID
		}
		if patch.Timestamp != nil {
			s.Timestamp = patch.Timestamp.UTC()
		}
		return true
	}
	return false
}

// Delete removes the sale matching id and reports whether one was found.
func (l *Ledger) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID == id {
			l.sales = append(l.sales[:i], l.sales[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the sale matching id.
func (l *Ledger) Get(id string) (domain.Sale, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.sales {
		if l.sales[i].ID == id {
			return copySale(l.sales[i]), true
		}
	}
	return domain.Sale{}, false
}

// Sales returns a snapshot copy of the whole sequence in insertion order.
// Mutations after the call never show through the returned slice.
func (l *Ledger) Sales() []domain.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Sale, 0, len(l.sales))
	for i := range l.sales {
		out = append(out, copySale(l.sales[i]))
	}
	return out
}

// Count returns the number of recorded sales.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sales)
}

// normalizeSale pins the timestamp to UTC so month extraction and sorting
// behave the same wherever the sale came from.
func normalizeSale(s domain.Sale) domain.Sale {
	s.Timestamp = s.Timestamp.UTC()
	s.Products = copyLineItems(s.Products)
	return s
}

func copySale(s domain.Sale) domain.Sale {
	s.Products = copyLineItems(s.Products)
	return s
}

func copyLineItems(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return nil
	}
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
