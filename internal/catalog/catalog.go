// Package catalog is the product catalog provider. It owns the live product
// records; every other component only ever receives copies.
package catalog

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/invenhub/pos-service/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
}

func New(seed []domain.Product) *Catalog {
	c := &Catalog{
		products: make([]domain.Product, len(seed)),
		byID:     make(map[string]int, len(seed)),
	}
	copy(c.products, seed)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// List returns all products in catalog order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

func (c *Catalog) GetByBarcode(barcode string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Search matches by case-insensitive name substring or exact barcode, the
// same lookup the billing screen uses.
func (c *Catalog) Search(query string) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) || p.Barcode == query {
			out = append(out, p)
		}
	}
	return out
}

// Create adds a product to the catalog.
func (c *Catalog) Create(p domain.Product) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[p.ID]; ok {
		return domain.Product{}, ErrProductExists
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	c.byID[p.ID] = len(c.products)
	c.products = append(c.products, p)
	return p, nil
}
