package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invenhub/pos-service/internal/domain"
)

func newTestCatalog() *Catalog {
	return New([]domain.Product{
		{ID: "1", Name: "Safari Adventure T-Shirt", Barcode: "123456789001", Category: "Apparel", Price: 29.99},
		{ID: "2", Name: "Jungle Safari Water Bottle", Barcode: "123456789003", Category: "Bottles", Price: 24.99},
	})
}

func TestGetAndList(t *testing.T) {
	c := newTestCatalog()

	assert.Len(t, c.List(), 2)

	p, err := c.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Jungle Safari Water Bottle", p.Name)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetByBarcode(t *testing.T) {
	c := newTestCatalog()

	p, err := c.GetByBarcode("123456789001")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = c.GetByBarcode("000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearch(t *testing.T) {
	c := newTestCatalog()

	assert.Len(t, c.Search("safari"), 2)
	assert.Len(t, c.Search("bottle"), 1)
	assert.Len(t, c.Search("123456789003"), 1)
	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("zebra"))
}

func TestCreate(t *testing.T) {
	c := newTestCatalog()

	created, err := c.Create(domain.Product{ID: "3", Name: "Animal Keyring Set", Barcode: "123456789004", Category: "Keyrings", Price: 12.99})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, c.List(), 3)

	_, err = c.Create(domain.Product{ID: "3"})
	assert.ErrorIs(t, err, ErrProductExists)
}
