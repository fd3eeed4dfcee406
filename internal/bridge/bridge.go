// Package bridge persists the ledger's sale sequence across restarts. The
// ledger itself is agnostic to the storage medium; everything behind the
// Store interface is best-effort mirroring, not a transactional guarantee.
package bridge

import (
	"context"

	"github.com/invenhub/pos-service/internal/domain"
)

type Store interface {
	PutSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, id string) error
	LoadSales(ctx context.Context) ([]domain.Sale, error)
	Close() error
}
