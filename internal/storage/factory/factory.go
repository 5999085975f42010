package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/DjordjeVuckovic/customer-search/internal/storage/es"
	"github.com/DjordjeVuckovic/customer-search/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/customer-search/internal/storage/pg"
)

// NewStore creates the storage.Store selected by cfg
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStore(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStore(ctx, *cfg.Es)

	case storage.InMem:
		return in_mem.NewStore(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
