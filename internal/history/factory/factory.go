package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/DjordjeVuckovic/booltable/internal/history/es"
	"github.com/DjordjeVuckovic/booltable/internal/history/in_mem"
	"github.com/DjordjeVuckovic/booltable/internal/history/pg"
)

// NewStorer creates a history.Storer for the configured backend.
func NewStorer(ctx context.Context, cfg StorageConfig) (history.Storer, error) {
	switch cfg.Type {
	case history.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStorer(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case history.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStorer(ctx, *cfg.Es)

	case history.InMem:
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(history.ErrUnsupportedStorer), cfg.Type)
	}
}
