package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/DjordjeVuckovic/booltable/internal/history/es"
	"github.com/DjordjeVuckovic/booltable/internal/history/pg"
	"github.com/DjordjeVuckovic/booltable/pkg/config/env"
	"github.com/DjordjeVuckovic/booltable/pkg/stringsutil"
)

type StorageConfig struct {
	history.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads HISTORY_STORAGE and the settings of the selected backend.
// An unset HISTORY_STORAGE selects the in-memory store.
func LoadEnv() (*StorageConfig, error) {
	storageType := history.Type(os.Getenv("HISTORY_STORAGE"))
	if storageType == "" {
		slog.Debug("HISTORY_STORAGE is not set, using in-memory history")
		storageType = history.InMem
	}
	if storageType != history.ES && storageType != history.PG && storageType != history.InMem {
		slog.Error("Invalid HISTORY_STORAGE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid HISTORY_STORAGE environment variable value: %s, expected one of %v",
			storageType,
			[]history.Type{history.ES, history.PG, history.InMem})
	}

	var esCfg *es.ClientConfig
	if storageType == history.ES {
		esCfg = &es.ClientConfig{
			Addresses:  stringsutil.SplitTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName:  env.Get("ES_INDEX_NAME", "evaluations"),
			Username:   os.Getenv("ES_USERNAME"),
			Password:   os.Getenv("ES_PASSWORD"),
			MaxRetries: env.GetInt("ES_MAX_RETRIES", 0),
		}
		if len(esCfg.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	}

	var pgCfg *pg.PoolConfig
	if storageType == history.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr:  os.Getenv("PG_CONNECTION_STRING"),
			MaxConns: int32(env.GetInt("PG_MAX_CONNS", 0)),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
		Es:   esCfg,
	}, nil
}
