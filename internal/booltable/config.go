package booltable

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
)

type Config struct {
	MaxVariables int
}

func DefaultConfig() Config {
	return Config{MaxVariables: truthtable.DefaultMaxVariables}
}

// LoadEnv reads BOOLTABLE_MAX_VARIABLES, keeping the default when it is unset.
func LoadEnv() (*Config, error) {
	cfg := DefaultConfig()

	raw := os.Getenv("BOOLTABLE_MAX_VARIABLES")
	if raw == "" {
		slog.Debug("BOOLTABLE_MAX_VARIABLES is not set, using default", "default", cfg.MaxVariables)
		return &cfg, nil
	}

	maxVars, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOLTABLE_MAX_VARIABLES %q: %w", raw, err)
	}
	if maxVars < 1 || maxVars > truthtable.HardMaxVariables {
		return nil, fmt.Errorf("BOOLTABLE_MAX_VARIABLES must be between 1 and %d, got %d", truthtable.HardMaxVariables, maxVars)
	}

	cfg.MaxVariables = maxVars
	return &cfg, nil
}
