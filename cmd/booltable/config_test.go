package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConfig_MaxVars(t *testing.T) {
	t.Setenv("BOOLTABLE_MAX_VARIABLES", "")

	tests := []struct {
		maxVars  int
		expected int
		wantErr  bool
	}{
		{maxVars: 0, expected: truthtable.DefaultMaxVariables},
		{maxVars: 10, expected: 10},
		{maxVars: truthtable.HardMaxVariables, expected: truthtable.HardMaxVariables},
		{maxVars: truthtable.HardMaxVariables + 1, wantErr: true},
		{maxVars: 40, wantErr: true},
		{maxVars: -1, wantErr: true},
	}

	for _, tt := range tests {
		cfg, err := cliConfig{MaxVars: tt.maxVars}.engineConfig()
		if tt.wantErr {
			assert.Error(t, err, "max-vars %d", tt.maxVars)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, cfg.MaxVariables)
	}
}

func TestLoadEnvironment_LogLevelFromDotEnv(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0644))

	t.Setenv("ENV", "")
	t.Setenv("ENV_PATH", path)
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	loadEnvironment()

	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
