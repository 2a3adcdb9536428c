package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/booltable/internal/booltable"
	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
	"github.com/DjordjeVuckovic/booltable/pkg/config/env"
)

type cliConfig struct {
	MaxVars   int
	Format    string
	BatchPath string
	NoHistory bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.IntVar(&cfg.MaxVars, "max-vars", 0, "Maximum number of distinct variables per equation (0 keeps BOOLTABLE_MAX_VARIABLES or the default)")
	flag.StringVar(&cfg.Format, "format", string(report.Markdown), "Output format: markdown, plain, json or yaml")
	flag.StringVar(&cfg.BatchPath, "batch", "", "Path to a YAML suite of equations to evaluate instead of starting the REPL")
	flag.BoolVar(&cfg.NoHistory, "no-history", false, "Do not record evaluations")

	flag.Parse()
	return cfg
}

// engineConfig merges BOOLTABLE_MAX_VARIABLES with the -max-vars flag, the flag wins.
func (c cliConfig) engineConfig() (booltable.Config, error) {
	envCfg, err := booltable.LoadEnv()
	if err != nil {
		return booltable.Config{}, err
	}
	if c.MaxVars < 0 || c.MaxVars > truthtable.HardMaxVariables {
		return booltable.Config{}, fmt.Errorf("-max-vars must be between 1 and %d, got %d", truthtable.HardMaxVariables, c.MaxVars)
	}

	cfg := *envCfg
	if c.MaxVars > 0 {
		cfg.MaxVariables = c.MaxVars
	}
	return cfg, nil
}

// loadEnvironment loads the .env file and then configures logging from it.
func loadEnvironment() {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/booltable/.env")
	setupLogger()
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}
}

func setupLogger() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
