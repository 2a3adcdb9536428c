package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/booltable/internal/batch"
	"github.com/DjordjeVuckovic/booltable/internal/booltable"
	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/DjordjeVuckovic/booltable/internal/history/factory"
	"github.com/DjordjeVuckovic/booltable/internal/report"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exiting.
func run() int {
	cfg := parseFlags()
	loadEnvironment()

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		slog.Error("Invalid format", "error", err)
		return 2
	}

	engineCfg, err := cfg.engineConfig()
	if err != nil {
		slog.Error("Failed to load engine configuration", "error", err)
		return 2
	}
	engine := booltable.NewEngine(engineCfg)

	if cfg.BatchPath != "" {
		return runBatch(engine, cfg.BatchPath, format)
	}

	ctx := context.Background()

	var storer history.Storer
	if !cfg.NoHistory {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load history configuration", "error", err)
			return 2
		}
		storer, err = factory.NewStorer(ctx, *storageCfg)
		if err != nil {
			slog.Error("Failed to create history storer", "error", err)
			return 1
		}
	}

	return runREPL(ctx, &repl{
		engine:  engine,
		history: storer,
		format:  format,
		in:      os.Stdin,
		out:     os.Stdout,
	})
}

// runREPL runs r and closes its history store on every path.
func runREPL(ctx context.Context, r *repl) int {
	if r.history != nil {
		defer r.history.Close()
	}
	if err := r.Run(ctx); err != nil {
		slog.Error("REPL stopped", "error", err)
		return 1
	}
	return 0
}

func runBatch(engine *booltable.Engine, path string, format report.Format) int {
	suite, err := batch.LoadFromFile(path)
	if err != nil {
		slog.Error("Failed to load suite", "path", path, "error", err)
		return 2
	}

	results, summary := batch.Run(engine, suite)
	for _, res := range results {
		fmt.Printf("%s: %s\n", res.Equation.ID, res.Equation.Line)
		switch {
		case res.Err != nil:
			fmt.Printf("  error: %v\n\n", res.Err)
			continue
		case !res.Match:
			fmt.Printf("  expected %s, got %s\n", bits(res.Equation.Expect), bits(res.Table.OutputColumn()))
		}
		if err := report.Write(os.Stdout, res.Table, format); err != nil {
			slog.Error("Failed to write table", "id", res.Equation.ID, "error", err)
			return 1
		}
		fmt.Println()
	}

	fmt.Printf("%d equations, %d failed, %d mismatched\n", summary.Total, summary.Failed, summary.Mismatch)
	if !summary.OK() {
		return 1
	}
	return 0
}

func bits(values []bool) string {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}
