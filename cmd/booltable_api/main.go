// Package main Booltable API
// @title Booltable API
// @version 1.0
// @description Truth tables for single-line boolean equations
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/booltable/docs"
	"github.com/DjordjeVuckovic/booltable/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/booltable/internal/api/server"
	"github.com/DjordjeVuckovic/booltable/internal/booltable"
	"github.com/DjordjeVuckovic/booltable/internal/history/factory"
	pkgserver "github.com/DjordjeVuckovic/booltable/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	engineCfg, err := booltable.LoadEnv()
	if err != nil {
		slog.Error("Failed to load engine configuration", "error", err)
		os.Exit(1)
	}
	engine := booltable.NewEngine(*engineCfg)

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load history configuration", "error", err)
		os.Exit(1)
	}

	storer, err := factory.NewStorer(context.Background(), *storageCfg)
	if err != nil {
		slog.Error("Failed to create history storer", "error", err)
		os.Exit(1)
	}

	checkers := []pkgserver.HealthChecker{pkgserver.NewOkHealthChecker()}
	if hc, ok := storer.(pkgserver.HealthChecker); ok {
		checkers = append(checkers, hc)
	}

	s := apiserver.New(sCfg, pkgserver.NewAllHealthChecker(checkers...))

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Booltable API is running")
	})

	router.NewEvaluateRouter(s.Echo, engine, storer).Bind()

	s.OnShutdown(storer.Close)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining requests...")
	}()

	slog.Info("Serving truth tables", "max_variables", engine.MaxVariables(), "history", storageCfg.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
