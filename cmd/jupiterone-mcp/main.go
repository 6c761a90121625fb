package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/cli"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/logger"
	"github.com/jupiterone/jupiterone-mcp/internal/metrics"
	"github.com/jupiterone/jupiterone-mcp/internal/server"
)

// go build -ldflags "-X 'main.Version=9999'"
var Version = "development"

func main() {
	overrides := cli.HandleArgs(Version)

	// get config from environment variables, then CLI flags
	cfg, err := config.LoadConfig(overrides)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout carries the stdio transport, so logs go to stderr
	logService := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logService.Logger)

	var anService analytics.Service = analytics.NewDisabled()
	if cfg.Telemetry {
		a, err := analytics.NewAnalytics(cfg.TelemetryToken, cfg.TelemetryEndpoint, &http.Client{Timeout: cfg.RequestTimeout})
		if err != nil {
			slog.Warn("Telemetry disabled", "error", err)
		} else {
			anService = a
		}
	}

	m, err := metrics.NewMetrics(Version)
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	client := jupiterone.NewClient(jupiterone.Options{
		BaseURL:    cfg.BaseURL,
		Token:      cfg.Credential(),
		AccountID:  cfg.AccountID,
		Version:    Version,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})

	mcpServer := server.NewJupiterOneMCPServer(Version, cfg, client, anService, m, logService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start blocks until the transport ends or ctx is cancelled
	if err := mcpServer.Start(ctx); err != nil {
		slog.Error("Server error", "error", err)
		stop()
		os.Exit(1)
	}

	if err := mcpServer.Stop(context.Background()); err != nil {
		slog.Error("Error stopping server", "error", err)
	}
}
