package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jupiterone/jupiterone-mcp/internal/analytics"
	"github.com/jupiterone/jupiterone-mcp/internal/config"
	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
	"github.com/jupiterone/jupiterone-mcp/internal/logger"
	"github.com/jupiterone/jupiterone-mcp/internal/metrics"
)

const (
	httpReadHeaderTimeout = 10 * time.Second
	httpShutdownTimeout   = 10 * time.Second

	mcpPath     = "/mcp"
	metricsPath = "/metrics"
)

const instructions = "This is the JupiterOne MCP server. It queries the JupiterOne asset graph with J1QL " +
	"(execute-j1ql-query, validate-j1ql-query, get-j1ql-examples), manages alert rules and dashboards, " +
	"and reports on integrations. Queries saved into rules or widgets are validated before the change is made. " +
	"When unsure about entity classes or properties, start with get-j1ql-examples and discovery queries."

// JupiterOneMCPServer represents the MCP server instance
type JupiterOneMCPServer struct {
	MCPServer *server.MCPServer

	// HTTPServerReady is closed once the HTTP listener accepts connections.
	HTTPServerReady chan struct{}

	config     *config.Config
	client     jupiterone.Service
	anService  analytics.Service
	metrics    *metrics.Metrics
	log        *logger.Service
	version    string
	httpServer *http.Server
}

// NewJupiterOneMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated.
func NewJupiterOneMCPServer(version string, cfg *config.Config, client jupiterone.Service, anService analytics.Service, m *metrics.Metrics, log *logger.Service) *JupiterOneMCPServer {
	s := &JupiterOneMCPServer{
		HTTPServerReady: make(chan struct{}),
		config:          cfg,
		client:          client,
		anService:       anService,
		metrics:         m,
		log:             log,
		version:         version,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)

	s.MCPServer = server.NewMCPServer(
		"jupiterone-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(hooks),
		server.WithInstructions(instructions),
	)
	return s
}

// Start registers the tools and serves the configured transport until ctx is
// cancelled or the transport fails.
func (s *JupiterOneMCPServer) Start(ctx context.Context) error {
	slog.Info("Starting JupiterOne MCP Server", "transport", s.config.TransportMode, "version", s.version)

	if err := s.RegisterTools(); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}
	s.emitStartupEvents()

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP(ctx)
	case config.TransportModeStdio, "":
		if s.client != nil && !s.client.TestConnection(ctx) {
			slog.Warn("JupiterOne connection check failed; tools will report errors until the credentials are fixed")
		}
		slog.Info("Started JupiterOne MCP Server. Now listening for input...")
		return server.ServeStdio(s.MCPServer)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

func (s *JupiterOneMCPServer) emitStartupEvents() {
	if s.anService == nil || !s.anService.IsEnabled() {
		return
	}
	s.anService.EmitEvent(s.anService.NewStartupEvent())
	s.anService.EmitEvent(s.anService.NewOSInfoEvent(s.config.BaseURL))
}

// handler builds the HTTP handler tree: the MCP endpoint and, when enabled, the metrics endpoint.
func (s *JupiterOneMCPServer) handler() http.Handler {
	streamable := server.NewStreamableHTTPServer(
		s.MCPServer,
		server.WithEndpointPath(mcpPath),
		server.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle(mcpPath, streamable)
	if s.config.MetricsEnabled {
		mux.Handle(metricsPath, s.metrics.Handler())
	}
	return chainMiddleware(s.config, s.config.AllowedOrigins(), mux)
}

// startHTTP listens on the configured address and serves until ctx is done.
func (s *JupiterOneMCPServer) startHTTP(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.HTTPHost, s.config.HTTPPort)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	if s.config.HTTPTLSEnabled {
		tlsConfig, err := s.buildTLSConfig()
		if err != nil {
			return err
		}
		s.httpServer.TLSConfig = tlsConfig
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	scheme := "http"
	if s.config.HTTPTLSEnabled {
		scheme = "https"
	}
	slog.Info("Started JupiterOne MCP HTTP Server", "url", fmt.Sprintf("%s://%s%s", scheme, addr, mcpPath))
	if s.config.MetricsEnabled {
		slog.Info("Prometheus metrics enabled", "path", metricsPath)
	}
	if len(s.config.AllowedOrigins()) == 0 {
		slog.Info("CORS disabled, no allowed origins configured")
	}
	if s.config.Credential() == "" {
		slog.Info("No fallback credential configured; tools/call requires a bearer token")
	}

	errChan := make(chan error, 1)
	go func() {
		if s.config.HTTPTLSEnabled {
			errChan <- s.httpServer.ServeTLS(ln, "", "")
			return
		}
		errChan <- s.httpServer.Serve(ln)
	}()
	close(s.HTTPServerReady)

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.Stop(context.Background())
	}
}

// buildTLSConfig loads the configured key pair. Cipher suites are left to the Go defaults.
func (s *JupiterOneMCPServer) buildTLSConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(s.config.HTTPTLSCertFile, s.config.HTTPTLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate and key: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Stop gracefully stops the HTTP server. It is a no-op in stdio mode.
func (s *JupiterOneMCPServer) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	slog.Info("Stopping JupiterOne MCP Server...")

	ctx, cancel := context.WithTimeout(ctx, httpShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
