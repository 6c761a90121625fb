package config

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jupiterone/jupiterone-mcp/internal/logger"
)

type TransportMode string

const (
	TransportModeStdio TransportMode = "stdio"
	TransportModeHTTP  TransportMode = "http"

	// DefaultBaseURL is the GraphQL endpoint of the US JupiterOne region.
	DefaultBaseURL = "https://graphql.us.jupiterone.io"
	// DefaultRequestTimeout bounds every call made to the JupiterOne API.
	DefaultRequestTimeout = 60 * time.Second
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Config holds the application configuration
type Config struct {
	APIKey             string
	OAuthToken         string // Takes precedence over APIKey when both are set
	AccountID          string
	BaseURL            string
	RequestTimeout     time.Duration
	ReadOnly           bool // If true, only read-only tools are registered
	Telemetry          bool // If true, usage events are sent to TelemetryEndpoint
	TelemetryEndpoint  string
	TelemetryToken     string
	LogLevel           string
	LogFormat          string
	TransportMode      TransportMode // MCP Transport mode (e.g., "stdio", "http")
	HTTPPort           string        // HTTP server port (default: "443" with TLS, "80" without TLS)
	HTTPHost           string        // HTTP server host (default: "127.0.0.1")
	HTTPAllowedOrigins string        // Comma-separated list of allowed CORS origins (optional, "*" for all)
	HTTPTLSEnabled     bool
	HTTPTLSCertFile    string
	HTTPTLSKeyFile     string
	MetricsEnabled     bool // Exposes /metrics in HTTP mode
}

// Credential returns the token sent as bearer credential to JupiterOne.
func (c *Config) Credential() string {
	if c.OAuthToken != "" {
		return c.OAuthToken
	}
	return c.APIKey
}

// AllowedOrigins splits HTTPAllowedOrigins into a list, dropping empty entries.
func (c *Config) AllowedOrigins() []string {
	if c.HTTPAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.HTTPAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("JupiterOne base URL %q is not a valid absolute URL", c.BaseURL)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}

	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}

	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}

	// For STDIO mode the credential and account come from the environment.
	// For HTTP mode they can be supplied per request.
	if c.TransportMode == TransportModeStdio {
		if c.Credential() == "" {
			return fmt.Errorf("JupiterOne API key is required for STDIO mode (set JUPITERONE_API_KEY or JUPITERONE_OAUTH_TOKEN)")
		}
		if c.AccountID == "" {
			return fmt.Errorf("JupiterOne account ID is required for STDIO mode (set JUPITERONE_ACCOUNT_ID)")
		}
	}

	if c.Telemetry && c.TelemetryEndpoint == "" {
		return fmt.Errorf("telemetry is enabled but JUPITERONE_TELEMETRY_ENDPOINT is empty")
	}

	if c.TransportMode == TransportModeHTTP && c.HTTPTLSEnabled {
		if c.HTTPTLSCertFile == "" {
			return fmt.Errorf("TLS certificate file is required when TLS is enabled (set JUPITERONE_MCP_HTTP_TLS_CERT_FILE)")
		}
		if c.HTTPTLSKeyFile == "" {
			return fmt.Errorf("TLS key file is required when TLS is enabled (set JUPITERONE_MCP_HTTP_TLS_KEY_FILE)")
		}
		if _, err := tls.LoadX509KeyPair(c.HTTPTLSCertFile, c.HTTPTLSKeyFile); err != nil {
			return fmt.Errorf("failed to load TLS certificate and key: %w", err)
		}
	}

	return nil
}

// CLIOverrides holds optional configuration values from CLI flags
type CLIOverrides struct {
	APIKey        string
	AccountID     string
	BaseURL       string
	ReadOnly      string
	LogLevel      string
	TransportMode string
	Port          string
	Host          string
}

// LoadConfig loads configuration from environment variables, applies CLI overrides, and validates.
// CLI flag values take precedence over environment variables.
func LoadConfig(cliOverrides *CLIOverrides) (*Config, error) {
	logLevel := GetEnvWithDefault("JUPITERONE_LOG_LEVEL", "info")
	logFormat := GetEnvWithDefault("JUPITERONE_LOG_FORMAT", "text")

	if cliOverrides != nil && cliOverrides.LogLevel != "" {
		logLevel = cliOverrides.LogLevel
	}

	if !slices.Contains(logger.ValidLogLevels, logLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid JUPITERONE_LOG_LEVEL '%s', using default 'info'. Valid values: %v\n", logLevel, logger.ValidLogLevels)
		logLevel = "info"
	}

	if !slices.Contains(logger.ValidLogFormats, logFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid JUPITERONE_LOG_FORMAT '%s', using default 'text'. Valid values: %v\n", logFormat, logger.ValidLogFormats)
		logFormat = "text"
	}

	cfg := &Config{
		APIKey:             GetEnv("JUPITERONE_API_KEY"),
		OAuthToken:         GetEnv("JUPITERONE_OAUTH_TOKEN"),
		AccountID:          GetEnv("JUPITERONE_ACCOUNT_ID"),
		BaseURL:            GetEnvWithDefault("JUPITERONE_BASE_URL", DefaultBaseURL),
		RequestTimeout:     ParseDuration(GetEnv("JUPITERONE_REQUEST_TIMEOUT"), DefaultRequestTimeout),
		ReadOnly:           ParseBool(GetEnv("JUPITERONE_READ_ONLY"), false),
		Telemetry:          ParseBool(GetEnv("JUPITERONE_TELEMETRY"), false),
		TelemetryEndpoint:  GetEnv("JUPITERONE_TELEMETRY_ENDPOINT"),
		TelemetryToken:     GetEnv("JUPITERONE_TELEMETRY_TOKEN"),
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		TransportMode:      GetTransportModeWithDefault("JUPITERONE_MCP_TRANSPORT", TransportModeStdio),
		HTTPPort:           GetEnv("JUPITERONE_MCP_HTTP_PORT"),
		HTTPHost:           GetEnvWithDefault("JUPITERONE_MCP_HTTP_HOST", "127.0.0.1"),
		HTTPAllowedOrigins: GetEnv("JUPITERONE_MCP_HTTP_ALLOWED_ORIGINS"),
		HTTPTLSEnabled:     ParseBool(GetEnv("JUPITERONE_MCP_HTTP_TLS_ENABLED"), false),
		HTTPTLSCertFile:    GetEnv("JUPITERONE_MCP_HTTP_TLS_CERT_FILE"),
		HTTPTLSKeyFile:     GetEnv("JUPITERONE_MCP_HTTP_TLS_KEY_FILE"),
		MetricsEnabled:     ParseBool(GetEnv("JUPITERONE_MCP_METRICS"), false),
	}

	if cliOverrides != nil {
		if cliOverrides.APIKey != "" {
			cfg.APIKey = cliOverrides.APIKey
		}
		if cliOverrides.AccountID != "" {
			cfg.AccountID = cliOverrides.AccountID
		}
		if cliOverrides.BaseURL != "" {
			cfg.BaseURL = cliOverrides.BaseURL
		}
		if cliOverrides.ReadOnly != "" {
			cfg.ReadOnly = ParseBool(cliOverrides.ReadOnly, false)
		}
		if cliOverrides.TransportMode != "" {
			cfg.TransportMode = TransportMode(cliOverrides.TransportMode)
		}
		if cliOverrides.Port != "" {
			cfg.HTTPPort = cliOverrides.Port
		}
		if cliOverrides.Host != "" {
			cfg.HTTPHost = cliOverrides.Host
		}
	}

	// Default to 443 for HTTPS, 80 for HTTP
	if cfg.HTTPPort == "" {
		if cfg.HTTPTLSEnabled {
			cfg.HTTPPort = "443"
		} else {
			cfg.HTTPPort = "80"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetTransportModeWithDefault returns the value of an environment variable or a default value
func GetTransportModeWithDefault(key string, defaultValue TransportMode) TransportMode {
	if value := os.Getenv(key); value != "" {
		return TransportMode(value)
	}
	return defaultValue
}

// ParseBool parses a string to bool using strconv.ParseBool.
// Returns the default value if the string is empty or invalid.
// Accepts: "1", "t", "T", "true", "True", "TRUE" for true
//
//	"0", "f", "F", "false", "False", "FALSE" for false
func ParseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("Invalid boolean value, using default", "value", value, "default", defaultValue)
		return defaultValue
	}
	return parsed
}

// ParseDuration parses a Go duration string ("30s", "2m") or a bare number of seconds.
// Returns the default value if the string is empty or invalid.
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration value, using default", "value", value, "default", defaultValue)
		return defaultValue
	}
	return parsed
}
