package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jupiterone/jupiterone-mcp/internal/config"
)

// osExit is a variable that can be mocked in tests
var osExit = os.Exit

const helpHeader = `jupiterone-mcp - JupiterOne Model Context Protocol Server

Usage:
  jupiterone-mcp [OPTIONS]

Options:
`

const helpFooter = `
Required Environment Variables (stdio transport):
  JUPITERONE_API_KEY        API key (or JUPITERONE_OAUTH_TOKEN)
  JUPITERONE_ACCOUNT_ID     JupiterOne account ID

Optional Environment Variables:
  JUPITERONE_BASE_URL                 GraphQL endpoint (default: https://graphql.us.jupiterone.io)
  JUPITERONE_REQUEST_TIMEOUT          Timeout of each API call (default: 60s)
  JUPITERONE_READ_ONLY                Register read-only tools only (default: false)
  JUPITERONE_LOG_LEVEL                debug, info, notice, warning, error, critical, alert, emergency
  JUPITERONE_LOG_FORMAT               text or json
  JUPITERONE_MCP_TRANSPORT            stdio or http (default: stdio)
  JUPITERONE_MCP_HTTP_HOST            HTTP bind address (default: 127.0.0.1)
  JUPITERONE_MCP_HTTP_PORT            HTTP port (default: 80, or 443 with TLS)
  JUPITERONE_MCP_HTTP_ALLOWED_ORIGINS Comma-separated CORS origins, "*" for all
  JUPITERONE_MCP_METRICS              Serve Prometheus metrics on /metrics (default: false)

Examples:
  # Using environment variables
  JUPITERONE_API_KEY=... JUPITERONE_ACCOUNT_ID=... jupiterone-mcp

  # Using CLI flags (takes precedence over environment variables)
  jupiterone-mcp --api-key ... --account-id ... --read-only

For more information, visit: https://github.com/jupiterone/jupiterone-mcp
`

// options holds the parsed command line.
type options struct {
	overrides config.CLIOverrides
	readOnly  bool
	help      bool
	version   bool
}

func newFlagSet(o *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("jupiterone-mcp", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SortFlags = false

	flagSet.BoolVarP(&o.help, "help", "h", false, "Show this help message")
	flagSet.BoolVarP(&o.version, "version", "v", false, "Show version information")
	flagSet.StringVar(&o.overrides.APIKey, "api-key", "", "JupiterOne API key (overrides env var)")
	flagSet.StringVar(&o.overrides.AccountID, "account-id", "", "JupiterOne account ID (overrides env var)")
	flagSet.StringVar(&o.overrides.BaseURL, "base-url", "", "JupiterOne GraphQL endpoint (overrides env var)")
	flagSet.StringVar(&o.overrides.TransportMode, "transport", "", "MCP transport: stdio or http (overrides env var)")
	flagSet.StringVar(&o.overrides.Host, "http-host", "", "HTTP bind address (overrides env var)")
	flagSet.StringVar(&o.overrides.Port, "http-port", "", "HTTP port (overrides env var)")
	flagSet.BoolVar(&o.readOnly, "read-only", false, "Register read-only tools only (overrides env var)")
	flagSet.StringVar(&o.overrides.LogLevel, "log-level", "", "Log level (overrides env var)")

	return flagSet
}

// parse reads the flags of args, which excludes the program name.
// Arguments after "--" are ignored.
func parse(args []string) (*options, *pflag.FlagSet, error) {
	o := &options{}
	flagSet := newFlagSet(o)

	if err := flagSet.Parse(args); err != nil {
		return nil, flagSet, err
	}

	// pflag consumes the next argument as the value even when it is another flag.
	var err error
	flagSet.Visit(func(f *pflag.Flag) {
		if err == nil && f.Value.Type() == "string" && strings.HasPrefix(f.Value.String(), "--") {
			err = fmt.Errorf("--%s requires a value (got flag %s instead)", f.Name, f.Value.String())
		}
	})
	if err != nil {
		return nil, flagSet, err
	}

	positional := flagSet.Args()
	if dash := flagSet.ArgsLenAtDash(); dash >= 0 {
		positional = positional[:dash]
	}
	if len(positional) > 0 {
		return nil, flagSet, fmt.Errorf("unknown flag or argument: %s", positional[0])
	}

	if flagSet.Changed("read-only") {
		o.overrides.ReadOnly = fmt.Sprintf("%t", o.readOnly)
	}
	return o, flagSet, nil
}

// HandleArgs parses os.Args and returns the configuration overrides.
// --help and --version print their output and exit; invalid arguments exit with status 1.
func HandleArgs(version string) *config.CLIOverrides {
	o, flagSet, err := parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
		return nil
	}

	if o.help {
		fmt.Print(helpHeader + flagSet.FlagUsages() + helpFooter)
		osExit(0)
		return nil
	}

	if o.version {
		fmt.Printf("jupiterone-mcp version: %s\n", version)
		osExit(0)
		return nil
	}

	return &o.overrides
}
