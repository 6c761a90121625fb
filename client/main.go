package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/pflag"
)

// go run ./client/... --query "FIND User AS u RETURN u.email" bin/jupiterone-mcp
func main() {
	query := pflag.String("query", "", "J1QL query to check with validate-j1ql-query")
	timeout := pflag.Duration("timeout", 45*time.Second, "overall timeout")
	pflag.Parse()

	if pflag.NArg() < 1 {
		log.Fatal("Usage: go run ./client [--query J1QL] <path_to_mcp_program> [program args...]")
	}
	program := pflag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := client.NewStdioMCPClient(
		program,
		os.Environ(), // passthrough environments
		pflag.Args()[1:]...,
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer c.Close()
	captureServerLog(c)

	fmt.Println("Initializing client...")
	if err := c.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "jupiterone-mcp-smoke-client",
		Version: "1.0.0",
	}

	serverInfo, err := c.Initialize(ctx, initRequest)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	fmt.Printf("Initialized with server: %s %s\n\n", serverInfo.ServerInfo.Name, serverInfo.ServerInfo.Version)

	if err := c.Ping(ctx); err != nil {
		log.Fatalf("Health check failed: %v", err)
	}
	fmt.Println("Server is alive and responding")

	if serverInfo.Capabilities.Tools != nil {
		toolsResult, err := c.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			log.Fatalf("Failed to list tools: %v", err)
		}
		fmt.Printf("Server has %d tools available\n", len(toolsResult.Tools))
		for i, tool := range toolsResult.Tools {
			fmt.Printf("  %d. %s\n", i+1, tool.Name)
		}
	}

	if *query != "" {
		req := mcp.CallToolRequest{}
		req.Params.Name = "validate-j1ql-query"
		req.Params.Arguments = map[string]any{"query": *query}

		result, err := c.CallTool(ctx, req)
		if err != nil {
			log.Fatalf("Failed to call validate-j1ql-query: %v", err)
		}
		for _, content := range result.Content {
			if text, ok := content.(mcp.TextContent); ok {
				fmt.Println(text.Text)
			}
		}
	}

	fmt.Println("Done. Shutting down...")
}

func captureServerLog(c *client.Client) {
	if stderr, ok := client.GetStderr(c); ok {
		go func() {
			buf := make([]byte, 4096)
			for {
				n, err := stderr.Read(buf)
				if err != nil {
					if err != io.EOF {
						log.Printf("Error reading stderr: %v", err)
					}
					return
				}
				if n > 0 {
					fmt.Fprintf(os.Stderr, "[Server] %s", buf[:n])
				}
			}
		}()
	}
}
