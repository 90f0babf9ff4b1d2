package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rainmap/internal/config"
	"rainmap/internal/mcpserver"
)

var (
	mcpHost string
	mcpPort int
)

// mcpCmd serves the color toolkit over the Model Context Protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the color toolkit over the Model Context Protocol",
	Long: `Starts an SSE server exposing the color toolkit as MCP tools, so AI
assistants can parse colors, sample gradients, and query the theme
catalogs.

Clients connect to http://<host>:<port>/sse. The server runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	initLogging(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	srv := mcpserver.NewServer(mcpserver.Config{
		Host:    mcpHost,
		Port:    mcpPort,
		Version: rootCmd.Version,
	})
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("starting mcp server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s/sse\n", srv.BaseURL())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpHost, "host", "localhost", "Host the SSE server binds to")
	mcpCmd.Flags().IntVar(&mcpPort, "port", 8090, "Port the SSE server listens on")
}
