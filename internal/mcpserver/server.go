// Package mcpserver exposes the color toolkit to MCP clients over SSE.
// Agents get the same parsing, ramp and palette operations the CLI has,
// without shelling out.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"rainmap/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// Config holds the SSE endpoint settings.
type Config struct {
	Host    string
	Port    int
	Version string
}

// Server is the MCP server wrapping the color toolkit.
type Server struct {
	config    Config
	server    *server.MCPServer
	sseServer *server.SSEServer
	mu        sync.Mutex
}

// NewServer creates an MCP server. Zero config fields get defaults.
func NewServer(config Config) *Server {
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 8090
	}
	if config.Version == "" {
		config.Version = "dev"
	}
	return &Server{config: config}
}

// BaseURL returns the address clients connect to.
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
}

// Start registers the tools and begins serving SSE in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.server != nil {
		s.mu.Unlock()
		return fmt.Errorf("mcp server already started")
	}

	mcpServer := server.NewMCPServer(
		"rainmap",
		s.config.Version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(NewColorTools().GetTools()...)
	s.server = mcpServer

	s.sseServer = server.NewSSEServer(
		s.server,
		server.WithBaseURL(s.BaseURL()),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	sseServer := s.sseServer
	s.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logging.Info("MCPServer", "Starting MCP server on %s", addr)

	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("MCPServer", err, "SSE server error")
		}
	}()

	return nil
}

// Stop shuts the SSE server down, waiting up to five seconds for open
// connections to drain.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.server = nil
	s.sseServer = nil
	s.mu.Unlock()

	if sseServer == nil {
		return fmt.Errorf("mcp server not started")
	}

	logging.Info("MCPServer", "Stopping MCP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sseServer.Shutdown(shutdownCtx)
}
