// Package mcpserver exposes the tool catalog over the Model Context Protocol.
package mcpserver

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	servercfg "github.com/crystaldolphin/discordmcp/internal/config/server"
	"github.com/crystaldolphin/discordmcp/internal/dispatch"
	"github.com/crystaldolphin/discordmcp/internal/tools"
)

// Dispatcher runs one tool call.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args tools.ArgumentBag) dispatch.Envelope
	Handles(name string) bool
}

// Server answers tools/list from the registry and forwards tools/call to the
// dispatcher. Failed calls are ordinary results flagged isError, never
// JSON-RPC errors.
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
}

func New(cfg servercfg.ServerConfig, registry *tools.Registry, d Dispatcher) *Server {
	s := server.NewMCPServer(cfg.Name, cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, desc := range registry.List() {
		if !d.Handles(string(desc.Name)) {
			slog.Warn("mcp: tool has no route, not advertising it", "tool", desc.Name)
			continue
		}
		s.AddTool(toolFor(desc), callHandler(d))
	}
	return &Server{mcp: s, registry: registry}
}

func toolFor(d tools.Descriptor) mcp.Tool {
	props := make(map[string]any, len(d.Params))
	for _, p := range d.Params {
		props[p.Name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
	}
	return mcp.Tool{
		Name:        string(d.Name),
		Description: d.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   d.Required(),
		},
	}
}

func callHandler(d Dispatcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return Render(d.Dispatch(ctx, req.Params.Name, req.GetArguments())), nil
	}
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio reads JSON-RPC messages from in and writes responses to out
// until ctx is done or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))
	slog.Info("mcp: serving on stdio", "tools", s.registry.Len())
	return stdio.Listen(ctx, in, out)
}
