// Package mcpserver exposes the session description inspector as MCP tools
// over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jwulff/sdpview/internal/format"
	"github.com/jwulff/sdpview/internal/inspect"
	"github.com/jwulff/sdpview/internal/metrics"
)

// Tool names.
const (
	ToolGroups   = "sdp_groups"
	ToolExplain  = "sdp_explain"
	ToolOverview = "sdp_overview"
)

// Server wires the inspector into an MCP server.
type Server struct {
	mcp       *server.MCPServer
	inspector *inspect.Inspector
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// New creates the MCP server and registers its tools. A nil m disables
// metrics.
func New(insp *inspect.Inspector, m *metrics.Metrics, log zerolog.Logger, version string) *Server {
	s := &Server{
		mcp:       server.NewMCPServer("sdpview", version, server.WithToolCapabilities(false)),
		inspector: insp,
		metrics:   m,
		log:       log,
	}

	s.mcp.AddTool(mcp.NewTool(ToolGroups,
		mcp.WithDescription("Split a WebRTC session description (SDP) into the session section and one section per m= line. Returns JSON groups with parsed records."),
		mcp.WithString("sdp", mcp.Required(), mcp.Description("Raw SDP text, or a JSON object with type and sdp fields")),
	), s.handleGroups)

	s.mcp.AddTool(mcp.NewTool(ToolExplain,
		mcp.WithDescription("Explain one line of a session description with protocol references."),
		mcp.WithString("sdp", mcp.Required(), mcp.Description("Raw SDP text, or a JSON object with type and sdp fields")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("1-based line number within the SDP text")),
	), s.handleExplain)

	s.mcp.AddTool(mcp.NewTool(ToolOverview,
		mcp.WithDescription("Summarize transport parameters and the payload table of each media section."),
		mcp.WithString("sdp", mcp.Required(), mcp.Description("Raw SDP text, or a JSON object with type and sdp fields")),
	), s.handleOverview)

	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio serves JSON-RPC over in/out until ctx is cancelled or in closes.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info().Msg("Serving MCP over stdio")
	err := server.NewStdioServer(s.mcp).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) called(tool string) {
	if s.metrics != nil {
		s.metrics.ToolCalls.WithLabelValues(tool).Inc()
	}
}

func (s *Server) handleGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.called(ToolGroups)
	text, err := req.RequireString("sdp")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in, err := s.inspector.Inspect(text)
	if err != nil {
		return mcp.NewToolResultError("parse sdp: " + err.Error()), nil
	}

	var buf bytes.Buffer
	if err := format.WriteGroups(&buf, in.Groups, format.JSON, format.Options{}); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleExplain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.called(ToolExplain)
	text, err := req.RequireString("sdp")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	line, err := req.RequireInt("line")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.inspector.Explain(text, line)
	switch {
	case errors.Is(err, inspect.ErrNoRecord):
		return mcp.NewToolResultError(fmt.Sprintf("no record at line %d", line)), nil
	case err != nil:
		return mcp.NewToolResultError("parse sdp: " + err.Error()), nil
	case doc == nil:
		return mcp.NewToolResultText(format.NoExplanation), nil
	}

	var buf bytes.Buffer
	if err := format.WriteDocument(&buf, doc, format.JSON, format.Options{}); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.called(ToolOverview)
	text, err := req.RequireString("sdp")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in, err := s.inspector.Inspect(text)
	if err != nil {
		return mcp.NewToolResultError("parse sdp: " + err.Error()), nil
	}
	ov, err := in.Overview()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := format.WriteOverview(&buf, ov, format.JSON, format.Options{}); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(buf.String()), nil
}
