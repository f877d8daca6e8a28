package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/toyz/fakegen/internal/config"
)

// GenerateToolName is the name of the MCP tool
const GenerateToolName = "generate_mock_data"

// MCPServer exposes the Service via Model Context Protocol
type MCPServer struct {
	svc    *Service
	logger *zap.Logger
	server *server.MCPServer
}

// NewMCPServer creates an MCP server with the generation tool registered
func NewMCPServer(svc *Service) *MCPServer {
	s := &MCPServer{
		svc:    svc,
		logger: svc.logger.Named("mcp"),
	}

	s.server = server.NewMCPServer(
		"fakegen",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	return s
}

func (s *MCPServer) registerTools() {
	generateTool := mcp.NewTool(GenerateToolName,
		mcp.WithDescription("Generate a mock data factory and example data from a TypeScript interface definition"),
		mcp.WithString("interface",
			mcp.Required(),
			mcp.Description("TypeScript interface or object type alias definition"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of example records to generate, default 1"),
			mcp.DefaultNumber(1),
			mcp.Min(1),
			mcp.Max(maxCount),
		),
		mcp.WithString("target",
			mcp.Description("Language of the mock factory"),
			mcp.Enum("typescript", "go"),
		),
	)
	s.server.AddTool(generateTool, s.handleGenerate)
}

// handleGenerate handles generate_mock_data tool calls. Failures are returned
// as tool errors so the client can show them.
func (s *MCPServer) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	definition, err := request.RequireString("interface")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, target, err := s.svc.Generate(ctx, GenerateRequest{
		Interface: definition,
		Count:     request.GetInt("count", 1),
		Mode:      config.ModeBoth,
		Target:    request.GetString("target", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}

	doc, err := res.Markdown(target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(doc), nil
}

// ServeStdio serves the MCP protocol on stdin and stdout until the client
// disconnects
func (s *MCPServer) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", zap.String("tool", GenerateToolName))
	return server.ServeStdio(s.server)
}
