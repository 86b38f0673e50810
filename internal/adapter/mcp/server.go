// Package adaptmcp exposes BMI assessment as Model Context Protocol tools.
package adaptmcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"bmicalc/internal/app"
)

// NewServer registers every tool on a new MCP server.
func NewServer(svc *app.AssessmentService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"bmicalc",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Use calculate_bmi to assess a person's weight and height; "+
			"use bmi_categories to explain the classification thresholds."),
	)

	calc := NewCalculateTool(svc)
	s.AddTool(calc.Definition(), calc.Handle)

	cats := NewCategoriesTool()
	s.AddTool(cats.Definition(), cats.Handle)

	return s
}

// numberArg extracts a numeric argument. JSON numbers arrive as float64.
func numberArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}
