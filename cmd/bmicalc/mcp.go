package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	adaptmcp "bmicalc/internal/adapter/mcp"
	"bmicalc/internal/app"
)

// mcpCmd serves the BMI tools over the MCP stdio transport.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve BMI tools over MCP (stdio)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.ServeStdio(adaptmcp.NewServer(app.NewAssessmentService(nil), version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
