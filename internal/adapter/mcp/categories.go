package adaptmcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"bmicalc/internal/domain"
)

// CategoriesTool handles the bmi_categories MCP tool.
type CategoriesTool struct{}

// NewCategoriesTool creates a CategoriesTool.
func NewCategoriesTool() *CategoriesTool {
	return &CategoriesTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *CategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("bmi_categories",
		mcp.WithDescription("List the BMI categories with their ranges and recommendations."),
	)
}

// Handle renders the category table as markdown.
func (t *CategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("| Category | Range | Healthy | Recommendation |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, c := range domain.Categories() {
		healthy := "no"
		if c.Healthy {
			healthy = "yes"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", c.Label, c.Range, healthy, c.Recommendation)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
