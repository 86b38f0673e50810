package adaptmcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/app"
)

func toolReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestCalculateTool_Definition(t *testing.T) {
	def := NewCalculateTool(app.NewAssessmentService(nil)).Definition()

	assert.Equal(t, "calculate_bmi", def.Name)
	assert.Len(t, def.InputSchema.Properties, 6)
	assert.ElementsMatch(t, []string{"weight", "height", "age"}, def.InputSchema.Required)
}

func TestCalculateTool_Handle(t *testing.T) {
	tool := NewCalculateTool(app.NewAssessmentService(nil))

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		contains  []string
	}{
		{
			name:     "metric",
			args:     map[string]any{"weight": 70.0, "height": 175.0, "age": 30.0, "gender": "male"},
			contains: []string{"BMI: 22.86", "Category: Normal Weight", "Status: Healthy", "56.7 - 76.3 kg"},
		},
		{
			name:     "gender defaults to other",
			args:     map[string]any{"weight": 45.0, "height": 160.0, "age": 30.0},
			contains: []string{"BMI: 17.58", "Category: Underweight", "Status: Needs Attention"},
		},
		{
			name: "imperial",
			args: map[string]any{
				"weight": 209.4, "weight_unit": "lb",
				"height": 66.93, "height_unit": "in",
				"age": 50.0, "gender": "female",
			},
			contains: []string{"Category: Obese"},
		},
		{
			name:      "missing height",
			args:      map[string]any{"weight": 70.0, "age": 30.0},
			wantError: true,
			contains:  []string{"'height' is required"},
		},
		{
			name:      "fractional age",
			args:      map[string]any{"weight": 70.0, "height": 175.0, "age": 30.5},
			wantError: true,
		},
		{
			name:      "out of range",
			args:      map[string]any{"weight": 5.0, "height": 175.0, "age": 30.0},
			wantError: true,
			contains:  []string{"weight: must be between 10 and 300 kg"},
		},
		{
			name:      "placeholder gender",
			args:      map[string]any{"weight": 70.0, "height": 175.0, "age": 30.0, "gender": "Select Gender"},
			wantError: true,
			contains:  []string{"gender"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tool.Handle(context.Background(), toolReq(tc.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tc.wantError, result.IsError, resultText(result))
			for _, want := range tc.contains {
				assert.Contains(t, resultText(result), want)
			}
		})
	}
}

func TestCategoriesTool_Handle(t *testing.T) {
	result, err := NewCategoriesTool().Handle(context.Background(), toolReq(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(result)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], "Underweight")
	assert.Contains(t, lines[3], "| Normal Weight | BMI 18.5 - 24.9 | yes |")
	assert.Contains(t, lines[5], "BMI ≥ 30")
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(app.NewAssessmentService(nil), "test"))
}
