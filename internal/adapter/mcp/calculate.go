package adaptmcp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"bmicalc/internal/app"
	"bmicalc/internal/domain"
)

// CalculateTool handles the calculate_bmi MCP tool.
type CalculateTool struct {
	svc *app.AssessmentService
}

// NewCalculateTool creates a CalculateTool backed by svc.
func NewCalculateTool(svc *app.AssessmentService) *CalculateTool {
	return &CalculateTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *CalculateTool) Definition() mcp.Tool {
	return mcp.NewTool("calculate_bmi",
		mcp.WithDescription(
			"Calculate Body Mass Index from weight and height. "+
				"Returns the BMI, its category, a healthy/needs-attention status, "+
				"the ideal weight range for the height and a recommendation.",
		),
		mcp.WithNumber("weight",
			mcp.Required(),
			mcp.Description("Body weight, in kg unless weight_unit is \"lb\""),
		),
		mcp.WithNumber("height",
			mcp.Required(),
			mcp.Description("Height, in cm unless height_unit is \"in\""),
		),
		mcp.WithNumber("age",
			mcp.Required(),
			mcp.Description("Age in whole years (1-120)"),
		),
		mcp.WithString("gender",
			mcp.Description("male, female or other (default: other)"),
		),
		mcp.WithString("weight_unit",
			mcp.Description("kg (default) or lb"),
		),
		mcp.WithString("height_unit",
			mcp.Description("cm (default) or in"),
		),
	)
}

// Handle processes the calculate_bmi tool call.
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, ok := numberArg(req, "weight")
	if !ok {
		return mcp.NewToolResultError("'weight' is required"), nil
	}
	height, ok := numberArg(req, "height")
	if !ok {
		return mcp.NewToolResultError("'height' is required"), nil
	}
	age, ok := numberArg(req, "age")
	if !ok {
		return mcp.NewToolResultError("'age' is required"), nil
	}
	if age != math.Trunc(age) {
		return mcp.NewToolResultError("'age' must be a whole number of years"), nil
	}

	in := app.Input{
		Weight:     weight,
		Height:     height,
		Age:        int(age),
		Gender:     req.GetString("gender", "other"),
		WeightUnit: req.GetString("weight_unit", "kg"),
		HeightUnit: req.GetString("height_unit", "cm"),
	}

	a, err := t.svc.Assess(in)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Error()), nil
		}
		if errors.Is(err, domain.ErrComputation) || errors.Is(err, domain.ErrInvalidProfile) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("calculate_bmi: %w", err)
	}

	return mcp.NewToolResultText(a.Summary()), nil
}
