package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/workoutmanager/internal/nutrition"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// ContextInput takes no arguments.
type ContextInput struct{}

func (h *Handler) GetNutritionContextTool() func(context.Context, *mcp.CallToolRequest, ContextInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ContextInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type SearchIngredientsInput struct {
	Term      string   `json:"term" jsonschema:"Part of the ingredient name, case insensitive"`
	Languages []string `json:"languages,omitempty" jsonschema:"Language codes to search in (e.g. en, de); defaults to the server languages"`
}

func (h *Handler) SearchIngredientsTool() func(context.Context, *mcp.CallToolRequest, SearchIngredientsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchIngredientsInput) (*mcp.CallToolResult, any, error) {
		results, err := h.service.SearchIngredients(ctx, in.Term, in.Languages)
		if err != nil {
			return errorResult("Error searching ingredients: " + err.Error()), nil, nil
		}
		return jsonResult(results), nil, nil
	}
}

type IngredientValuesInput struct {
	IngredientID int     `json:"ingredient_id" jsonschema:"Ingredient id"`
	Amount       float64 `json:"amount" jsonschema:"Amount, in grams unless unit_id is given"`
	UnitID       *int    `json:"unit_id,omitempty" jsonschema:"Weight unit id (e.g. cup, slice) the amount is given in"`
}

func (h *Handler) GetIngredientValuesTool() func(context.Context, *mcp.CallToolRequest, IngredientValuesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in IngredientValuesInput) (*mcp.CallToolResult, any, error) {
		if in.IngredientID <= 0 {
			return errorResult("Invalid ingredient_id"), nil, nil
		}
		values, err := h.service.IngredientValues(ctx, in.IngredientID, in.Amount, in.UnitID)
		if err != nil {
			return errorResult("Error computing values: " + err.Error()), nil, nil
		}
		return jsonResult(values.Rounded()), nil, nil
	}
}

type PlanValuesInput struct {
	PlanID int    `json:"plan_id" jsonschema:"Nutrition plan id"`
	Meals  string `json:"meals,omitempty" jsonschema:"Which meals to sum: all (default) or daily"`
}

func (h *Handler) GetPlanNutritionalValuesTool() func(context.Context, *mcp.CallToolRequest, PlanValuesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanValuesInput) (*mcp.CallToolResult, any, error) {
		filter, err := nutrition.ParseMealFilter(in.Meals)
		if err != nil {
			return errorResult(fmt.Sprintf("Invalid meals %q: use all or daily", in.Meals)), nil, nil
		}
		values, err := h.service.PlanValues(ctx, in.PlanID, filter)
		if err != nil {
			return errorResult("Error computing plan values: " + err.Error()), nil, nil
		}
		return jsonResult(values.Rounded()), nil, nil
	}
}
