package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the nutrition queries as tools.
// Mounted at /mcp by the backend and served over stdio by cmd/nutrition_mcp.
// With a non nil access, plan tools only answer for the plans of access.UserID.
func NewServer(schema SchemaRepo, values valuesService, access *PlanAccess) *mcp.Server {
	h := NewHandler(NewContextService(schema, values, access))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "workoutmanager-nutrition",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_context",
		Description: "Returns the DB schema of the nutrition tables (ingredient, weight_unit, ingredient_weight_unit, nutrition_plan, meal, meal_item). Use to understand how plans, meals and ingredients relate.",
	}, h.GetNutritionContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_ingredients",
		Description: "Searches accepted ingredients by a part of their name. Args: term; optional languages (e.g. [\"en\", \"de\"]). Returns id, name and value for each match.",
	}, h.SearchIngredientsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ingredient_values",
		Description: "Returns energy (kcal), protein, carbohydrates, sugar, fat, saturated fat, fibres and sodium (g) for an amount of an ingredient. Args: ingredient_id, amount; optional unit_id when the amount is not in grams.",
	}, h.GetIngredientValuesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan_nutritional_values",
		Description: "Returns the nutritional totals of a nutrition plan, per meal totals, energy share of the macronutrients and, when the plan has a goal, the difference and percentage of the goal per field. Args: plan_id; optional meals (all or daily).",
	}, h.GetPlanNutritionalValuesTool())

	return s
}
