package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/workoutmanager/internal/nutrition"
)

// valuesService is the part of nutrition.Service the tools need.
type valuesService interface {
	SearchIngredients(ctx context.Context, term string, languages []string) ([]nutrition.SearchResult, error)
	IngredientValues(ctx context.Context, ingredientID int, amount float64, unitID *int) (*nutrition.ItemValues, error)
	PlanValues(ctx context.Context, planID int, filter nutrition.MealFilter) (*nutrition.PlanValues, error)
}

var ErrPlanNotOwned = errors.New("nutrition plan belongs to another user")

// PlanOwners resolves the user owning a nutrition plan.
type PlanOwners interface {
	PlanOwner(ctx context.Context, planID int) (int, error)
}

// PlanAccess restricts the plan tools to the plans of one user.
// A nil PlanAccess allows every plan (stdio, run by the operator).
type PlanAccess struct {
	Owners PlanOwners
	UserID int
}

// contextService provides what the tool handlers return; an interface for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	SearchIngredients(ctx context.Context, term string, languages []string) ([]nutrition.SearchResult, error)
	IngredientValues(ctx context.Context, ingredientID int, amount float64, unitID *int) (*nutrition.ItemValues, error)
	PlanValues(ctx context.Context, planID int, filter nutrition.MealFilter) (*nutrition.PlanValues, error)
}

type ContextService struct {
	schema SchemaRepo
	values valuesService
	access *PlanAccess
}

func NewContextService(schema SchemaRepo, values valuesService, access *PlanAccess) *ContextService {
	return &ContextService{
		schema: schema,
		values: values,
		access: access,
	}
}

// GetSchema renders the nutrition tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	if s.schema == nil {
		return "", fmt.Errorf("schema not available")
	}
	cols, err := s.schema.NutritionColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Nutrition DB Schema\n\nNo nutrition tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("# Nutrition DB Schema\n\n")
	b.WriteString("Ingredient values are per 100g; energy in kcal, everything else in grams.\n\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "## %s\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n", table)
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) SearchIngredients(ctx context.Context, term string, languages []string) ([]nutrition.SearchResult, error) {
	return s.values.SearchIngredients(ctx, term, languages)
}

func (s *ContextService) IngredientValues(ctx context.Context, ingredientID int, amount float64, unitID *int) (*nutrition.ItemValues, error) {
	return s.values.IngredientValues(ctx, ingredientID, amount, unitID)
}

func (s *ContextService) PlanValues(ctx context.Context, planID int, filter nutrition.MealFilter) (*nutrition.PlanValues, error) {
	if s.access != nil {
		ownerID, err := s.access.Owners.PlanOwner(ctx, planID)
		if err != nil {
			return nil, err
		}
		if ownerID != s.access.UserID {
			return nil, fmt.Errorf("%w: plan %d", ErrPlanNotOwned, planID)
		}
	}
	return s.values.PlanValues(ctx, planID, filter)
}
