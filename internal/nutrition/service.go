package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/workoutmanager/internal/telemetry/metrics"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type valuesRepo interface {
	Plan(ctx context.Context, id int) (*Plan, error)
	Meal(ctx context.Context, id int) (*Meal, error)
	MealItem(ctx context.Context, id int) (*MealItem, error)
	SearchIngredients(ctx context.Context, term string, languages []string) ([]SearchResult, error)
}

// Service exposes the nutritional values queries on stored records.
type Service struct {
	repo             valuesRepo
	ingredients      IngredientLookup
	calculator       *Calculator
	metricsManager   *metrics.Manager
	defaultLanguages []string
}

func NewService(
	repo valuesRepo,
	ingredients IngredientLookup,
	defaultLanguages []string,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:             repo,
		ingredients:      ingredients,
		calculator:       NewCalculator(ingredients, metricsManager),
		metricsManager:   metricsManager,
		defaultLanguages: defaultLanguages,
	}
}

func (s *Service) Ingredient(ctx context.Context, id int) (*Ingredient, error) {
	return s.ingredients.Ingredient(ctx, id)
}

func (s *Service) ItemValues(ctx context.Context, itemID int) (*ItemValues, error) {
	item, err := s.repo.MealItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.calculator.ItemValues(ctx, *item)
}

func (s *Service) MealValues(ctx context.Context, mealID int) (Values, error) {
	meal, err := s.repo.Meal(ctx, mealID)
	if err != nil {
		return Values{}, err
	}
	return s.calculator.MealValues(ctx, *meal)
}

func (s *Service) PlanValues(ctx context.Context, planID int, filter MealFilter) (*PlanValues, error) {
	plan, err := s.repo.Plan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.calculator.PlanValues(ctx, *plan, filter)
}

// IngredientValues values an ad-hoc amount of the ingredient, as if it were a meal item.
func (s *Service) IngredientValues(ctx context.Context, ingredientID int, amount float64, unitID *int) (_ *ItemValues, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.ingredientValues")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ingredient.id", ingredientID))

	ingredient, err := s.ingredients.Ingredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	s.metricsManager.NutritionCalculation(metrics.CalculationKindIngredient)
	values, err := ValuateItem(ingredient, MealItem{
		IngredientID: ingredientID,
		WeightUnitID: unitID,
		Amount:       amount,
	})
	if err != nil {
		return nil, fmt.Errorf("ingredient %d: %w", ingredientID, err)
	}
	return values, nil
}

// SearchIngredients returns accepted ingredients whose name contains term.
// Empty languages fall back to the configured defaults.
func (s *Service) SearchIngredients(ctx context.Context, term string, languages []string) ([]SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []SearchResult{}, nil
	}
	if len(languages) == 0 {
		languages = s.defaultLanguages
	}
	return s.repo.SearchIngredients(ctx, term, languages)
}
