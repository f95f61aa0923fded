package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutmanager/internal/telemetry/metrics"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Energy per gram of macronutrient, in kcal.
const (
	energyPerGramProtein       = 4
	energyPerGramCarbohydrates = 4
	energyPerGramFat           = 9
)

// IngredientLookup loads ingredients, with their weight units, by id.
type IngredientLookup interface {
	Ingredient(ctx context.Context, id int) (*Ingredient, error)
}

type MealValues struct {
	MealID int    `json:"meal"`
	Values Values `json:"values"`
}

// EnergyShare is the percentage of total energy coming from each macronutrient.
type EnergyShare struct {
	Protein       Optional `json:"protein"`
	Carbohydrates Optional `json:"carbohydrates"`
	Fat           Optional `json:"fat"`
}

type PlanValues struct {
	PlanID      int            `json:"plan"`
	Filter      MealFilter     `json:"meals"`
	Total       Values         `json:"total"`
	PerMeal     []MealValues   `json:"per_meal"`
	EnergyShare EnergyShare    `json:"energy_share"`
	HasGoal     bool           `json:"has_goal"`
	Difference  OptionalValues `json:"difference"`
	Percent     OptionalValues `json:"percent_of_goal"`
}

// Rounded rounds totals and per meal values for presentation.
func (pv PlanValues) Rounded() PlanValues {
	rounded := pv
	rounded.Total = pv.Total.Rounded()
	rounded.PerMeal = make([]MealValues, len(pv.PerMeal))
	for i, mv := range pv.PerMeal {
		rounded.PerMeal[i] = MealValues{
			MealID: mv.MealID,
			Values: mv.Values.Rounded(),
		}
	}
	return rounded
}

// Calculator aggregates nutritional values over meal items, meals and plans.
// It holds no state besides its collaborators and is safe for concurrent use.
type Calculator struct {
	ingredients    IngredientLookup
	metricsManager *metrics.Manager
}

func NewCalculator(ingredients IngredientLookup, metricsManager *metrics.Manager) *Calculator {
	return &Calculator{
		ingredients:    ingredients,
		metricsManager: metricsManager,
	}
}

func (c *Calculator) ItemValues(ctx context.Context, item MealItem) (_ *ItemValues, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.calculator.item")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal_item.id", item.ID))

	c.metricsManager.NutritionCalculation(metrics.CalculationKindItem)
	values, err := c.valuateItem(ctx, item, newIngredientMemo(c.ingredients))
	if err != nil {
		return nil, c.itemError(item, err)
	}
	return values, nil
}

func (c *Calculator) MealValues(ctx context.Context, meal Meal) (_ Values, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.calculator.meal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal.id", meal.ID))
	span.SetAttributes(attribute.Int("meal.items", len(meal.Items)))

	c.metricsManager.NutritionCalculation(metrics.CalculationKindMeal)
	return c.mealValues(ctx, meal, newIngredientMemo(c.ingredients))
}

// PlanValues sums the meals selected by filter and compares the total with the plan goal.
func (c *Calculator) PlanValues(ctx context.Context, plan Plan, filter MealFilter) (_ *PlanValues, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.calculator.plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	span.SetAttributes(attribute.String("plan.filter", string(filter)))

	c.metricsManager.NutritionCalculation(metrics.CalculationKindPlan)

	result := &PlanValues{
		PlanID:  plan.ID,
		Filter:  filter,
		PerMeal: []MealValues{},
		HasGoal: plan.HasGoalCalories,
	}

	// one plan usually reuses the same ingredients across meals
	memo := newIngredientMemo(c.ingredients)
	for _, meal := range plan.Meals {
		if !filter.includes(meal) {
			continue
		}
		mealTotal, err := c.mealValues(ctx, meal, memo)
		if err != nil {
			return nil, err
		}
		result.Total = result.Total.Add(mealTotal)
		result.PerMeal = append(result.PerMeal, MealValues{
			MealID: meal.ID,
			Values: mealTotal,
		})
	}

	result.EnergyShare = energyShare(result.Total)
	if plan.HasGoalCalories {
		result.Difference, result.Percent = compareWithGoal(result.Total, plan.Goal)
	}

	return result, nil
}

func (c *Calculator) mealValues(ctx context.Context, meal Meal, memo *ingredientMemo) (Values, error) {
	var total Values
	for _, item := range meal.Items {
		itemValues, err := c.valuateItem(ctx, item, memo)
		if err != nil {
			if item.MealID == 0 {
				item.MealID = meal.ID
			}
			return Values{}, c.itemError(item, err)
		}
		total = total.Add(itemValues.Values)
	}
	return total, nil
}

func (c *Calculator) valuateItem(ctx context.Context, item MealItem, memo *ingredientMemo) (*ItemValues, error) {
	ingredient, err := memo.get(ctx, item.IngredientID)
	if err != nil {
		return nil, fmt.Errorf("get ingredient %d: %w", item.IngredientID, err)
	}
	return ValuateItem(ingredient, item)
}

func (c *Calculator) itemError(item MealItem, err error) error {
	if errors.Is(err, ErrMissingConversion) {
		c.metricsManager.MissingConversion()
	}
	return &ItemError{
		MealID: item.MealID,
		ItemID: item.ID,
		Err:    err,
	}
}

func energyShare(total Values) EnergyShare {
	if total.Energy <= 0 {
		return EnergyShare{}
	}
	return EnergyShare{
		Protein:       Some(total.Protein * energyPerGramProtein / total.Energy * 100),
		Carbohydrates: Some(total.Carbohydrates * energyPerGramCarbohydrates / total.Energy * 100),
		Fat:           Some(total.Fat * energyPerGramFat / total.Energy * 100),
	}
}

// compareWithGoal returns actual - goal and 100 * actual / goal per field.
// The difference is not applicable when the goal field is absent,
// the percentage also when it is zero.
func compareWithGoal(actual Values, goal Goal) (diff OptionalValues, percent OptionalValues) {
	diff.Energy, percent.Energy = compareField(actual.Energy, goal.Energy)
	diff.Protein, percent.Protein = compareField(actual.Protein, goal.Protein)
	diff.Carbohydrates, percent.Carbohydrates = compareField(actual.Carbohydrates, goal.Carbohydrates)
	diff.CarbohydratesSugar, percent.CarbohydratesSugar = compareField(actual.CarbohydratesSugar, goal.CarbohydratesSugar)
	diff.Fat, percent.Fat = compareField(actual.Fat, goal.Fat)
	diff.FatSaturated, percent.FatSaturated = compareField(actual.FatSaturated, goal.FatSaturated)
	diff.Fibres, percent.Fibres = compareField(actual.Fibres, goal.Fibres)
	diff.Sodium, percent.Sodium = compareField(actual.Sodium, goal.Sodium)
	return diff, percent
}

func compareField(actual float64, goal *float64) (diff Optional, percent Optional) {
	if goal == nil {
		return Optional{}, Optional{}
	}
	diff = Some(actual - *goal)
	if *goal > 0 {
		percent = Some(100 * actual / *goal)
	}
	return diff, percent
}

// ingredientMemo caches lookups for the duration of one calculation.
type ingredientMemo struct {
	lookup IngredientLookup
	loaded map[int]*Ingredient
}

func newIngredientMemo(lookup IngredientLookup) *ingredientMemo {
	return &ingredientMemo{
		lookup: lookup,
		loaded: make(map[int]*Ingredient),
	}
}

func (m *ingredientMemo) get(ctx context.Context, id int) (*Ingredient, error) {
	if ingredient, ok := m.loaded[id]; ok {
		return ingredient, nil
	}
	ingredient, err := m.lookup.Ingredient(ctx, id)
	if err != nil {
		return nil, err
	}
	m.loaded[id] = ingredient
	return ingredient, nil
}
