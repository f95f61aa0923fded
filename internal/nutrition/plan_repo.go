package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `
	id, user_id, description, language, creation_date, has_goal_calories,
	goal_energy, goal_protein, goal_carbohydrates, goal_carbohydrates_sugar,
	goal_fat, goal_fat_saturated, goal_fibres, goal_sodium`

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Description, &p.Language, &p.CreatedAt, &p.HasGoalCalories,
		&p.Goal.Energy, &p.Goal.Protein, &p.Goal.Carbohydrates, &p.Goal.CarbohydratesSugar,
		&p.Goal.Fat, &p.Goal.FatSaturated, &p.Goal.Fibres, &p.Goal.Sodium,
	); err != nil {
		return nil, err
	}
	p.Meals = []Meal{}
	return &p, nil
}

// Plan returns the plan with all its meals and their items, ordered.
func (r *Repo) Plan(ctx context.Context, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	plan, err := scanPlan(r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM nutrition_plan WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	meals, err := r.queryMeals(ctx, `SELECT id, plan_id, "order", time_of_day, in_daily_plan FROM meal WHERE plan_id = $1 ORDER BY "order", id;`, id)
	if err != nil {
		return nil, fmt.Errorf("get meals: %w", err)
	}

	items, err := r.queryMealItems(
		ctx,
		`
			SELECT mi.id, mi.meal_id, mi.ingredient_id, mi.weight_unit_id, mi.amount, mi."order"
			FROM meal_item mi
			JOIN meal m ON m.id = mi.meal_id
			WHERE m.plan_id = $1
			ORDER BY mi."order", mi.id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get meal items: %w", err)
	}

	mealIdx := make(map[int]int, len(meals))
	for i := range meals {
		mealIdx[meals[i].ID] = i
	}
	for _, item := range items {
		if i, ok := mealIdx[item.MealID]; ok {
			meals[i].Items = append(meals[i].Items, item)
		}
	}

	plan.Meals = meals
	return plan, nil
}

// PlansByUser lists the user's plans, without meals.
func (r *Repo) PlansByUser(ctx context.Context, userID int) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plansByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM nutrition_plan WHERE user_id = $1 ORDER BY creation_date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

func (r *Repo) AddPlan(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	g := plan.Goal
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO nutrition_plan
				(user_id, description, language, has_goal_calories,
				 goal_energy, goal_protein, goal_carbohydrates, goal_carbohydrates_sugar,
				 goal_fat, goal_fat_saturated, goal_fibres, goal_sodium)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, creation_date;`,
		plan.UserID, plan.Description, plan.Language, plan.HasGoalCalories,
		g.Energy, g.Protein, g.Carbohydrates, g.CarbohydratesSugar, g.Fat, g.FatSaturated, g.Fibres, g.Sodium,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	plan.Meals = []Meal{}
	return &plan, nil
}

func (r *Repo) UpdatePlan(ctx context.Context, plan Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updatePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", plan.ID))

	g := plan.Goal
	tag, err := r.db.Exec(
		ctx,
		`UPDATE nutrition_plan SET
				description = $1, language = $2, has_goal_calories = $3,
				goal_energy = $4, goal_protein = $5, goal_carbohydrates = $6, goal_carbohydrates_sugar = $7,
				goal_fat = $8, goal_fat_saturated = $9, goal_fibres = $10, goal_sodium = $11
			WHERE id = $12;`,
		plan.Description, plan.Language, plan.HasGoalCalories,
		g.Energy, g.Protein, g.Carbohydrates, g.CarbohydratesSugar, g.Fat, g.FatSaturated, g.Fibres, g.Sodium,
		plan.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) DeletePlan(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deletePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM nutrition_plan WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// Meal returns the meal with its items.
func (r *Repo) Meal(ctx context.Context, id int) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.meal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	meals, err := r.queryMeals(ctx, `SELECT id, plan_id, "order", time_of_day, in_daily_plan FROM meal WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	if len(meals) != 1 {
		return nil, ErrMealNotFound
	}

	meal := meals[0]
	meal.Items, err = r.queryMealItems(
		ctx,
		`SELECT id, meal_id, ingredient_id, weight_unit_id, amount, "order" FROM meal_item WHERE meal_id = $1 ORDER BY "order", id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get meal items: %w", err)
	}

	return &meal, nil
}

// AddMeal appends the meal at the end of the plan.
func (r *Repo) AddMeal(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", meal.PlanID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO meal (plan_id, "order", time_of_day, in_daily_plan)
				SELECT $1, COALESCE(MAX("order"), 0) + 1, $2, $3 FROM meal WHERE plan_id = $1
			RETURNING id, "order";`,
		meal.PlanID, meal.Time, meal.InDailyPlan,
	).Scan(&meal.ID, &meal.Order)
	if err != nil {
		return nil, err
	}

	meal.Items = []MealItem{}
	return &meal, nil
}

func (r *Repo) UpdateMeal(ctx context.Context, meal Meal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", meal.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE meal SET time_of_day = $1, in_daily_plan = $2, "order" = CASE WHEN $3 > 0 THEN $3 ELSE "order" END WHERE id = $4;`,
		meal.Time, meal.InDailyPlan, meal.Order, meal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *Repo) DeleteMeal(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM meal WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *Repo) MealItem(ctx context.Context, id int) (_ *MealItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.mealItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	items, err := r.queryMealItems(
		ctx,
		`SELECT id, meal_id, ingredient_id, weight_unit_id, amount, "order" FROM meal_item WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, ErrMealItemNotFound
	}
	return &items[0], nil
}

// AddMealItem appends the item at the end of its meal.
func (r *Repo) AddMealItem(ctx context.Context, item MealItem) (_ *MealItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addMealItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("meal.id", item.MealID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO meal_item (meal_id, ingredient_id, weight_unit_id, amount, "order")
				SELECT $1, $2, $3, $4, COALESCE(MAX("order"), 0) + 1 FROM meal_item WHERE meal_id = $1
			RETURNING id, "order";`,
		item.MealID, item.IngredientID, item.WeightUnitID, item.Amount,
	).Scan(&item.ID, &item.Order)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo) UpdateMealItem(ctx context.Context, item MealItem) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateMealItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", item.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE meal_item SET ingredient_id = $1, weight_unit_id = $2, amount = $3,
				"order" = CASE WHEN $4 > 0 THEN $4 ELSE "order" END
			WHERE id = $5;`,
		item.IngredientID, item.WeightUnitID, item.Amount, item.Order, item.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealItemNotFound
	}
	return nil
}

func (r *Repo) DeleteMealItem(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteMealItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM meal_item WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealItemNotFound
	}
	return nil
}

// PlanOwner returns the id of the user owning the plan.
func (r *Repo) PlanOwner(ctx context.Context, planID int) (int, error) {
	var userID int
	err := r.db.QueryRow(ctx, `SELECT user_id FROM nutrition_plan WHERE id = $1;`, planID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrPlanNotFound
		}
		return 0, err
	}
	return userID, nil
}

// MealOwner returns the id of the user owning the plan the meal belongs to.
func (r *Repo) MealOwner(ctx context.Context, mealID int) (int, error) {
	var userID int
	err := r.db.QueryRow(
		ctx,
		`SELECT np.user_id FROM meal m JOIN nutrition_plan np ON np.id = m.plan_id WHERE m.id = $1;`,
		mealID,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrMealNotFound
		}
		return 0, err
	}
	return userID, nil
}

func (r *Repo) queryMeals(ctx context.Context, sql string, args ...any) ([]Meal, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := []Meal{}
	for rows.Next() {
		m := Meal{Items: []MealItem{}}
		if err := rows.Scan(&m.ID, &m.PlanID, &m.Order, &m.Time, &m.InDailyPlan); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *Repo) queryMealItems(ctx context.Context, sql string, args ...any) ([]MealItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MealItem{}
	for rows.Next() {
		var mi MealItem
		if err := rows.Scan(&mi.ID, &mi.MealID, &mi.IngredientID, &mi.WeightUnitID, &mi.Amount, &mi.Order); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, mi)
	}
	return items, rows.Err()
}
