package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultSearchLimit = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const ingredientColumns = `
	i.id, i.name, i.language, i.status, i.code, i.creation_date, i.update_date,
	i.energy, i.protein, i.carbohydrates, i.carbohydrates_sugar,
	i.fat, i.fat_saturated, i.fibres, i.sodium`

func scanIngredient(row pgx.Row) (*Ingredient, error) {
	var ing Ingredient
	var status string
	if err := row.Scan(
		&ing.ID, &ing.Name, &ing.Language, &status, &ing.Code, &ing.CreatedAt, &ing.UpdatedAt,
		&ing.Energy, &ing.Protein, &ing.Carbohydrates, &ing.CarbohydratesSugar,
		&ing.Fat, &ing.FatSaturated, &ing.Fibres, &ing.Sodium,
	); err != nil {
		return nil, err
	}
	ing.Status = IngredientStatus(status)
	ing.WeightUnits = []IngredientWeightUnit{}
	return &ing, nil
}

// Ingredient returns the ingredient with its weight unit mappings.
func (r *Repo) Ingredient(ctx context.Context, id int) (_ *Ingredient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.ingredient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	ingredient, err := scanIngredient(r.db.QueryRow(
		ctx,
		`SELECT `+ingredientColumns+` FROM ingredient i WHERE i.id = $1;`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	ingredient.WeightUnits, err = r.IngredientWeightUnits(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get weight units: %w", err)
	}

	return ingredient, nil
}

func (r *Repo) IngredientWeightUnits(ctx context.Context, ingredientID int) ([]IngredientWeightUnit, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT iwu.id, iwu.ingredient_id, iwu.unit_id, wu.name, iwu.amount, iwu.gram
			FROM ingredient_weight_unit iwu
			JOIN weight_unit wu ON wu.id = iwu.unit_id
			WHERE iwu.ingredient_id = $1
			ORDER BY iwu.id;`,
		ingredientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := []IngredientWeightUnit{}
	for rows.Next() {
		var iwu IngredientWeightUnit
		if err := rows.Scan(&iwu.ID, &iwu.IngredientID, &iwu.UnitID, &iwu.UnitName, &iwu.Amount, &iwu.Gram); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		units = append(units, iwu)
	}

	return units, rows.Err()
}

// SearchIngredients matches a case-insensitive substring of the name, restricted to
// the given languages and to accepted ingredients.
func (r *Repo) SearchIngredients(ctx context.Context, term string, languages []string) (_ []SearchResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.searchIngredients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("term", term))
	span.SetAttributes(attribute.StringSlice("languages", languages))

	results := []SearchResult{}
	if term == "" || len(languages) == 0 {
		return results, nil
	}

	statuses := make([]string, len(AcceptedStatuses))
	for i, s := range AcceptedStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name FROM ingredient
			WHERE name ILIKE '%' || $1 || '%'
				AND language = ANY($2)
				AND status = ANY($3)
			ORDER BY name, id
			LIMIT $4;`,
		likeEscaper.Replace(term), languages, statuses, defaultSearchLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var res SearchResult
		if err := rows.Scan(&res.ID, &res.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		res.Value = res.Name
		results = append(results, res)
	}

	return results, rows.Err()
}

// IngredientByCode returns the ingredient imported with the given product code.
func (r *Repo) IngredientByCode(ctx context.Context, code string) (_ *Ingredient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.ingredientByCode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("code", code))

	if code == "" {
		return nil, ErrIngredientNotFound
	}

	ingredient, err := scanIngredient(r.db.QueryRow(
		ctx,
		`SELECT `+ingredientColumns+` FROM ingredient i WHERE i.code = $1;`,
		code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	ingredient.WeightUnits, err = r.IngredientWeightUnits(ctx, ingredient.ID)
	if err != nil {
		return nil, fmt.Errorf("get weight units: %w", err)
	}

	return ingredient, nil
}

// AddIngredientWithUnits stores the ingredient, its weight units and their gram mappings
// in one transaction. Units are created when missing.
func (r *Repo) AddIngredientWithUnits(ctx context.Context, ingredient Ingredient, units []UnitGrams) (_ *Ingredient, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addIngredientWithUnits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("units", len(units)))

	if ingredient.Status == "" {
		ingredient.Status = StatusPending
	}
	ingredient.WeightUnits = []IngredientWeightUnit{}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`INSERT INTO ingredient
					(name, language, status, code, energy, protein, carbohydrates, carbohydrates_sugar,
					 fat, fat_saturated, fibres, sodium)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				RETURNING id, creation_date, update_date;`,
			ingredient.Name, ingredient.Language, string(ingredient.Status), ingredient.Code,
			ingredient.Energy, ingredient.Protein, ingredient.Carbohydrates, ingredient.CarbohydratesSugar,
			ingredient.Fat, ingredient.FatSaturated, ingredient.Fibres, ingredient.Sodium,
		).Scan(&ingredient.ID, &ingredient.CreatedAt, &ingredient.UpdatedAt)
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				return fmt.Errorf("%w: code %s", ErrIngredientExists, ingredient.Code)
			}
			return fmt.Errorf("insert ingredient: %w", err)
		}

		for _, u := range units {
			unit, err := addWeightUnit(ctx, tx, WeightUnit{Name: u.Name, Language: ingredient.Language})
			if err != nil {
				return fmt.Errorf("add weight unit %s: %w", u.Name, err)
			}
			iwu, err := addIngredientWeightUnit(ctx, tx, IngredientWeightUnit{
				IngredientID: ingredient.ID,
				UnitID:       unit.ID,
				Amount:       u.Amount,
				Gram:         u.Gram,
			})
			if err != nil {
				return fmt.Errorf("add ingredient weight unit %s: %w", u.Name, err)
			}
			iwu.UnitName = unit.Name
			ingredient.WeightUnits = append(ingredient.WeightUnits, *iwu)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("ingredient.id", ingredient.ID))
	return &ingredient, nil
}

func (r *Repo) SetIngredientStatus(ctx context.Context, id int, status IngredientStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.setIngredientStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE ingredient SET status = $1, update_date = now() WHERE id = $2;`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

func (r *Repo) WeightUnits(ctx context.Context, language string) (_ []WeightUnit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.weightUnits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, language FROM weight_unit
			WHERE ($1::text = '' OR language = $1)
			ORDER BY name;`,
		language,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := []WeightUnit{}
	for rows.Next() {
		var wu WeightUnit
		if err := rows.Scan(&wu.ID, &wu.Name, &wu.Language); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		units = append(units, wu)
	}
	return units, rows.Err()
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func addWeightUnit(ctx context.Context, q querier, unit WeightUnit) (*WeightUnit, error) {
	err := q.QueryRow(
		ctx,
		`INSERT INTO weight_unit (name, language) VALUES ($1, $2)
			ON CONFLICT (name, language) DO UPDATE SET name = EXCLUDED.name
			RETURNING id;`,
		unit.Name, unit.Language,
	).Scan(&unit.ID)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func addIngredientWeightUnit(ctx context.Context, q querier, iwu IngredientWeightUnit) (*IngredientWeightUnit, error) {
	if iwu.Amount <= 0 {
		iwu.Amount = 1
	}
	err := q.QueryRow(
		ctx,
		`INSERT INTO ingredient_weight_unit (ingredient_id, unit_id, amount, gram)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (ingredient_id, unit_id) DO UPDATE SET amount = EXCLUDED.amount, gram = EXCLUDED.gram
			RETURNING id;`,
		iwu.IngredientID, iwu.UnitID, iwu.Amount, iwu.Gram,
	).Scan(&iwu.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w or %w", ErrIngredientNotFound, ErrWeightUnitNotFound)
		}
		return nil, err
	}
	return &iwu, nil
}

// AddWeightUnit returns the existing unit when one with the same name and language is present.
func (r *Repo) AddWeightUnit(ctx context.Context, unit WeightUnit) (_ *WeightUnit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addWeightUnit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return addWeightUnit(ctx, r.db, unit)
}

// AddIngredientWeightUnit adds or replaces the gram mapping of a unit for the ingredient.
func (r *Repo) AddIngredientWeightUnit(ctx context.Context, iwu IngredientWeightUnit) (_ *IngredientWeightUnit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addIngredientWeightUnit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ingredient.id", iwu.IngredientID))
	span.SetAttributes(attribute.Int("unit.id", iwu.UnitID))

	return addIngredientWeightUnit(ctx, r.db, iwu)
}
