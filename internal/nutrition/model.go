package nutrition

import "time"

type IngredientStatus string

const (
	StatusPending  IngredientStatus = "pending"
	StatusAccepted IngredientStatus = "accepted"
	StatusDeclined IngredientStatus = "declined"
	StatusAdmin    IngredientStatus = "admin"
)

// AcceptedStatuses are the statuses of ingredients visible to everyone.
var AcceptedStatuses = []IngredientStatus{StatusAccepted, StatusAdmin}

func (s IngredientStatus) Accepted() bool {
	return s == StatusAccepted || s == StatusAdmin
}

func (s IngredientStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusAdmin:
		return true
	}
	return false
}

// Ingredient holds nutrient densities per 100 grams.
type Ingredient struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Language  string           `json:"language"`
	Status    IngredientStatus `json:"status"`
	Code      string           `json:"code,omitempty"`
	CreatedAt time.Time        `json:"creation_date"`
	UpdatedAt time.Time        `json:"update_date"`
	Values
	WeightUnits []IngredientWeightUnit `json:"weight_units"`
}

// GramsPerUnit returns the grams one unit of unitID weighs for this ingredient.
func (i *Ingredient) GramsPerUnit(unitID int) (float64, bool) {
	for _, wu := range i.WeightUnits {
		if wu.UnitID == unitID {
			return wu.Ratio(), true
		}
	}
	return 0, false
}

type WeightUnit struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// IngredientWeightUnit says that Amount units of UnitID weigh Gram grams.
type IngredientWeightUnit struct {
	ID           int     `json:"id"`
	IngredientID int     `json:"ingredient"`
	UnitID       int     `json:"unit"`
	UnitName     string  `json:"unit_name,omitempty"`
	Amount       float64 `json:"amount"`
	Gram         float64 `json:"gram"`
}

func (iwu IngredientWeightUnit) Ratio() float64 {
	if iwu.Amount <= 0 {
		return iwu.Gram
	}
	return iwu.Gram / iwu.Amount
}

type Meal struct {
	ID          int        `json:"id"`
	PlanID      int        `json:"plan"`
	Order       int        `json:"order"`
	Time        *string    `json:"time"`
	InDailyPlan bool       `json:"in_daily_plan"`
	Items       []MealItem `json:"meal_items"`
}

type MealItem struct {
	ID           int     `json:"id"`
	MealID       int     `json:"meal"`
	IngredientID int     `json:"ingredient"`
	WeightUnitID *int    `json:"weight_unit"`
	Amount       float64 `json:"amount"`
	Order        int     `json:"order"`
}

// Goal holds the optional per-field targets of a plan.
type Goal struct {
	Energy             *float64 `json:"energy"`
	Protein            *float64 `json:"protein"`
	Carbohydrates      *float64 `json:"carbohydrates"`
	CarbohydratesSugar *float64 `json:"carbohydrates_sugar"`
	Fat                *float64 `json:"fat"`
	FatSaturated       *float64 `json:"fat_saturated"`
	Fibres             *float64 `json:"fibres"`
	Sodium             *float64 `json:"sodium"`
}

type Plan struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"creation_date"`
	HasGoalCalories bool      `json:"has_goal_calories"`
	Goal            Goal      `json:"goal"`
	Meals           []Meal    `json:"meals"`
}

// MealFilter selects the meals of a plan taken into the plan totals.
type MealFilter string

const (
	MealFilterAll       MealFilter = "all"
	MealFilterDailyPlan MealFilter = "daily"
)

func ParseMealFilter(s string) (MealFilter, error) {
	switch MealFilter(s) {
	case "", MealFilterAll:
		return MealFilterAll, nil
	case MealFilterDailyPlan:
		return MealFilterDailyPlan, nil
	}
	return "", ErrInvalidMealFilter
}

func (f MealFilter) includes(m Meal) bool {
	if f == MealFilterDailyPlan {
		return m.InDailyPlan
	}
	return true
}

// SearchResult is the shape the ingredient autocompleter consumes.
type SearchResult struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}
