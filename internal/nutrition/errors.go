package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrMissingConversion  = errors.New("missing weight unit conversion")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidMealFilter  = errors.New("invalid meal filter")
	ErrIngredientMismatch = errors.New("meal item does not reference the ingredient")
	ErrInvalidStatus      = errors.New("invalid ingredient status")

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrWeightUnitNotFound = errors.New("weight unit not found")
	ErrPlanNotFound       = errors.New("nutrition plan not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrMealItemNotFound   = errors.New("meal item not found")
)

// ConversionError is returned when an ingredient has no gram mapping for a unit.
type ConversionError struct {
	IngredientID int
	UnitID       int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: ingredient %d, unit %d", ErrMissingConversion, e.IngredientID, e.UnitID)
}

func (e *ConversionError) Unwrap() error {
	return ErrMissingConversion
}

// ItemError names the meal item whose valuation failed.
type ItemError struct {
	MealID int
	ItemID int
	Err    error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("meal %d, item %d: %s", e.MealID, e.ItemID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
