package nutrition

import (
	"fmt"
	"math"
)

// ConvertToGrams converts amount of the given unit into grams for the ingredient.
// A nil unit means the amount is already in grams.
func ConvertToGrams(ingredient *Ingredient, amount float64, unitID *int) (float64, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if unitID == nil {
		return amount, nil
	}

	ratio, ok := ingredient.GramsPerUnit(*unitID)
	if !ok {
		return 0, &ConversionError{
			IngredientID: ingredient.ID,
			UnitID:       *unitID,
		}
	}
	return amount * ratio, nil
}
