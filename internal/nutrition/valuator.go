package nutrition

// ItemValues is the contribution of one meal item, with the grams it was computed for.
type ItemValues struct {
	Values
	Grams float64 `json:"grams"`
}

func (iv ItemValues) Rounded() ItemValues {
	return ItemValues{
		Values: iv.Values.Rounded(),
		Grams:  Round2(iv.Grams),
	}
}

// ValuateItem computes the nutritional values of item, whose ingredient is given.
// Results keep full precision.
func ValuateItem(ingredient *Ingredient, item MealItem) (*ItemValues, error) {
	if ingredient.ID != item.IngredientID {
		return nil, ErrIngredientMismatch
	}

	grams, err := ConvertToGrams(ingredient, item.Amount, item.WeightUnitID)
	if err != nil {
		return nil, err
	}

	return &ItemValues{
		Values: ingredient.Values.forGrams(grams),
		Grams:  grams,
	}, nil
}
