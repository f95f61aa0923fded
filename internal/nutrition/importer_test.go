package nutrition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/workoutmanager/internal/nutrition/openfoodfacts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProducts struct {
	products map[string]*openfoodfacts.Product
	lookups  int
}

func (tp *testProducts) LookupBarcode(_ context.Context, barcode string) (*openfoodfacts.Product, error) {
	tp.lookups++
	if p, ok := tp.products[barcode]; ok {
		return p, nil
	}
	return nil, openfoodfacts.ErrProductNotFound
}

// testIngredientWriter keeps ingredients in memory. Like the pgx repo, a failing
// unit leaves nothing behind.
type testIngredientWriter struct {
	ingredients []Ingredient
	units       map[string]*WeightUnit
	iwus        []IngredientWeightUnit
	failUnit    string
}

func newTestIngredientWriter() *testIngredientWriter {
	return &testIngredientWriter{units: map[string]*WeightUnit{}}
}

func (w *testIngredientWriter) IngredientByCode(_ context.Context, code string) (*Ingredient, error) {
	for _, ing := range w.ingredients {
		if code != "" && ing.Code == code {
			return &ing, nil
		}
	}
	return nil, ErrIngredientNotFound
}

func (w *testIngredientWriter) AddIngredientWithUnits(_ context.Context, ingredient Ingredient, units []UnitGrams) (*Ingredient, error) {
	for _, u := range units {
		if u.Name == w.failUnit {
			return nil, errors.New("insert weight unit: connection reset")
		}
	}
	if _, err := w.IngredientByCode(context.Background(), ingredient.Code); err == nil {
		return nil, ErrIngredientExists
	}

	ingredient.ID = len(w.ingredients) + 1
	if ingredient.Status == "" {
		ingredient.Status = StatusPending
	}
	ingredient.CreatedAt = time.Now()
	ingredient.UpdatedAt = ingredient.CreatedAt
	ingredient.WeightUnits = []IngredientWeightUnit{}

	for _, u := range units {
		key := u.Name + "|" + ingredient.Language
		unit, ok := w.units[key]
		if !ok {
			unit = &WeightUnit{ID: len(w.units) + 1, Name: u.Name, Language: ingredient.Language}
			w.units[key] = unit
		}
		iwu := IngredientWeightUnit{
			ID:           len(w.iwus) + 1,
			IngredientID: ingredient.ID,
			UnitID:       unit.ID,
			UnitName:     unit.Name,
			Amount:       u.Amount,
			Gram:         u.Gram,
		}
		w.iwus = append(w.iwus, iwu)
		ingredient.WeightUnits = append(ingredient.WeightUnits, iwu)
	}

	w.ingredients = append(w.ingredients, ingredient)
	return &ingredient, nil
}

func TestImporter_ImportBarcode(t *testing.T) {
	products := &testProducts{products: map[string]*openfoodfacts.Product{
		"3017620422003": {
			Code:          "3017620422003",
			Name:          "Hazelnut spread",
			Language:      "fr",
			ServingGrams:  15,
			Energy:        539,
			Protein:       6.3,
			Carbohydrates: 57.5,
			Fat:           30.9,
		},
	}}
	writer := newTestIngredientWriter()
	importer := NewImporter(products, writer)

	ingredient, err := importer.ImportBarcode(context.Background(), "3017620422003")
	require.NoError(t, err)
	assert.Equal(t, 1, ingredient.ID)
	assert.Equal(t, "Hazelnut spread", ingredient.Name)
	assert.Equal(t, "fr", ingredient.Language)
	assert.Equal(t, StatusPending, ingredient.Status)
	assert.Equal(t, 539.0, ingredient.Energy)
	require.Len(t, ingredient.WeightUnits, 1)
	assert.Equal(t, "serving", ingredient.WeightUnits[0].UnitName)
	assert.Equal(t, 15.0, ingredient.WeightUnits[0].Gram)

	grams, err := ConvertToGrams(ingredient, 2, &ingredient.WeightUnits[0].UnitID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, grams)

	_, err = importer.ImportBarcode(context.Background(), "0000000")
	assert.True(t, errors.Is(err, openfoodfacts.ErrProductNotFound))
}

func TestImporter_AddIngredient(t *testing.T) {
	writer := newTestIngredientWriter()
	importer := NewImporter(nil, writer)
	ctx := context.Background()

	added, err := importer.AddIngredient(ctx, Ingredient{
		Name:   "Rice",
		Values: Values{Energy: 130, Carbohydrates: 28},
	}, []UnitGrams{
		{Name: "cup", Amount: 1, Gram: 185},
		{Name: "pinch", Amount: 1, Gram: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "en", added.Language)
	require.Len(t, added.WeightUnits, 1)
	assert.Equal(t, "cup", added.WeightUnits[0].UnitName)
	assert.Len(t, writer.iwus, 1)

	_, err = importer.AddIngredient(ctx, Ingredient{Name: " "}, nil)
	assert.Error(t, err)

	_, err = importer.AddIngredient(ctx, Ingredient{Name: "Bad", Values: Values{Fat: -1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = importer.ImportBarcode(ctx, "123456")
	assert.Error(t, err)
}

func TestImporter_ImportBarcode_AlreadyImported(t *testing.T) {
	products := &testProducts{products: map[string]*openfoodfacts.Product{
		"123": {Code: "123", Name: "Yoghurt", Language: "en", Energy: 60},
	}}
	writer := newTestIngredientWriter()
	importer := NewImporter(products, writer)
	ctx := context.Background()

	first, err := importer.ImportBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "123", first.Code)

	second, err := importer.ImportBarcode(ctx, "123")
	assert.ErrorIs(t, err, ErrIngredientExists)
	assert.Nil(t, second)
	assert.Len(t, writer.ingredients, 1)
	// the second import stops before asking the product source
	assert.Equal(t, 1, products.lookups)
}

func TestImporter_ImportBarcode_ProductCodeDiffers(t *testing.T) {
	products := &testProducts{products: map[string]*openfoodfacts.Product{
		"0123": {Code: "123", Name: "Yoghurt", Language: "en", Energy: 60},
		"123":  {Code: "123", Name: "Yoghurt", Language: "en", Energy: 60},
	}}
	writer := newTestIngredientWriter()
	importer := NewImporter(products, writer)
	ctx := context.Background()

	_, err := importer.ImportBarcode(ctx, "123")
	require.NoError(t, err)

	_, err = importer.ImportBarcode(ctx, "0123")
	assert.ErrorIs(t, err, ErrIngredientExists)
	assert.Len(t, writer.ingredients, 1)
}

func TestImporter_AddIngredient_UnitFails(t *testing.T) {
	writer := newTestIngredientWriter()
	writer.failUnit = "slice"
	importer := NewImporter(nil, writer)
	ctx := context.Background()

	added, err := importer.AddIngredient(ctx, Ingredient{Name: "Bread", Values: Values{Energy: 250}}, []UnitGrams{
		{Name: "loaf", Amount: 1, Gram: 500},
		{Name: "slice", Amount: 1, Gram: 30},
	})
	require.Error(t, err)
	assert.Nil(t, added)
	assert.Empty(t, writer.ingredients)
	assert.Empty(t, writer.units)
	assert.Empty(t, writer.iwus)

	// a retry once the failure is gone creates exactly one ingredient
	writer.failUnit = ""
	added, err = importer.AddIngredient(ctx, Ingredient{Name: "Bread", Values: Values{Energy: 250}}, []UnitGrams{
		{Name: "loaf", Amount: 1, Gram: 500},
		{Name: "slice", Amount: 1, Gram: 30},
	})
	require.NoError(t, err)
	assert.Len(t, added.WeightUnits, 2)
	assert.Len(t, writer.ingredients, 1)
}
