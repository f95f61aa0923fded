package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/workoutmanager/internal/nutrition/openfoodfacts"

	log "github.com/sirupsen/logrus"
)

const servingUnitName = "serving"

type productLookup interface {
	LookupBarcode(ctx context.Context, barcode string) (*openfoodfacts.Product, error)
}

type ingredientWriter interface {
	IngredientByCode(ctx context.Context, code string) (*Ingredient, error)
	// AddIngredientWithUnits stores everything or nothing.
	AddIngredientWithUnits(ctx context.Context, ingredient Ingredient, units []UnitGrams) (*Ingredient, error)
}

// UnitGrams describes a weight unit of a new ingredient by name.
type UnitGrams struct {
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
	Gram   float64 `json:"gram" yaml:"gram"`
}

// Importer creates ingredients from external sources.
type Importer struct {
	products productLookup
	repo     ingredientWriter
}

func NewImporter(products productLookup, repo ingredientWriter) *Importer {
	return &Importer{
		products: products,
		repo:     repo,
	}
}

// ImportBarcode creates a pending ingredient from the product behind barcode.
// The product serving size, if known, becomes a "serving" weight unit.
// A barcode already imported gives ErrIngredientExists.
func (im *Importer) ImportBarcode(ctx context.Context, barcode string) (*Ingredient, error) {
	if im.products == nil {
		return nil, fmt.Errorf("no product source configured")
	}

	if err := im.checkNotImported(ctx, barcode); err != nil {
		return nil, err
	}

	product, err := im.products.LookupBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("lookup barcode %s: %w", barcode, err)
	}
	if product.Code == "" {
		product.Code = barcode
	} else if product.Code != barcode {
		if err := im.checkNotImported(ctx, product.Code); err != nil {
			return nil, err
		}
	}

	ingredient := Ingredient{
		Name:     product.Name,
		Language: product.Language,
		Status:   StatusPending,
		Code:     product.Code,
		Values: Values{
			Energy:             product.Energy,
			Protein:            product.Protein,
			Carbohydrates:      product.Carbohydrates,
			CarbohydratesSugar: product.CarbohydratesSugar,
			Fat:                product.Fat,
			FatSaturated:       product.FatSaturated,
			Fibres:             product.Fibres,
			Sodium:             product.Sodium,
		},
	}

	var units []UnitGrams
	if product.ServingGrams > 0 {
		units = append(units, UnitGrams{Name: servingUnitName, Amount: 1, Gram: product.ServingGrams})
	}

	return im.AddIngredient(ctx, ingredient, units)
}

func (im *Importer) checkNotImported(ctx context.Context, code string) error {
	existing, err := im.repo.IngredientByCode(ctx, code)
	if err == nil {
		return fmt.Errorf("%w: code %s is ingredient %d", ErrIngredientExists, code, existing.ID)
	}
	if !errors.Is(err, ErrIngredientNotFound) {
		return fmt.Errorf("get ingredient by code %s: %w", code, err)
	}
	return nil
}

// AddIngredient stores the ingredient together with its weight units,
// creating the units themselves when missing.
func (im *Importer) AddIngredient(ctx context.Context, ingredient Ingredient, units []UnitGrams) (*Ingredient, error) {
	if strings.TrimSpace(ingredient.Name) == "" {
		return nil, fmt.Errorf("ingredient name empty")
	}
	if ingredient.Values.Negative() {
		return nil, fmt.Errorf("%w: negative nutrient value", ErrInvalidAmount)
	}
	if ingredient.Language == "" {
		ingredient.Language = "en"
	}

	valid := make([]UnitGrams, 0, len(units))
	for _, u := range units {
		if u.Gram <= 0 {
			log.Warnf("skipping weight unit [%s] of ingredient [%s], no grams", u.Name, ingredient.Name)
			continue
		}
		valid = append(valid, u)
	}

	added, err := im.repo.AddIngredientWithUnits(ctx, ingredient, valid)
	if err != nil {
		return nil, fmt.Errorf("add ingredient %s: %w", ingredient.Name, err)
	}

	return added, nil
}
