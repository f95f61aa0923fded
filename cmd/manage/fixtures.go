package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/2beens/workoutmanager/internal/nutrition"
)

// ingredientFixture is one entry of an ingredients yaml file:
//
//	ingredients:
//	  - name: Oat flakes
//	    language: en
//	    status: accepted
//	    values:
//	      energy: 372
//	      protein: 13.5
//	    units:
//	      - name: cup
//	        amount: 1
//	        gram: 90
type ingredientFixture struct {
	Name     string                `yaml:"name"`
	Language string                `yaml:"language"`
	Status   string                `yaml:"status"`
	Code     string                `yaml:"code"`
	Values   valuesFixture         `yaml:"values"`
	Units    []nutrition.UnitGrams `yaml:"units"`
}

type valuesFixture struct {
	Energy             float64 `yaml:"energy"`
	Protein            float64 `yaml:"protein"`
	Carbohydrates      float64 `yaml:"carbohydrates"`
	CarbohydratesSugar float64 `yaml:"carbohydrates_sugar"`
	Fat                float64 `yaml:"fat"`
	FatSaturated       float64 `yaml:"fat_saturated"`
	Fibres             float64 `yaml:"fibres"`
	Sodium             float64 `yaml:"sodium"`
}

type ingredientsFile struct {
	Ingredients []ingredientFixture `yaml:"ingredients"`
}

func parseIngredients(r io.Reader) ([]ingredientFixture, error) {
	var f ingredientsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}

	for i, fix := range f.Ingredients {
		if fix.Name == "" {
			return nil, fmt.Errorf("ingredient #%d: name empty", i+1)
		}
		if fix.Status != "" && !nutrition.IngredientStatus(fix.Status).Valid() {
			return nil, fmt.Errorf("ingredient %s: invalid status %q", fix.Name, fix.Status)
		}
	}
	return f.Ingredients, nil
}

func (f ingredientFixture) ingredient() nutrition.Ingredient {
	status := nutrition.IngredientStatus(f.Status)
	if status == "" {
		status = nutrition.StatusPending
	}
	return nutrition.Ingredient{
		Name:     f.Name,
		Language: f.Language,
		Status:   status,
		Code:     f.Code,
		Values: nutrition.Values{
			Energy:             f.Values.Energy,
			Protein:            f.Values.Protein,
			Carbohydrates:      f.Values.Carbohydrates,
			CarbohydratesSugar: f.Values.CarbohydratesSugar,
			Fat:                f.Values.Fat,
			FatSaturated:       f.Values.FatSaturated,
			Fibres:             f.Values.Fibres,
			Sodium:             f.Values.Sodium,
		},
	}
}
