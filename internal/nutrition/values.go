package nutrition

import (
	"math"
	"strconv"
)

// Values holds the eight nutrient totals. Energy is in kcal, the rest in grams.
type Values struct {
	Energy             float64 `json:"energy"`
	Protein            float64 `json:"protein"`
	Carbohydrates      float64 `json:"carbohydrates"`
	CarbohydratesSugar float64 `json:"carbohydrates_sugar"`
	Fat                float64 `json:"fat"`
	FatSaturated       float64 `json:"fat_saturated"`
	Fibres             float64 `json:"fibres"`
	Sodium             float64 `json:"sodium"`
}

func (v Values) Add(o Values) Values {
	return Values{
		Energy:             v.Energy + o.Energy,
		Protein:            v.Protein + o.Protein,
		Carbohydrates:      v.Carbohydrates + o.Carbohydrates,
		CarbohydratesSugar: v.CarbohydratesSugar + o.CarbohydratesSugar,
		Fat:                v.Fat + o.Fat,
		FatSaturated:       v.FatSaturated + o.FatSaturated,
		Fibres:             v.Fibres + o.Fibres,
		Sodium:             v.Sodium + o.Sodium,
	}
}

// forGrams treats v as per-100g densities and returns the totals for grams.
func (v Values) forGrams(grams float64) Values {
	return Values{
		Energy:             v.Energy * grams / 100,
		Protein:            v.Protein * grams / 100,
		Carbohydrates:      v.Carbohydrates * grams / 100,
		CarbohydratesSugar: v.CarbohydratesSugar * grams / 100,
		Fat:                v.Fat * grams / 100,
		FatSaturated:       v.FatSaturated * grams / 100,
		Fibres:             v.Fibres * grams / 100,
		Sodium:             v.Sodium * grams / 100,
	}
}

// Rounded returns a copy with every field rounded to two decimals.
// Only for presentation, sums must be done on the raw values.
func (v Values) Rounded() Values {
	return Values{
		Energy:             Round2(v.Energy),
		Protein:            Round2(v.Protein),
		Carbohydrates:      Round2(v.Carbohydrates),
		CarbohydratesSugar: Round2(v.CarbohydratesSugar),
		Fat:                Round2(v.Fat),
		FatSaturated:       Round2(v.FatSaturated),
		Fibres:             Round2(v.Fibres),
		Sodium:             Round2(v.Sodium),
	}
}

func (v Values) Negative() bool {
	return v.Energy < 0 || v.Protein < 0 || v.Carbohydrates < 0 || v.CarbohydratesSugar < 0 ||
		v.Fat < 0 || v.FatSaturated < 0 || v.Fibres < 0 || v.Sodium < 0
}

func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Optional is a number that may be not applicable, e.g. a percentage of a zero goal.
// It marshals to JSON null when not applicable.
type Optional struct {
	Value float64
	Valid bool
}

func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid || math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, Round2(o.Value), 'f', -1, 64), nil
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional{}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*o = Some(f)
	return nil
}

// OptionalValues is Values where each field may be not applicable.
type OptionalValues struct {
	Energy             Optional `json:"energy"`
	Protein            Optional `json:"protein"`
	Carbohydrates      Optional `json:"carbohydrates"`
	CarbohydratesSugar Optional `json:"carbohydrates_sugar"`
	Fat                Optional `json:"fat"`
	FatSaturated       Optional `json:"fat_saturated"`
	Fibres             Optional `json:"fibres"`
	Sodium             Optional `json:"sodium"`
}
