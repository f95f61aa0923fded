package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_NutritionCounters(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.NutritionCalculation(CalculationKindPlan)
	m.NutritionCalculation(CalculationKindPlan)
	m.NutritionCalculation(CalculationKindMeal)
	m.MissingConversion()
	m.IngredientCacheLookup(true)
	m.IngredientCacheLookup(false)
	m.IngredientCacheLookup(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterNutritionCalculations.WithLabelValues(CalculationKindPlan)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterNutritionCalculations.WithLabelValues(CalculationKindMeal)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterMissingConversions))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterIngredientCache.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterIngredientCache.WithLabelValues("miss")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var calcFamily *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "workoutmanager_test_server_nutrition_calculations" {
			calcFamily = f
		}
	}
	require.NotNil(t, calcFamily)
	assert.Equal(t, dto.MetricType_COUNTER, calcFamily.GetType())
	assert.Len(t, calcFamily.GetMetric(), 2)
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.NutritionCalculation(CalculationKindItem)
		m.MissingConversion()
		m.IngredientCacheLookup(true)
	})
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus()
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
