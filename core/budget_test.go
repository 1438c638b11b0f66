package core

import (
	"testing"

	"github.com/mealpoint/nutriscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeMealBudgets tests the fixed meal-share split and the tolerance
// window at a fixed TDEE.
func TestComputeMealBudgets(t *testing.T) {
	budgets := ComputeMealBudgets(2657, 100)
	require.NotNil(t, budgets)

	assert.Equal(t, schema.MealBudget{Target: 664, Min: 564, Max: 764}, budgets[schema.Breakfast])
	assert.Equal(t, schema.MealBudget{Target: 930, Min: 830, Max: 1030}, budgets[schema.Lunch])
	assert.Equal(t, schema.MealBudget{Target: 797, Min: 697, Max: 897}, budgets[schema.Dinner])
	assert.Equal(t, schema.MealBudget{Target: 266, Min: 166, Max: 366}, budgets[schema.Snacks])
}

// TestComputeMealBudgetsSum verifies that slot targets sum back to the daily
// calories within rounding across a sweep of values.
func TestComputeMealBudgetsSum(t *testing.T) {
	for tdee := 1200; tdee <= 4000; tdee += 137 {
		budgets := ComputeMealBudgets(tdee, 100)
		require.NotNil(t, budgets)

		sum := 0
		for _, slot := range schema.MealSlots {
			sum += budgets[slot].Target
		}
		assert.InDelta(t, tdee, sum, 4, "tdee=%d", tdee)
	}
}

// TestComputeMealBudgetsTolerance tests custom and defaulted tolerances.
func TestComputeMealBudgetsTolerance(t *testing.T) {
	t.Run("custom tolerance", func(t *testing.T) {
		budgets := ComputeMealBudgets(2657, 50)
		require.NotNil(t, budgets)
		assert.Equal(t, 614, budgets[schema.Breakfast].Min)
		assert.Equal(t, 714, budgets[schema.Breakfast].Max)
	})

	t.Run("non-positive tolerance uses default", func(t *testing.T) {
		budgets := ComputeMealBudgets(2657, 0)
		require.NotNil(t, budgets)
		assert.Equal(t, 564, budgets[schema.Breakfast].Min)
		assert.Equal(t, 764, budgets[schema.Breakfast].Max)
	})
}

// TestComputeMealBudgetsMissingTDEE verifies degradation when energy values
// are unavailable.
func TestComputeMealBudgetsMissingTDEE(t *testing.T) {
	assert.Nil(t, ComputeMealBudgets(0, 100))
	assert.Nil(t, ComputeMealBudgets(-1, 100))
}
