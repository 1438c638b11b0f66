package core

import (
	"math"

	"github.com/mealpoint/nutriscore/schema"
)

// DefaultToleranceKcal is the calorie window applied around each meal slot
// target when the caller does not override it.
const DefaultToleranceKcal = 100

// ComputeMealBudgets splits daily calories across the meal slots by the
// fixed share table. Returns nil when tdee is unavailable. The tolerance is
// uniform across slots; non-positive values use the default.
func ComputeMealBudgets(tdee int, toleranceKcal int) schema.MealBudgets {
	if tdee <= 0 {
		return nil
	}
	if toleranceKcal <= 0 {
		toleranceKcal = DefaultToleranceKcal
	}

	budgets := make(schema.MealBudgets, len(schema.MealSlots))
	for _, slot := range schema.MealSlots {
		target := int(math.Round(float64(tdee) * schema.GetMealShare(slot)))
		budgets[slot] = schema.MealBudget{
			Target: target,
			Min:    target - toleranceKcal,
			Max:    target + toleranceKcal,
		}
	}
	return budgets
}
