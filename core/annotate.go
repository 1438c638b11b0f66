package core

import (
	"fmt"
	"strings"

	"github.com/mealpoint/nutriscore/schema"
)

// Annotation thresholds.
const (
	highProteinGrams = 30.0
	muscleGrams      = 35.0
	lowCarbGrams     = 20.0
	lowFatGrams      = 10.0

	excellentBalanceScore = 80
	goodBalanceScore      = 60

	// Fallback calorie target for the weight-loss reason when no meal
	// budget is available.
	fallbackMealTarget = 600

	// Calories above this multiple of the budget max earn the
	// high_calories badge.
	highCalorieFactor = 1.1
)

// Annotate derives the ordered match reasons and the badge set for a scored
// food, given the meal budget it was evaluated against. budget may be nil
// when the profile could not be personalized. Pure and order-preserving:
// reasons always appear in the same fixed sequence, and badges are
// enumerated deterministically.
func Annotate(food *schema.FoodItem, budget *schema.MealBudget, macroScore int, goals []string) schema.Annotation {
	var ann schema.Annotation
	class := ClassifyGoals(goals)

	if budget != nil && food.Calories >= budget.Min && food.Calories <= budget.Max {
		ann.Reasons = append(ann.Reasons, fmt.Sprintf("Fits meal budget (%d/%d cal)", food.Calories, budget.Target))
	}
	if food.ProteinG >= highProteinGrams {
		ann.Reasons = append(ann.Reasons, "High protein")
	}
	if food.CarbsG <= lowCarbGrams {
		ann.Reasons = append(ann.Reasons, "Low carb")
	}
	switch {
	case macroScore >= excellentBalanceScore:
		ann.Reasons = append(ann.Reasons, "Excellent macro balance")
	case macroScore >= goodBalanceScore:
		ann.Reasons = append(ann.Reasons, "Good macro balance")
	}
	if class == schema.MuscleGainClass && food.ProteinG >= muscleGrams {
		ann.Reasons = append(ann.Reasons, "Great for muscle building")
	}
	if class == schema.WeightLossClass {
		target := fallbackMealTarget
		if budget != nil {
			target = budget.Target
		}
		if food.Calories < target {
			ann.Reasons = append(ann.Reasons, "Supports weight loss goal")
		}
	}

	ann.Badges = deriveBadges(food, budget)
	return ann
}

// deriveBadges builds the badge list in a fixed order: the calorie badge
// first, then macro badges, then the diet-type badge. The three calorie
// badges are mutually exclusive; calories between max and the high-calorie
// threshold earn none of them.
func deriveBadges(food *schema.FoodItem, budget *schema.MealBudget) []schema.Badge {
	var badges []schema.Badge

	if budget != nil {
		switch {
		case food.Calories >= budget.Min && food.Calories <= budget.Max:
			badges = append(badges, schema.OptimalCaloriesBadge)
		case food.Calories < budget.Min:
			badges = append(badges, schema.LowCaloriesBadge)
		case float64(food.Calories) > highCalorieFactor*float64(budget.Max):
			badges = append(badges, schema.HighCaloriesBadge)
		}
	}

	if food.ProteinG >= highProteinGrams {
		badges = append(badges, schema.HighProteinBadge)
	}
	if food.CarbsG <= lowCarbGrams {
		badges = append(badges, schema.LowCarbBadge)
	}
	if food.FatG <= lowFatGrams {
		badges = append(badges, schema.LowFatBadge)
	}

	if badge, ok := schema.GetDietBadge(normalizeDietType(food.DietType)); ok {
		badges = append(badges, badge)
	}

	return badges
}

// normalizeDietType folds case and separator variants ("Gluten-Free",
// "gluten free") into the canonical tag form used by the badge table.
func normalizeDietType(dietType string) string {
	s := strings.ToLower(strings.TrimSpace(dietType))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
