package core

import (
	"context"
	"testing"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDailyPlan tests plan derivation, including the calorie-target
// override and the degraded path for incomplete profiles.
func TestBuildDailyPlan(t *testing.T) {
	t.Run("complete profile", func(t *testing.T) {
		profile := &schema.UserProfile{
			Age: 30, WeightKg: 70, HeightCm: 175,
			Sex:           schema.Male,
			ActivityLevel: schema.Moderate,
		}
		plan := BuildDailyPlan(profile, 100)

		require.NotNil(t, plan.Energy.BMR)
		require.NotNil(t, plan.Energy.TDEE)
		assert.Equal(t, 1696, *plan.Energy.BMR)
		assert.Equal(t, 2629, *plan.Energy.TDEE)
		require.NotNil(t, plan.Targets)
		require.NotNil(t, plan.Budgets)
		assert.Equal(t, 657, plan.Budgets[schema.Breakfast].Target)
	})

	t.Run("calorie target overrides TDEE", func(t *testing.T) {
		profile := &schema.UserProfile{
			Age: 30, WeightKg: 70, HeightCm: 175,
			Sex:           schema.Male,
			ActivityLevel: schema.Moderate,
			CalorieTarget: 2000,
			HealthGoals:   []string{"weight loss"},
		}
		plan := BuildDailyPlan(profile, 100)

		// Energy values still reflect the formula; targets and budgets
		// derive from the explicit calorie target.
		assert.Equal(t, 2629, *plan.Energy.TDEE)
		require.NotNil(t, plan.Budgets)
		assert.Equal(t, 500, plan.Budgets[schema.Breakfast].Target)
		require.NotNil(t, plan.Targets)
		assert.Equal(t, 175, plan.Targets.Protein.Ideal) // 2000*0.35/4
	})

	t.Run("calorie target alone personalizes an incomplete profile", func(t *testing.T) {
		profile := &schema.UserProfile{CalorieTarget: 2000}
		plan := BuildDailyPlan(profile, 100)

		assert.Nil(t, plan.Energy.BMR)
		assert.Nil(t, plan.Energy.TDEE)
		require.NotNil(t, plan.Targets)
		assert.Equal(t, 150, plan.Targets.Protein.Ideal) // 2000*0.30/4
	})

	t.Run("incomplete profile degrades", func(t *testing.T) {
		profile := &schema.UserProfile{Age: 30, Sex: schema.Male}
		plan := BuildDailyPlan(profile, 100)

		assert.Nil(t, plan.Energy.BMR)
		assert.Nil(t, plan.Targets)
		assert.Nil(t, plan.Budgets)
	})
}

// TestRecommendFoods runs the full pipeline: gating, parallel scoring,
// annotation and ranking.
func TestRecommendFoods(t *testing.T) {
	cfg := &contract.Config{
		Slot:          schema.Breakfast,
		ResultLimit:   10,
		Workers:       4,
		ToleranceKcal: 100,
	}
	profile := &schema.UserProfile{
		Age: 30, WeightKg: 70, HeightCm: 175,
		Sex:                 schema.Male,
		ActivityLevel:       schema.Moderate,
		HealthGoals:         []string{"muscle gain"},
		DietaryRestrictions: []string{"vegan"},
		Allergies:           []string{"nut"},
		MealsPerDay:         3,
	}
	foods := []schema.FoodItem{
		{Name: "Tofu Scramble", DietType: "vegan", Calories: 350, ProteinG: 25, CarbsG: 20, FatG: 18},
		{Name: "Ribeye Steak", DietType: "keto", Calories: 700, ProteinG: 60, CarbsG: 0, FatG: 45},
		{Name: "Trail Mix", DietType: "Vegan", Calories: 450, ProteinG: 12, CarbsG: 40, FatG: 28, Allergens: []string{"tree nuts"}},
		{Name: "Protein Bowl", DietType: "Vegan", Calories: 620, ProteinG: 40, CarbsG: 60, FatG: 15},
	}

	ranked, plan := RecommendFoods(context.Background(), cfg, profile, foods)

	require.NotNil(t, plan.Targets)
	require.Len(t, ranked, 2, "steak fails the restriction gate, trail mix the allergen gate")

	names := []string{ranked[0].Name, ranked[1].Name}
	assert.NotContains(t, names, "Ribeye Steak")
	assert.NotContains(t, names, "Trail Mix")

	for _, f := range ranked {
		assert.GreaterOrEqual(t, f.MacroScore, 0)
		assert.LessOrEqual(t, f.MacroScore, 100)
		assert.Nil(t, f.Breakdown, "breakdown is only populated in explain mode")
	}
	assert.GreaterOrEqual(t, ranked[0].MacroScore, ranked[1].MacroScore)
}

// TestRecommendFoodsExplain verifies breakdown propagation in explain mode.
func TestRecommendFoodsExplain(t *testing.T) {
	cfg := &contract.Config{
		Slot:          schema.Lunch,
		ResultLimit:   5,
		Workers:       2,
		ToleranceKcal: 100,
		Explain:       true,
	}
	profile := &schema.UserProfile{
		Age: 30, WeightKg: 70, HeightCm: 175,
		Sex:           schema.Male,
		ActivityLevel: schema.Moderate,
		MealsPerDay:   3,
	}
	foods := []schema.FoodItem{
		{Name: "Chicken Rice", Calories: 650, ProteinG: 45, CarbsG: 70, FatG: 14},
	}

	ranked, _ := RecommendFoods(context.Background(), cfg, profile, foods)
	require.Len(t, ranked, 1)
	assert.Len(t, ranked[0].Breakdown, 3)
}

// TestRecommendFoodsLimit verifies the result limit is enforced.
func TestRecommendFoodsLimit(t *testing.T) {
	cfg := &contract.Config{
		Slot:          schema.Dinner,
		ResultLimit:   3,
		Workers:       4,
		ToleranceKcal: 100,
	}
	profile := &schema.UserProfile{
		Age: 30, WeightKg: 70, HeightCm: 175,
		Sex:           schema.Male,
		ActivityLevel: schema.Moderate,
		MealsPerDay:   3,
	}

	var foods []schema.FoodItem
	for i := range 10 {
		foods = append(foods, schema.FoodItem{
			Name:     string(rune('a' + i)),
			Calories: 400 + i*50,
			ProteinG: float64(10 + i*5),
			CarbsG:   50,
			FatG:     15,
		})
	}

	ranked, _ := RecommendFoods(context.Background(), cfg, profile, foods)
	assert.Len(t, ranked, 3)
}
