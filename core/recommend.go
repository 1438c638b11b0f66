package core

import (
	"context"
	"sync"

	"github.com/mealpoint/nutriscore/core/algo"
	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
)

// BuildDailyPlan derives everything the scorer needs from one profile:
// energy values, daily macro targets and per-slot calorie budgets. An
// explicit calorie target on the profile overrides the TDEE for target and
// budget derivation; without either, Targets and Budgets stay nil and
// scoring degrades to neutral.
func BuildDailyPlan(profile *schema.UserProfile, toleranceKcal int) schema.DailyPlan {
	plan := schema.DailyPlan{Energy: ComputeEnergyProfile(profile)}

	daily := 0
	if plan.Energy.TDEE != nil {
		daily = *plan.Energy.TDEE
	}
	if profile.CalorieTarget > 0 {
		daily = profile.CalorieTarget
	}

	if daily > 0 {
		plan.Targets = ComputeMacroTargets(daily, profile.HealthGoals)
		plan.Budgets = ComputeMealBudgets(daily, toleranceKcal)
	}
	return plan
}

// RecommendFoods gates, scores and annotates every candidate food against
// the profile's daily plan, then returns the ranked top results along with
// the plan itself. Foods are processed in parallel by a worker pool; each
// evaluation is independent, so no ordering is needed until the final rank.
func RecommendFoods(ctx context.Context, cfg *contract.Config, profile *schema.UserProfile, foods []schema.FoodItem) ([]schema.ScoredFood, schema.DailyPlan) {
	plan := BuildDailyPlan(profile, cfg.ToleranceKcal)

	var budget *schema.MealBudget
	if plan.Budgets != nil {
		b := plan.Budgets[cfg.Slot]
		budget = &b
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}

	foodCh := make(chan schema.FoodItem, len(foods))
	resultCh := make(chan schema.ScoredFood, len(foods))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for food := range foodCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if scored, ok := evaluateFood(cfg, profile, plan.Targets, budget, food); ok {
					resultCh <- scored
				}
			}
		})
	}

	for _, food := range foods {
		foodCh <- food
	}
	close(foodCh)

	wg.Wait()
	close(resultCh)

	results := make([]schema.ScoredFood, 0, len(foods))
	for scored := range resultCh {
		results = append(results, scored)
	}

	return algo.RankFoods(results, cfg.ResultLimit), plan
}

// evaluateFood runs the per-food pipeline: restriction gate, allergen gate,
// macro scoring, annotation. Returns ok=false when the food is filtered out
// entirely.
func evaluateFood(cfg *contract.Config, profile *schema.UserProfile, targets *schema.MacroTargets, budget *schema.MealBudget, food schema.FoodItem) (schema.ScoredFood, bool) {
	if !MatchesDietaryRestrictions(food.DietType, profile.DietaryRestrictions) {
		return schema.ScoredFood{}, false
	}
	if ContainsAllergens(food.Allergens, profile.Allergies) {
		return schema.ScoredFood{}, false
	}

	score, breakdown := scoreFood(&food, targets, profile.MealsPerDay, profile.HealthGoals, cfg.CustomWeights)
	annotation := Annotate(&food, budget, score, profile.HealthGoals)

	scored := schema.ScoredFood{
		FoodItem:     food,
		MacroScore:   score,
		MatchReasons: annotation.Reasons,
		Badges:       annotation.Badges,
	}
	if cfg.Explain {
		scored.Breakdown = breakdown
	}
	return scored, true
}
