package core

import (
	"math"

	"github.com/mealpoint/nutriscore/schema"
)

// NeutralScore is returned when a food or macro cannot be evaluated. The
// engine must always produce a rankable number, never an error, so missing
// targets and zero macro values degrade to this midpoint instead of failing.
const NeutralScore = 50

// DefaultMealsPerDay is used when the profile does not specify a positive
// meals-per-day value.
const DefaultMealsPerDay = 3

// Band scoring constants for scoreMacro.
const (
	peakScore    = 100.0
	bandFloor    = 80.0
	bandPenalty  = 20.0
	falloffScale = 80.0
)

// ScoreFood scores a single food's macros against the daily macro targets,
// producing a 0-100 composite using goal-dependent weights. Daily targets
// are first divided down to per-meal targets by mealsPerDay. A nil targets
// record yields the neutral score. customWeights may override the per-class
// weight tables (from config) and falls back to the defaults when absent.
func ScoreFood(food *schema.FoodItem, targets *schema.MacroTargets, mealsPerDay int, goals []string, customWeights map[schema.GoalClass]map[schema.MacroKey]float64) int {
	score, _ := scoreFood(food, targets, mealsPerDay, goals, customWeights)
	return score
}

// scoreFood is ScoreFood plus the per-macro breakdown used by explain mode.
// Breakdown values are each macro's weighted contribution to the composite.
func scoreFood(food *schema.FoodItem, targets *schema.MacroTargets, mealsPerDay int, goals []string, customWeights map[schema.GoalClass]map[schema.MacroKey]float64) (int, map[schema.MacroKey]float64) {
	if targets == nil {
		return NeutralScore, nil
	}
	if mealsPerDay <= 0 {
		mealsPerDay = DefaultMealsPerDay
	}

	perMeal := perMealTargets(targets, mealsPerDay)

	macroScores := map[schema.MacroKey]float64{
		schema.ProteinKey: scoreMacro(food.ProteinG, perMeal.Protein),
		schema.CarbsKey:   scoreMacro(food.CarbsG, perMeal.Carbs),
		schema.FatsKey:    scoreMacro(food.FatG, perMeal.Fats),
	}

	weights := resolveWeights(ClassifyGoals(goals), customWeights)

	breakdown := make(map[schema.MacroKey]float64, len(macroScores))
	var raw float64
	for key, macroScore := range macroScores {
		contribution := weights[key] * macroScore
		breakdown[key] = contribution
		raw += contribution
	}

	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}

// resolveWeights picks the custom weight map for a goal class when the
// config provides one, otherwise the documented defaults.
func resolveWeights(class schema.GoalClass, customWeights map[schema.GoalClass]map[schema.MacroKey]float64) map[schema.MacroKey]float64 {
	if custom, ok := customWeights[class]; ok && len(custom) > 0 {
		return custom
	}
	return schema.GetDefaultWeights(class)
}

// perMealTargets divides each daily macro band by the number of meals.
func perMealTargets(t *schema.MacroTargets, mealsPerDay int) schema.MacroTargets {
	return schema.MacroTargets{
		Protein: divideRange(t.Protein, mealsPerDay),
		Carbs:   divideRange(t.Carbs, mealsPerDay),
		Fats:    divideRange(t.Fats, mealsPerDay),
	}
}

func divideRange(r schema.MacroRange, n int) schema.MacroRange {
	return schema.MacroRange{
		Min:   int(math.Round(float64(r.Min) / float64(n))),
		Ideal: int(math.Round(float64(r.Ideal) / float64(n))),
		Max:   int(math.Round(float64(r.Max) / float64(n))),
	}
}

// scoreMacro scores a single macro value against its per-meal band:
//   - exactly the ideal scores 100
//   - inside [min, max] interpolates linearly down to 80 at the band edge
//   - outside the band the score falls off linearly toward 0, scaled by how
//     far the value is past the edge relative to the edge itself
//   - a zero value or an empty target scores the neutral midpoint, so one
//     missing macro never nulls out the whole food
func scoreMacro(value float64, target schema.MacroRange) float64 {
	if value == 0 || target.Ideal == 0 {
		return NeutralScore
	}

	ideal := float64(target.Ideal)
	minV := float64(target.Min)
	maxV := float64(target.Max)

	if value == ideal {
		return peakScore
	}

	if value >= minV && value <= maxV {
		halfBand := (maxV - minV) / 2
		if halfBand == 0 {
			return peakScore
		}
		score := peakScore - (math.Abs(value-ideal)/halfBand)*bandPenalty
		return math.Min(peakScore, math.Max(bandFloor, score))
	}

	if value < minV {
		if minV == 0 {
			return 0
		}
		return math.Max(0, bandFloor-((minV-value)/minV)*falloffScale)
	}

	// value > maxV
	return math.Max(0, bandFloor-((value-maxV)/maxV)*falloffScale)
}
