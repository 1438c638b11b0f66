package core

import (
	"math"

	"github.com/mealpoint/nutriscore/schema"
)

// Kcal-per-gram conversion factors.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// Tolerance band around each ideal gram value.
const (
	macroBandLow  = 0.8
	macroBandHigh = 1.2
)

// ComputeMacroTargets converts daily calories and health goals into daily
// gram targets with tolerance bands. Returns nil when tdee is unavailable
// so callers degrade to neutral scoring instead of erroring.
func ComputeMacroTargets(tdee int, goals []string) *schema.MacroTargets {
	if tdee <= 0 {
		return nil
	}

	split := schema.GetGoalSplit(ClassifyGoals(goals))
	protein := int(math.Round(float64(tdee) * split[schema.ProteinKey] / kcalPerGramProtein))
	carbs := int(math.Round(float64(tdee) * split[schema.CarbsKey] / kcalPerGramCarbs))
	fats := int(math.Round(float64(tdee) * split[schema.FatsKey] / kcalPerGramFat))

	return &schema.MacroTargets{
		Protein: macroRangeFor(protein),
		Carbs:   macroRangeFor(carbs),
		Fats:    macroRangeFor(fats),
	}
}

// macroRangeFor builds the {min, ideal, max} band around an ideal gram
// value. Invariant: Min <= Ideal <= Max.
func macroRangeFor(ideal int) schema.MacroRange {
	return schema.MacroRange{
		Min:   int(math.Round(float64(ideal) * macroBandLow)),
		Ideal: ideal,
		Max:   int(math.Round(float64(ideal) * macroBandHigh)),
	}
}
