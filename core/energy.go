// Package core implements the nutrition scoring and target-allocation engine.
// All functions here are pure and synchronous: they derive values from the
// profile and catalog records they are handed and never touch shared state,
// so callers may invoke them from any concurrency context.
package core

import (
	"math"

	"github.com/mealpoint/nutriscore/schema"
)

// ComputeBMR calculates the Basal Metabolic Rate in kcal using the revised
// Harris-Benedict formula. Returns ok=false when any of age, weight, height
// or sex is missing; callers must treat that as "cannot personalize", never
// as zero. The formula result is not clamped; profile validation keeps the
// input domain physiologically plausible.
func ComputeBMR(p *schema.UserProfile) (int, bool) {
	if p == nil || p.Age == 0 || p.WeightKg == 0 || p.HeightCm == 0 {
		return 0, false
	}

	var bmr float64
	switch p.Sex {
	case schema.Male:
		bmr = 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	case schema.Female:
		bmr = 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
	default:
		return 0, false
	}

	return int(math.Round(bmr)), true
}

// ComputeTDEE scales a BMR by the activity-level factor to estimate Total
// Daily Energy Expenditure. Unknown or missing levels use the moderate
// factor.
func ComputeTDEE(bmr int, level schema.ActivityLevel) int {
	return int(math.Round(float64(bmr) * schema.GetActivityFactor(level)))
}

// ComputeEnergyProfile derives BMR and TDEE for a profile. Both fields stay
// nil when the biometric inputs are incomplete.
func ComputeEnergyProfile(p *schema.UserProfile) schema.EnergyProfile {
	var energy schema.EnergyProfile
	if bmr, ok := ComputeBMR(p); ok {
		tdee := ComputeTDEE(bmr, p.ActivityLevel)
		energy.BMR = &bmr
		energy.TDEE = &tdee
	}
	return energy
}
