// Package schema has configs, models and constant tables for all parts of nutriscore.
package schema

// UserProfile holds the biometric and goal inputs for a single recommendation
// request. Validation of ranges happens at the boundary (profile loading);
// the engine itself only distinguishes present from missing fields, where a
// zero value means missing.
type UserProfile struct {
	Age                 int           `json:"age" validate:"omitempty,gte=1,lte=120"`
	WeightKg            float64       `json:"weight_kg" validate:"omitempty,gte=20,lte=500"`
	HeightCm            float64       `json:"height_cm" validate:"omitempty,gte=50,lte=300"`
	Sex                 Sex           `json:"sex" validate:"omitempty,oneof=male female"`
	ActivityLevel       ActivityLevel `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	HealthGoals         []string      `json:"health_goals"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
	Allergies           []string      `json:"allergies"`
	MealsPerDay         int           `json:"meals_per_day" validate:"omitempty,gte=1"`
	CalorieTarget       int           `json:"calorie_target,omitempty" validate:"omitempty,gte=1"`
}

// FoodItem is a single candidate food from the catalog. Treated as read-only
// by the engine.
type FoodItem struct {
	Name      string   `json:"name"`
	DietType  string   `json:"diet_type"`
	Calories  int      `json:"calories"`
	ProteinG  float64  `json:"protein_g"`
	CarbsG    float64  `json:"carbs_g"`
	FatG      float64  `json:"fat_g"`
	Allergens []string `json:"allergens,omitempty"`
}

// ScoredFood is a FoodItem plus its composite macro score and the
// human-readable justification derived for it. Created fresh per scoring
// call and never mutated afterwards.
type ScoredFood struct {
	FoodItem
	MacroScore   int                  `json:"macro_score"`
	MatchReasons []string             `json:"match_reasons"`
	Badges       []Badge              `json:"badges"`
	Breakdown    map[MacroKey]float64 `json:"breakdown,omitempty"` // Per-macro score contribution for explain mode
}

// EnergyProfile holds the derived energy values for a profile. Nil fields
// mean the profile was too incomplete to personalize, never zero.
type EnergyProfile struct {
	BMR  *int `json:"bmr,omitempty"`
	TDEE *int `json:"tdee,omitempty"`
}

// MacroRange is an acceptance band for one macronutrient in grams.
type MacroRange struct {
	Min   int `json:"min"`
	Ideal int `json:"ideal"`
	Max   int `json:"max"`
}

// MacroTargets holds the daily gram targets for all three macros.
// Invariant: Min <= Ideal <= Max for each macro, and the ideal values are
// consistent with TDEE via the 4/4/9 kcal-per-gram conversion.
type MacroTargets struct {
	Protein MacroRange `json:"protein"`
	Carbs   MacroRange `json:"carbs"`
	Fats    MacroRange `json:"fats"`
}

// MealBudget is the calorie window for a single meal slot.
type MealBudget struct {
	Target int `json:"target"`
	Min    int `json:"min"`
	Max    int `json:"max"`
}

// MealBudgets maps each meal slot to its calorie budget. Slot shares sum to
// 1.0, so the targets sum back to the daily calories within rounding.
type MealBudgets map[MealSlot]MealBudget

// Annotation is the human-readable output of the recommendation annotator:
// an ordered reason list and a deterministic badge set.
type Annotation struct {
	Reasons []string `json:"reasons"`
	Badges  []Badge  `json:"badges"`
}

// DailyPlan bundles everything derived from one profile: energy values,
// daily macro targets and per-slot calorie budgets. Targets and Budgets are
// nil when the profile could not be personalized.
type DailyPlan struct {
	Energy  EnergyProfile `json:"energy"`
	Targets *MacroTargets `json:"targets,omitempty"`
	Budgets MealBudgets   `json:"budgets,omitempty"`
}
