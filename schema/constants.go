package schema

// Custom string types for type safety.
type (
	// Sex represents the biological sex used by the BMR formula.
	Sex string

	// ActivityLevel represents how active a user is day to day.
	ActivityLevel string

	// GoalClass represents the resolved health-goal classification.
	GoalClass string

	// MealSlot represents a named portion of the day's calorie budget.
	MealSlot string

	// MacroKey represents one of the three macronutrients.
	MacroKey string

	// Badge represents a short categorical tag on a scored food.
	Badge string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the food catalog.
	DatabaseBackend string
)

// All sexes supported by the BMR formula.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// All activity levels supported.
const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate" // default
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// All goal classes supported. Classification over free-text goal tags is
// first-match-wins in this order; see core.ClassifyGoals.
const (
	MuscleGainClass GoalClass = "muscle_gain"
	WeightLossClass GoalClass = "weight_loss"
	KetoClass       GoalClass = "keto"
	BalancedClass   GoalClass = "balanced" // default
)

// All meal slots supported.
const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snacks    MealSlot = "snacks"
)

// Macro keys used in targets, weights and score breakdowns.
const (
	ProteinKey MacroKey = "protein"
	CarbsKey   MacroKey = "carbs"
	FatsKey    MacroKey = "fats"
)

// All badges supported.
const (
	OptimalCaloriesBadge Badge = "optimal_calories"
	LowCaloriesBadge     Badge = "low_calories"
	HighCaloriesBadge    Badge = "high_calories"
	HighProteinBadge     Badge = "high_protein"
	LowCarbBadge         Badge = "low_carb"
	LowFatBadge          Badge = "low_fat"
	KetoFriendlyBadge    Badge = "keto_friendly"
	VeganBadge           Badge = "vegan"
	VegetarianBadge      Badge = "vegetarian"
	GlutenFreeBadge      Badge = "gluten_free"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All catalog backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// MealSlots lists all slots in canonical day order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snacks}

// AllGoalClasses returns a list of all supported goal classes.
var AllGoalClasses = []GoalClass{MuscleGainClass, WeightLossClass, KetoClass, BalancedClass}

// ValidActivityLevels lists all valid activity levels.
var ValidActivityLevels = map[ActivityLevel]struct{}{
	Sedentary:  {},
	Light:      {},
	Moderate:   {},
	Active:     {},
	VeryActive: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid catalog backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidMealSlots lists all valid meal slots.
var ValidMealSlots = map[MealSlot]struct{}{
	Breakfast: {},
	Lunch:     {},
	Dinner:    {},
	Snacks:    {},
}

// activityFactors maps each activity level to its TDEE multiplier.
var activityFactors = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// GetActivityFactor returns the TDEE multiplier for the given activity level.
// Unknown or missing levels fall back to the moderate factor.
func GetActivityFactor(level ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return activityFactors[Moderate]
}

// mealShares maps each slot to its fixed share of the daily calories.
// Shares sum to 1.0 across all slots.
var mealShares = map[MealSlot]float64{
	Breakfast: 0.25,
	Lunch:     0.35,
	Dinner:    0.30,
	Snacks:    0.10,
}

// GetMealShare returns the calorie share for a meal slot.
func GetMealShare(slot MealSlot) float64 {
	return mealShares[slot]
}

// GetGoalSplit returns the calorie percent split used to derive daily gram
// targets for a goal class. Percentages sum to 1.0 for every class.
func GetGoalSplit(class GoalClass) map[MacroKey]float64 {
	switch class {
	case MuscleGainClass:
		return map[MacroKey]float64{
			ProteinKey: 0.35,
			CarbsKey:   0.40,
			FatsKey:    0.25,
		}
	case WeightLossClass:
		return map[MacroKey]float64{
			ProteinKey: 0.35,
			CarbsKey:   0.30,
			FatsKey:    0.35,
		}
	case KetoClass:
		return map[MacroKey]float64{
			ProteinKey: 0.25,
			CarbsKey:   0.05,
			FatsKey:    0.70,
		}
	default: // BalancedClass
		return map[MacroKey]float64{
			ProteinKey: 0.30,
			CarbsKey:   0.40,
			FatsKey:    0.30,
		}
	}
}

// GetDefaultWeights returns the default per-macro score weights for a goal
// class. Weights sum to 1.0 for every class.
func GetDefaultWeights(class GoalClass) map[MacroKey]float64 {
	switch class {
	case MuscleGainClass:
		return map[MacroKey]float64{
			ProteinKey: 0.50,
			CarbsKey:   0.30,
			FatsKey:    0.20,
		}
	case WeightLossClass:
		return map[MacroKey]float64{
			ProteinKey: 0.45,
			CarbsKey:   0.25,
			FatsKey:    0.30,
		}
	case KetoClass:
		return map[MacroKey]float64{
			ProteinKey: 0.25,
			CarbsKey:   0.10,
			FatsKey:    0.65,
		}
	default: // BalancedClass
		return map[MacroKey]float64{
			ProteinKey: 0.33,
			CarbsKey:   0.33,
			FatsKey:    0.34,
		}
	}
}

// dietBadges maps a food's diet-type tag to its 1:1 badge.
var dietBadges = map[string]Badge{
	"keto":        KetoFriendlyBadge,
	"vegan":       VeganBadge,
	"vegetarian":  VegetarianBadge,
	"gluten_free": GlutenFreeBadge,
}

// GetDietBadge returns the badge for a diet-type tag, if one is mapped.
func GetDietBadge(dietType string) (Badge, bool) {
	b, ok := dietBadges[dietType]
	return b, ok
}
