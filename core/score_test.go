package core

import (
	"testing"

	"github.com/mealpoint/nutriscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perMealProtein is the scenario band used across the scoreMacro tests:
// daily muscle-gain protein at tdee 2657 divided across 3 meals.
var perMealProtein = schema.MacroRange{Min: 62, Ideal: 77, Max: 93}

// TestScoreMacroBranches tests every branch of the single-macro scoring
// formula against hand-computed values.
func TestScoreMacroBranches(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		target   schema.MacroRange
		expected float64
		delta    float64
	}{
		{
			name:     "exactly ideal",
			value:    77,
			target:   perMealProtein,
			expected: 100,
			delta:    0.001,
		},
		{
			name:     "inside band near ideal",
			value:    70,
			target:   perMealProtein,
			expected: 90.968, // 100 - (7/15.5)*20
			delta:    0.01,
		},
		{
			name:     "at band minimum",
			value:    62,
			target:   perMealProtein,
			expected: 80.645, // 100 - (15/15.5)*20
			delta:    0.01,
		},
		{
			name:     "at band maximum clamps to floor",
			value:    93,
			target:   perMealProtein,
			expected: 80, // raw 79.35 clamps up to the band floor
			delta:    0.001,
		},
		{
			name:     "below band",
			value:    32,
			target:   perMealProtein,
			expected: 41.29, // 80 - ((62-32)/62)*80
			delta:    0.01,
		},
		{
			name:     "above band",
			value:    120,
			target:   perMealProtein,
			expected: 56.774, // 80 - ((120-93)/93)*80
			delta:    0.01,
		},
		{
			name:     "deep below band",
			value:    1,
			target:   schema.MacroRange{Min: 80, Ideal: 100, Max: 120},
			expected: 1, // 80 - (79/80)*80 = 1.0
			delta:    0.01,
		},
		{
			name:     "far above band floors at zero",
			value:    1000,
			target:   perMealProtein,
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "zero value is neutral",
			value:    0,
			target:   perMealProtein,
			expected: NeutralScore,
			delta:    0.001,
		},
		{
			name:     "empty target is neutral",
			value:    40,
			target:   schema.MacroRange{},
			expected: NeutralScore,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreMacro(tt.value, tt.target), tt.delta)
		})
	}
}

// TestScoreMacroMonotonicOutsideBand checks that scores never increase as a
// value moves further past the band edge, in either direction.
func TestScoreMacroMonotonicOutsideBand(t *testing.T) {
	prev := scoreMacro(float64(perMealProtein.Min), perMealProtein)
	for v := perMealProtein.Min - 1; v > 0; v-- {
		score := scoreMacro(float64(v), perMealProtein)
		assert.LessOrEqual(t, score, prev, "value=%d", v)
		prev = score
	}

	prev = scoreMacro(float64(perMealProtein.Max), perMealProtein)
	for v := perMealProtein.Max + 1; v < perMealProtein.Max+200; v++ {
		score := scoreMacro(float64(v), perMealProtein)
		assert.LessOrEqual(t, score, prev, "value=%d", v)
		prev = score
	}
}

// TestScoreFood tests the weighted composite over all three macros.
func TestScoreFood(t *testing.T) {
	// Balanced targets at tdee 2657: protein {159,199,239}, carbs
	// {213,266,319}, fats {71,89,107}. Per meal at 3 meals/day the ideals
	// are 66g, 89g, 30g.
	targets := ComputeMacroTargets(2657, nil)
	require.NotNil(t, targets)

	t.Run("all macros at per-meal ideal", func(t *testing.T) {
		food := &schema.FoodItem{Name: "ideal bowl", ProteinG: 66, CarbsG: 89, FatG: 30}
		assert.Equal(t, 100, ScoreFood(food, targets, 3, nil, nil))
	})

	t.Run("all macros zero is neutral", func(t *testing.T) {
		food := &schema.FoodItem{Name: "water"}
		assert.Equal(t, NeutralScore, ScoreFood(food, targets, 3, nil, nil))
	})

	t.Run("nil targets is neutral", func(t *testing.T) {
		food := &schema.FoodItem{Name: "anything", ProteinG: 40, CarbsG: 40, FatG: 10}
		assert.Equal(t, NeutralScore, ScoreFood(food, nil, 3, nil, nil))
	})

	t.Run("zero meals per day behaves like the default", func(t *testing.T) {
		food := &schema.FoodItem{Name: "ideal bowl", ProteinG: 66, CarbsG: 89, FatG: 30}
		assert.Equal(t, ScoreFood(food, targets, 3, nil, nil), ScoreFood(food, targets, 0, nil, nil))
	})

	t.Run("bounded for arbitrary foods", func(t *testing.T) {
		foods := []schema.FoodItem{
			{Name: "a", ProteinG: 500, CarbsG: 500, FatG: 500},
			{Name: "b", Calories: 100, ProteinG: 0.1, CarbsG: 0.1, FatG: 0.1},
			{Name: "c", ProteinG: 66},
		}
		for _, food := range foods {
			score := ScoreFood(&food, targets, 3, []string{"keto"}, nil)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})
}

// TestScoreFoodCustomWeights verifies that config-supplied weights replace
// the per-class defaults.
func TestScoreFoodCustomWeights(t *testing.T) {
	targets := ComputeMacroTargets(2657, nil)
	require.NotNil(t, targets)

	// Protein at the per-meal ideal, other macros absent. With all weight
	// on protein the composite is the full peak score; with the balanced
	// defaults the absent macros drag it down.
	food := &schema.FoodItem{Name: "shake", ProteinG: 66}

	custom := map[schema.GoalClass]map[schema.MacroKey]float64{
		schema.BalancedClass: {schema.ProteinKey: 1.0},
	}
	assert.Equal(t, 100, ScoreFood(food, targets, 3, nil, custom))
	assert.Less(t, ScoreFood(food, targets, 3, nil, nil), 100)
}

// TestScoreFoodBreakdown verifies the per-macro contributions sum to the
// composite score.
func TestScoreFoodBreakdown(t *testing.T) {
	targets := ComputeMacroTargets(2657, []string{"muscle gain"})
	require.NotNil(t, targets)

	food := &schema.FoodItem{Name: "bowl", ProteinG: 70, CarbsG: 60, FatG: 20}
	score, breakdown := scoreFood(food, targets, 3, []string{"muscle gain"}, nil)
	require.Len(t, breakdown, 3)

	var sum float64
	for _, contribution := range breakdown {
		sum += contribution
	}
	assert.InDelta(t, float64(score), sum, 0.5)
}

// BenchmarkScoreFood benchmarks the composite food scoring path.
func BenchmarkScoreFood(b *testing.B) {
	targets := ComputeMacroTargets(2657, []string{"muscle gain"})
	food := &schema.FoodItem{Name: "bowl", ProteinG: 70, CarbsG: 60, FatG: 20}

	for b.Loop() {
		ScoreFood(food, targets, 3, []string{"muscle gain"}, nil)
	}
}
