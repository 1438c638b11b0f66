package core

import (
	"strings"

	"github.com/mealpoint/nutriscore/schema"
)

// goalRule pairs the substrings that identify a goal class with the class
// itself. Goal tags are free text, so classification is substring based
// rather than an enum lookup.
type goalRule struct {
	class   schema.GoalClass
	needles []string
}

// goalRules is evaluated first-match-wins, in order. A goal list containing
// both "keto" and "muscle gain" resolves to muscle gain because that rule is
// checked first; downstream weight tables depend on this exact precedence.
var goalRules = []goalRule{
	{schema.MuscleGainClass, []string{"muscle", "gain"}},
	{schema.WeightLossClass, []string{"weight loss", "fat loss"}},
	{schema.KetoClass, []string{"keto", "low carb"}},
}

// ClassifyGoals resolves a free-text goal list to a goal class using
// case-insensitive substring matching over the ordered rule list. An empty
// or unmatched list resolves to the balanced default.
func ClassifyGoals(goals []string) schema.GoalClass {
	for _, rule := range goalRules {
		for _, goal := range goals {
			lower := strings.ToLower(goal)
			for _, needle := range rule.needles {
				if strings.Contains(lower, needle) {
					return rule.class
				}
			}
		}
	}
	return schema.BalancedClass
}
