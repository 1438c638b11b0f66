// Package algo holds ranking helpers for scored catalog results.
package algo

import (
	"sort"

	"github.com/mealpoint/nutriscore/schema"
)

// RankFoods sorts scored foods by macro score in descending order and
// returns the top 'limit' foods. Ties break on name so output is stable
// across runs even though catalog scoring itself is unordered. If limit is
// greater than the number of foods, all foods are returned in sorted order.
func RankFoods(foods []schema.ScoredFood, limit int) []schema.ScoredFood {
	sort.Slice(foods, func(i, j int) bool {
		if foods[i].MacroScore != foods[j].MacroScore {
			return foods[i].MacroScore > foods[j].MacroScore
		}
		return foods[i].Name < foods[j].Name
	})
	if limit > 0 && len(foods) > limit {
		return foods[:limit]
	}
	return foods
}
