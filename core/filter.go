package core

import "strings"

// MatchesDietaryRestrictions reports whether a food's diet-type tag is
// compatible with the user's selected restrictions. The restriction set is
// an inclusion list, not an exclusion list: with restrictions present, a
// food is shown only when its diet type exactly matches one of them
// (case-insensitive). An empty set means no filtering at all.
func MatchesDietaryRestrictions(foodDietType string, userRestrictions []string) bool {
	if len(userRestrictions) == 0 {
		return true
	}
	diet := strings.ToLower(foodDietType)
	for _, restriction := range userRestrictions {
		if diet == strings.ToLower(restriction) {
			return true
		}
	}
	return false
}

// ContainsAllergens reports whether any user allergy matches any food
// allergen. The match is asymmetric substring containment, not equality:
// an allergy of "nut" matches a food allergen of "tree nuts". An empty
// allergy set never matches.
func ContainsAllergens(foodAllergens []string, userAllergies []string) bool {
	if len(userAllergies) == 0 {
		return false
	}
	for _, allergen := range foodAllergens {
		lower := strings.ToLower(allergen)
		for _, allergy := range userAllergies {
			if allergy == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(allergy)) {
				return true
			}
		}
	}
	return false
}
