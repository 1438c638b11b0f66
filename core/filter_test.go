package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchesDietaryRestrictions tests the inclusion-list semantics of the
// restriction filter.
func TestMatchesDietaryRestrictions(t *testing.T) {
	tests := []struct {
		name         string
		dietType     string
		restrictions []string
		expected     bool
	}{
		{"empty restrictions pass everything", "steakhouse special", nil, true},
		{"exact match", "vegan", []string{"vegan"}, true},
		{"case-insensitive match", "Vegan", []string{"VEGAN"}, true},
		{"second restriction matches", "keto", []string{"vegan", "keto"}, true},
		{"no match", "vegan", []string{"keto"}, false},
		{"substring is not a match", "vegan", []string{"veg"}, false},
		{"empty diet type with restrictions", "", []string{"vegan"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesDietaryRestrictions(tt.dietType, tt.restrictions))
		})
	}
}

// TestContainsAllergens tests the asymmetric substring matching of the
// allergen filter.
func TestContainsAllergens(t *testing.T) {
	tests := []struct {
		name      string
		allergens []string
		allergies []string
		expected  bool
	}{
		{"allergy substring of allergen", []string{"tree nuts"}, []string{"nut"}, true},
		{"exact match", []string{"dairy"}, []string{"dairy"}, true},
		{"case-insensitive", []string{"Tree Nuts"}, []string{"NUT"}, true},
		{"no overlap", []string{"dairy"}, []string{"nut"}, false},
		{"allergen substring of allergy does not match", []string{"nut"}, []string{"tree nuts"}, false},
		{"empty allergies never match", []string{"tree nuts", "dairy"}, nil, false},
		{"empty allergens", nil, []string{"nut"}, false},
		{"blank allergy entries are skipped", []string{"tree nuts"}, []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsAllergens(tt.allergens, tt.allergies))
		})
	}
}
