package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mealpoint/nutriscore/schema"
)

// validate is shared across profile loads; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// LoadProfile reads and validates a user profile from a JSON file. Range
// validation (age, weight, height, enum membership) happens here at the
// boundary so the engine can trust its inputs and only ever has to handle
// missing fields, not malformed ones. Defaults are applied for meals per
// day; a missing activity level is left empty and resolved to moderate by
// the engine.
func LoadProfile(path string) (*schema.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile schema.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := validate.Struct(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	ApplyProfileDefaults(&profile)
	return &profile, nil
}

// ApplyProfileDefaults fills the documented defaults for optional profile
// fields.
func ApplyProfileDefaults(p *schema.UserProfile) {
	if p.MealsPerDay <= 0 {
		p.MealsPerDay = 3
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = schema.Moderate
	}
}
