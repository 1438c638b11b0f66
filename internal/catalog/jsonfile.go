package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mealpoint/nutriscore/schema"
)

// LoadCatalogFile reads a food catalog from a JSON file containing an array
// of food items. This is the ad-hoc alternative to the database-backed
// store for one-off runs.
func LoadCatalogFile(path string) ([]schema.FoodItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var foods []schema.FoodItem
	if err := json.Unmarshal(data, &foods); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return foods, nil
}
