package cmd

import (
	"fmt"
	"time"

	"github.com/mealpoint/nutriscore/core"
	"github.com/mealpoint/nutriscore/internal/catalog"
	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/internal/outwriter"
	"github.com/mealpoint/nutriscore/schema"
	"github.com/spf13/cobra"
)

// recommendCmd scores and ranks catalog foods for one user profile.
var recommendCmd = &cobra.Command{
	Use:   "recommend [profile-path]",
	Short: "Rank foods by how well they fit a profile's macro targets.",
	Long: `Score every food in the catalog against a user profile and rank the results.

Derives the profile's daily plan (BMR, TDEE, macro targets, meal budgets),
filters out foods blocked by dietary restrictions or allergies, and scores
the rest, helping you:
- Find the best foods for a given meal slot
- See why a food matched (meal budget fit, protein, carbs, balance)
- Spot foods that blow past a slot's calorie budget

Scores reflect the profile's goal class (muscle gain, weight loss, keto,
balanced), ranking foods from best to worst macro fit.

Examples:
  # Rank breakfast foods for a profile
  nutriscore recommend profile.json

  # Rank dinner foods with macro columns and score breakdown
  nutriscore recommend profile.json --slot dinner --detail --explain

  # Score a JSON catalog file instead of the configured backend
  nutriscore recommend profile.json --catalog foods.json --limit 20

  # Export rankings to CSV for tracking
  nutriscore recommend profile.json --output csv --output-file ranked.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeRecommend(); err != nil {
			contract.LogFatal("Cannot run recommendation", err)
		}
	},
}

// executeRecommend runs the full recommendation pipeline: load profile and
// catalog, score, rank, write.
func executeRecommend() error {
	profile, err := contract.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	foods, err := loadFoods()
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		return fmt.Errorf("no foods to score: import a catalog or pass --catalog")
	}

	start := time.Now()
	ranked, _ := core.RecommendFoods(rootCtx, cfg, profile, foods)
	duration := time.Since(start)

	return outwriter.NewOutWriter().WriteFoods(ranked, cfg, duration)
}

// loadFoods resolves the food source: an explicit catalog file wins over the
// configured catalog store.
func loadFoods() ([]schema.FoodItem, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadCatalogFile(cfg.CatalogPath)
	}
	return catalogStore.ListFoods(rootCtx)
}
