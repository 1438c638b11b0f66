package cmd

import (
	"github.com/mealpoint/nutriscore/core"
	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/internal/outwriter"
	"github.com/spf13/cobra"
)

// targetsCmd computes a profile's daily plan without scoring any foods.
var targetsCmd = &cobra.Command{
	Use:   "targets [profile-path]",
	Short: "Show a profile's BMR, TDEE, macro targets and meal budgets.",
	Long: `Compute and print the daily plan derived from a user profile.

Shows:
- BMR via the revised Harris-Benedict equations
- TDEE from the profile's activity level
- Daily protein/carb/fat targets with min/max bands
- Per-slot calorie budgets (breakfast, lunch, dinner, snacks)

A profile missing age, weight, height or a recognized sex yields no energy
values; an explicit calorie_target on the profile overrides TDEE for target
and budget derivation.

Examples:
  # Print the plan as tables
  nutriscore targets profile.json

  # Export the plan as JSON
  nutriscore targets profile.json --output json --output-file plan.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		profile, err := contract.LoadProfile(cfg.ProfilePath)
		if err != nil {
			contract.LogFatal("Cannot load profile", err)
		}
		plan := core.BuildDailyPlan(profile, cfg.ToleranceKcal)
		if err := outwriter.NewOutWriter().WritePlan(plan, cfg); err != nil {
			contract.LogFatal("Cannot write plan", err)
		}
	},
}
