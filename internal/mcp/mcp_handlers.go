package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mealpoint/nutriscore/core"
	"github.com/mealpoint/nutriscore/internal/catalog"
	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.CatalogStore
}

func (h *toolHandler) handleComputeTargets(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := contract.LoadProfile(request.GetString("profile_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}

	tolerance := request.GetInt("tolerance", h.baseCfg.ToleranceKcal)
	plan := core.BuildDailyPlan(profile, tolerance)

	jsonData, _ := json.MarshalIndent(plan, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRecommendFoods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if s := request.GetString("slot", ""); s != "" {
		cfg.Slot = schema.MealSlot(s)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	profile, err := contract.LoadProfile(request.GetString("profile_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}

	var foods []schema.FoodItem
	if path := request.GetString("catalog_path", ""); path != "" {
		foods, err = catalog.LoadCatalogFile(path)
	} else if h.store != nil {
		foods, err = h.store.ListFoods(ctx)
	} else {
		return mcp.NewToolResultError("no catalog available: pass catalog_path or configure a catalog backend"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load catalog: %v", err)), nil
	}

	ranked, _ := core.RecommendFoods(ctx, cfg, profile, foods)
	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreFood(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := contract.LoadProfile(request.GetString("profile_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}

	food := schema.FoodItem{
		Name:     request.GetString("name", "ad-hoc food"),
		DietType: request.GetString("diet_type", ""),
		Calories: request.GetInt("calories", 0),
		ProteinG: request.GetFloat("protein_g", 0),
		CarbsG:   request.GetFloat("carbs_g", 0),
		FatG:     request.GetFloat("fat_g", 0),
	}

	plan := core.BuildDailyPlan(profile, h.baseCfg.ToleranceKcal)

	slot := schema.MealSlot(request.GetString("slot", string(h.baseCfg.Slot)))
	var budget *schema.MealBudget
	if plan.Budgets != nil {
		b := plan.Budgets[slot]
		budget = &b
	}

	score := core.ScoreFood(&food, plan.Targets, profile.MealsPerDay, profile.HealthGoals, h.baseCfg.CustomWeights)
	annotation := core.Annotate(&food, budget, score, profile.HealthGoals)

	result := schema.ScoredFood{
		FoodItem:     food,
		MacroScore:   score,
		MatchReasons: annotation.Reasons,
		Badges:       annotation.Badges,
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
