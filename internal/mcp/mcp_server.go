// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mealpoint/nutriscore/internal/contract"
)

// NewMCPServer initializes and configures the nutriscore MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.CatalogStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Nutriscore Recommendation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: compute_targets ---
	s.AddTool(mcp.NewTool("compute_targets",
		mcp.WithDescription("Compute BMR, TDEE, daily macro targets and meal calorie budgets for a user profile."),
		mcp.WithString("profile_path", mcp.Description("Path to the user profile JSON file."), mcp.Required()),
		mcp.WithNumber("tolerance", mcp.Description("Calorie tolerance per meal slot. Defaults to 100.")),
	), h.handleComputeTargets)

	// --- 2. Tool: recommend_foods ---
	s.AddTool(mcp.NewTool("recommend_foods",
		mcp.WithDescription("Score and rank catalog foods against a user profile's macro targets."),
		mcp.WithString("profile_path", mcp.Description("Path to the user profile JSON file."), mcp.Required()),
		mcp.WithString("catalog_path", mcp.Description("Path to a catalog JSON file. Defaults to the configured catalog store.")),
		mcp.WithString("slot", mcp.Description("Meal slot to evaluate against (breakfast, lunch, dinner, snacks)."), mcp.Enum("breakfast", "lunch", "dinner", "snacks")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleRecommendFoods)

	// --- 3. Tool: score_food ---
	s.AddTool(mcp.NewTool("score_food",
		mcp.WithDescription("Score a single food's macros against a user profile and explain the result."),
		mcp.WithString("profile_path", mcp.Description("Path to the user profile JSON file."), mcp.Required()),
		mcp.WithString("name", mcp.Description("Food name.")),
		mcp.WithString("diet_type", mcp.Description("Food diet-type tag (e.g. keto, vegan).")),
		mcp.WithNumber("calories", mcp.Description("Food calories in kcal."), mcp.Required()),
		mcp.WithNumber("protein_g", mcp.Description("Protein grams.")),
		mcp.WithNumber("carbs_g", mcp.Description("Carb grams.")),
		mcp.WithNumber("fat_g", mcp.Description("Fat grams.")),
		mcp.WithString("slot", mcp.Description("Meal slot to evaluate against."), mcp.Enum("breakfast", "lunch", "dinner", "snacks")),
	), h.handleScoreFood)

	return s
}

// StartMCPServer starts the nutriscore MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.CatalogStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
