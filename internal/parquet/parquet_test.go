package parquet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mealpoint/nutriscore/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoredFoodRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	recordSchema := parquet.SchemaOf(new(ScoredFoodRecord))
	require.NotNil(t, recordSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"rank",
		"name",
		"diet_type",
		"calories",
		"protein_g",
		"carbs_g",
		"fat_g",
		"macro_score",
		"score_label",
		"match_reasons",
		"badges",
	}

	for _, colName := range expectedColumns {
		col, ok := recordSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertScoredFoods(t *testing.T) {
	foods := []schema.ScoredFood{
		{
			FoodItem:     schema.FoodItem{Name: "Protein Bowl", DietType: "vegan", Calories: 620, ProteinG: 40, CarbsG: 60, FatG: 15},
			MacroScore:   88,
			MatchReasons: []string{"High protein", "Good macro balance"},
			Badges:       []schema.Badge{schema.HighProteinBadge, schema.VeganBadge},
		},
	}

	labelFor := func(score int) string {
		if score >= 80 {
			return "Excellent"
		}
		return "Good"
	}

	records := ConvertScoredFoods(foods, labelFor)
	require.Len(t, records, 1)

	rec := records[0]
	assert.EqualValues(t, 1, rec.Rank)
	assert.Equal(t, "Protein Bowl", rec.Name)
	assert.EqualValues(t, 620, rec.Calories)
	assert.EqualValues(t, 88, rec.MacroScore)
	assert.Equal(t, "Excellent", rec.ScoreLabel)
	assert.Equal(t, "High protein|Good macro balance", rec.MatchReasons)
	assert.Equal(t, "high_protein|vegan", rec.Badges)
}

func TestWriteScoredFoodsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "scored_foods.parquet")

	data := []ScoredFoodRecord{
		{Rank: 1, Name: "Protein Bowl", DietType: "vegan", Calories: 620, ProteinG: 40, CarbsG: 60, FatG: 15, MacroScore: 88, ScoreLabel: "Excellent", MatchReasons: "High protein", Badges: "high_protein|vegan"},
		{Rank: 2, Name: "Tofu Scramble", DietType: "vegan", Calories: 350, ProteinG: 25, CarbsG: 20, FatG: 18, MacroScore: 64, ScoreLabel: "Good"},
	}

	// Write data to Parquet file
	err := WriteScoredFoodsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created and is non-empty
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteScoredFoodsParquetEmpty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteScoredFoodsParquet(nil, outputPath))

	_, err := os.Stat(outputPath)
	assert.NoError(t, err)
}
