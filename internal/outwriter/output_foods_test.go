package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleScoredFoods returns a small ranked result set for writer tests.
func sampleScoredFoods() []schema.ScoredFood {
	return []schema.ScoredFood{
		{
			FoodItem:     schema.FoodItem{Name: "Protein Bowl", DietType: "vegan", Calories: 620, ProteinG: 40, CarbsG: 60, FatG: 15},
			MacroScore:   88,
			MatchReasons: []string{"Fits meal budget (620/664 cal)", "High protein"},
			Badges:       []schema.Badge{schema.OptimalCaloriesBadge, schema.HighProteinBadge, schema.VeganBadge},
		},
		{
			FoodItem:     schema.FoodItem{Name: "Tofu Scramble", DietType: "vegan", Calories: 350, ProteinG: 25, CarbsG: 20, FatG: 18},
			MacroScore:   64,
			MatchReasons: []string{"Good macro balance"},
			Badges:       []schema.Badge{schema.LowCaloriesBadge, schema.VeganBadge},
		},
	}
}

// testFoodConfig returns a config suitable for deterministic writer output.
func testFoodConfig() *contract.Config {
	return &contract.Config{
		Slot:           schema.Breakfast,
		ResultLimit:    10,
		Workers:        4,
		Precision:      1,
		Width:          120,
		Output:         schema.TextOut,
		CatalogBackend: schema.NoneBackend,
	}
}

// TestWriteFoodTable checks the human-readable table content and footer.
func TestWriteFoodTable(t *testing.T) {
	cfg := testFoodConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeFoodTable(sampleScoredFoods(), cfg, fmtFloat, intFmt, 10*time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "Protein Bowl")
	assert.Contains(t, out, "Tofu Scramble")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "High protein")
	assert.Contains(t, out, "Showing top 2 foods for slot breakfast")
	assert.Contains(t, out, "with 4 workers")
}

// TestWriteFoodTableDetail checks the optional macro columns.
func TestWriteFoodTableDetail(t *testing.T) {
	cfg := testFoodConfig()
	cfg.Detail = true
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	require.NoError(t, writeFoodTable(sampleScoredFoods(), cfg, fmtFloat, intFmt, time.Millisecond, &buf))

	out := buf.String()
	assert.Contains(t, out, "40.0")
	assert.Contains(t, out, "620")
}

// TestWriteCSVResultsForFoods checks the CSV row shape.
func TestWriteCSVResultsForFoods(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)

	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"rank", "name", "diet_type", "score", "label", "calories", "protein_g", "carbs_g", "fat_g", "reasons", "badges"}, func(w *csv.Writer) error {
		return writeCSVResultsForFoods(w, sampleScoredFoods(), fmtFloat, intFmt)
	})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{"1", "Protein Bowl", "vegan", "88", "Excellent", "620", "40.0", "60.0", "15.0", "Fits meal budget (620/664 cal)|High protein", "optimal_calories|high_protein|vegan"}, records[1])
	assert.Equal(t, "2", records[2][0])
}

// TestWriteJSONResultsForFoods checks rank and label injection.
func TestWriteJSONResultsForFoods(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForFoods(&buf, sampleScoredFoods()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.EqualValues(t, 1, decoded[0]["rank"])
	assert.Equal(t, "Excellent", decoded[0]["label"])
	assert.Equal(t, "Protein Bowl", decoded[0]["name"])
	assert.EqualValues(t, 64, decoded[1]["macro_score"])
}

// TestFormatTopMacroBreakdown checks breakdown ordering and filtering.
func TestFormatTopMacroBreakdown(t *testing.T) {
	t.Run("ordered by contribution", func(t *testing.T) {
		food := &schema.ScoredFood{
			Breakdown: map[schema.MacroKey]float64{
				schema.ProteinKey: 44.0,
				schema.CarbsKey:   26.4,
				schema.FatsKey:    10.0,
			},
		}
		assert.Equal(t, "protein > carbs > fats", formatTopMacroBreakdown(food))
	})

	t.Run("tiny contributions filtered", func(t *testing.T) {
		food := &schema.ScoredFood{
			Breakdown: map[schema.MacroKey]float64{
				schema.ProteinKey: 44.0,
				schema.FatsKey:    0.2,
			},
		}
		assert.Equal(t, "protein", formatTopMacroBreakdown(food))
	})

	t.Run("no breakdown", func(t *testing.T) {
		assert.Equal(t, "Not applicable", formatTopMacroBreakdown(&schema.ScoredFood{}))
	})
}

// TestGetMaxTableNameWidth checks the clamping behavior.
func TestGetMaxTableNameWidth(t *testing.T) {
	t.Run("narrow terminal clamps to minimum", func(t *testing.T) {
		cfg := &contract.Config{Width: 50}
		assert.Equal(t, 15, GetMaxTableNameWidth(cfg))
	})

	t.Run("wide terminal clamps to maximum", func(t *testing.T) {
		cfg := &contract.Config{Width: 300}
		assert.Equal(t, 60, GetMaxTableNameWidth(cfg))
	})

	t.Run("mid width passes through", func(t *testing.T) {
		cfg := &contract.Config{Width: 100}
		assert.Equal(t, 55, GetMaxTableNameWidth(cfg))
	})

	t.Run("detail and explain shrink the name column", func(t *testing.T) {
		cfg := &contract.Config{Width: 120, Detail: true, Explain: true}
		assert.Equal(t, 15, GetMaxTableNameWidth(cfg))
	})
}
