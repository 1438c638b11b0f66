// Package parquet provides data structures and functions for exporting
// scored recommendation results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"

	"github.com/mealpoint/nutriscore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoredFoodRecord represents one scored catalog food in a flat, columnar
// friendly shape. Reasons and badges are pipe-joined so the record stays a
// single row per food.
type ScoredFoodRecord struct {
	// Rank is the food's position in the ranked result set (1-based)
	Rank int32 `parquet:"rank,snappy"`

	// Name is the food's display name
	Name string `parquet:"name,snappy"`

	// DietType is the food's single diet-type tag
	DietType string `parquet:"diet_type,snappy"`

	// Calories is the food's calorie content in kcal
	Calories int32 `parquet:"calories,snappy"`

	// ProteinG, CarbsG and FatG are the food's macros in grams
	ProteinG float64 `parquet:"protein_g,snappy"`
	CarbsG   float64 `parquet:"carbs_g,snappy"`
	FatG     float64 `parquet:"fat_g,snappy"`

	// MacroScore is the 0-100 composite macro score
	MacroScore int32 `parquet:"macro_score,snappy"`

	// ScoreLabel is the qualitative label derived from the score
	ScoreLabel string `parquet:"score_label,snappy"`

	// MatchReasons holds the ordered reasons, pipe-separated
	MatchReasons string `parquet:"match_reasons,snappy"`

	// Badges holds the badge tags, pipe-separated
	Badges string `parquet:"badges,snappy"`
}

// ConvertScoredFoods converts ranked scored foods into Parquet records.
// labelFor maps a score to its qualitative label; passing it in keeps this
// package free of a dependency on the contract package.
func ConvertScoredFoods(foods []schema.ScoredFood, labelFor func(int) string) []ScoredFoodRecord {
	records := make([]ScoredFoodRecord, len(foods))
	for i, f := range foods {
		badges := make([]string, len(f.Badges))
		for j, b := range f.Badges {
			badges[j] = string(b)
		}
		records[i] = ScoredFoodRecord{
			Rank:         int32(i + 1),
			Name:         f.Name,
			DietType:     f.DietType,
			Calories:     int32(f.Calories),
			ProteinG:     f.ProteinG,
			CarbsG:       f.CarbsG,
			FatG:         f.FatG,
			MacroScore:   int32(f.MacroScore),
			ScoreLabel:   labelFor(f.MacroScore),
			MatchReasons: strings.Join(f.MatchReasons, "|"),
			Badges:       strings.Join(badges, "|"),
		}
	}
	return records
}

// WriteScoredFoodsParquet writes scored food records to a Parquet file.
func WriteScoredFoodsParquet(data []ScoredFoodRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScoredFoodRecord struct tags
	writer := parquet.NewGenericWriter[ScoredFoodRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
