package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/internal/parquet"
	"github.com/mealpoint/nutriscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFoodResults outputs the ranked scored foods, dispatching based on
// the output format configured.
func WriteFoodResults(foods []schema.ScoredFood, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeFoodJSONResults(foods, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeFoodCSVResults(foods, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		records := parquet.ConvertScoredFoods(foods, contract.GetPlainLabel)
		if err := parquet.WriteScoredFoodsParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFoodTable(foods, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeFoodJSONResults handles opening the file and calling the JSON writer.
func writeFoodJSONResults(foods []schema.ScoredFood, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForFoods(w, foods)
	}, "Wrote JSON")
}

// writeFoodCSVResults handles opening the file and calling the CSV writer.
func writeFoodCSVResults(foods []schema.ScoredFood, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"name",
			"diet_type",
			"score",
			"label",
			"calories",
			"protein_g",
			"carbs_g",
			"fat_g",
			"reasons",
			"badges",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForFoods(csvWriter, foods, fmtFloat, intFmt)
		})
	}, "Wrote CSV")
}

// writeFoodTable generates and writes the human-readable table.
func writeFoodTable(foods []schema.ScoredFood, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Food", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Cal", "Protein", "Carbs", "Fat")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	headers = append(headers, "Reasons")
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	for i, f := range foods {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(f.Name, GetMaxTableNameWidth(cfg)), // Food
			fmt.Sprintf(intFmt, f.MacroScore),                        // Score
			label(f.MacroScore),                                      // Label
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf(intFmt, f.Calories), // Cal
				fmtFloat(f.ProteinG),            // Protein
				fmtFloat(f.CarbsG),              // Carbs
				fmtFloat(f.FatG),                // Fat
			)
		}
		if cfg.Explain {
			row = append(row, formatTopMacroBreakdown(&f)) // Breakdown explanation
		}
		row = append(row, strings.Join(f.MatchReasons, "; "))
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d foods for slot %s\n", len(foods), cfg.Slot); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Catalog backend: %s\n", duration, cfg.Workers, cfg.CatalogBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForFoods writes the scored foods in CSV format.
func writeCSVResultsForFoods(w *csv.Writer, foods []schema.ScoredFood, fmtFloat func(float64) string, intFmt string) error {
	for i, f := range foods {
		badges := make([]string, len(f.Badges))
		for j, b := range f.Badges {
			badges[j] = string(b)
		}
		rec := []string{
			strconv.Itoa(i + 1),                  // Rank
			f.Name,                               // Name
			f.DietType,                           // Diet type
			fmt.Sprintf(intFmt, f.MacroScore),    // Score
			contract.GetPlainLabel(f.MacroScore), // Label
			fmt.Sprintf(intFmt, f.Calories),      // Calories
			fmtFloat(f.ProteinG),                 // Protein
			fmtFloat(f.CarbsG),                   // Carbs
			fmtFloat(f.FatG),                     // Fat
			strings.Join(f.MatchReasons, "|"),    // Reasons
			strings.Join(badges, "|"),            // Badges
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForFoods writes the scored foods in JSON format.
func writeJSONResultsForFoods(w io.Writer, foods []schema.ScoredFood) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONFoodResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ScoredFood
	}

	output := make([]JSONFoodResult, len(foods))
	for i, f := range foods {
		output[i] = JSONFoodResult{
			Rank:       i + 1,
			Label:      contract.GetPlainLabel(f.MacroScore),
			ScoredFood: f,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// macroBreakdown holds a key-value pair from the Breakdown map representing
// a macro's contribution to the composite score.
type macroBreakdown struct {
	Name  schema.MacroKey
	Value float64
}

const macroContribMinimum = 0.5

// formatTopMacroBreakdown orders the macros by their weighted contribution
// to the final score, largest first.
func formatTopMacroBreakdown(f *schema.ScoredFood) string {
	var macros []macroBreakdown
	for k, v := range f.Breakdown {
		// Only include meaningful contributions
		if v >= macroContribMinimum {
			macros = append(macros, macroBreakdown{Name: k, Value: v})
		}
	}

	if len(macros) == 0 {
		return "Not applicable"
	}

	sort.Slice(macros, func(i, j int) bool {
		return macros[i].Value > macros[j].Value
	})

	parts := make([]string, len(macros))
	for i, m := range macros {
		parts[i] = string(m.Name)
	}
	return strings.Join(parts, " > ")
}
