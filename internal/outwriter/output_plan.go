package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"

	"github.com/olekukonko/tablewriter"
)

// WritePlanResults outputs a profile's daily plan (energy values, macro
// targets and meal budgets), dispatching based on the output format
// configured. Parquet is not supported for plans; it only applies to
// scored result sets.
func WritePlanResults(plan schema.DailyPlan, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, plan)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlanCSV(w, plan)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for daily plans")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlanTables(w, plan)
		}, "Wrote table")
	}
}

// writePlanTables renders the human-readable plan: one line per energy
// value, then a macro target table and a meal budget table.
func writePlanTables(w io.Writer, plan schema.DailyPlan) error {
	if plan.Energy.BMR == nil {
		if _, err := fmt.Fprintln(w, "Profile is incomplete: no BMR/TDEE available, scoring will be neutral."); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "BMR: %d kcal\nTDEE: %d kcal\n", *plan.Energy.BMR, *plan.Energy.TDEE); err != nil {
			return err
		}
	}

	if plan.Targets != nil {
		if _, err := fmt.Fprintln(w, "\nDaily macro targets (g):"); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Macro", "Min", "Ideal", "Max"})
		rows := [][]string{
			macroRow(schema.ProteinKey, plan.Targets.Protein),
			macroRow(schema.CarbsKey, plan.Targets.Carbs),
			macroRow(schema.FatsKey, plan.Targets.Fats),
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if plan.Budgets != nil {
		if _, err := fmt.Fprintln(w, "\nMeal budgets (kcal):"); err != nil {
			return err
		}
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Slot", "Target", "Min", "Max"})
		var rows [][]string
		for _, slot := range schema.MealSlots {
			b := plan.Budgets[slot]
			rows = append(rows, []string{
				string(slot),
				strconv.Itoa(b.Target),
				strconv.Itoa(b.Min),
				strconv.Itoa(b.Max),
			})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	return nil
}

func macroRow(key schema.MacroKey, r schema.MacroRange) []string {
	return []string{
		string(key),
		strconv.Itoa(r.Min),
		strconv.Itoa(r.Ideal),
		strconv.Itoa(r.Max),
	}
}

// writePlanCSV flattens the plan into record rows: one per energy value,
// macro target and meal budget.
func writePlanCSV(w io.Writer, plan schema.DailyPlan) error {
	header := []string{"kind", "name", "min", "ideal_or_target", "max"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		if plan.Energy.BMR != nil {
			if err := csvWriter.Write([]string{"energy", "bmr", "", strconv.Itoa(*plan.Energy.BMR), ""}); err != nil {
				return err
			}
			if err := csvWriter.Write([]string{"energy", "tdee", "", strconv.Itoa(*plan.Energy.TDEE), ""}); err != nil {
				return err
			}
		}
		if plan.Targets != nil {
			targets := map[schema.MacroKey]schema.MacroRange{
				schema.ProteinKey: plan.Targets.Protein,
				schema.CarbsKey:   plan.Targets.Carbs,
				schema.FatsKey:    plan.Targets.Fats,
			}
			for _, key := range []schema.MacroKey{schema.ProteinKey, schema.CarbsKey, schema.FatsKey} {
				r := targets[key]
				rec := []string{"macro", string(key), strconv.Itoa(r.Min), strconv.Itoa(r.Ideal), strconv.Itoa(r.Max)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		if plan.Budgets != nil {
			for _, slot := range schema.MealSlots {
				b := plan.Budgets[slot]
				rec := []string{"budget", string(slot), strconv.Itoa(b.Min), strconv.Itoa(b.Target), strconv.Itoa(b.Max)}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
