// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/mealpoint/nutriscore/internal/contract"
	"github.com/mealpoint/nutriscore/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteFoods prints ranked scored foods using the configured output format.
func (ow *OutWriter) WriteFoods(results []schema.ScoredFood, cfg *contract.Config, duration time.Duration) error {
	return WriteFoodResults(results, cfg, duration)
}

// WritePlan prints a profile's daily plan using the configured output
// format.
func (ow *OutWriter) WritePlan(plan schema.DailyPlan, cfg *contract.Config) error {
	return WritePlanResults(plan, cfg)
}

// GetMaxTableNameWidth calculates the maximum width for food names in table
// output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 25 // Rank + Score + Label with borders/padding

	if cfg.Detail {
		baseWidth += 40 // Calories + Protein + Carbs + Fat columns with formatting
	}
	if cfg.Explain {
		baseWidth += 30 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to keep the reasons column readable
		return 60
	}
	return available
}
