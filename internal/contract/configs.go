package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/mealpoint/nutriscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 200
	DefaultPrecision   = 1
)

// DefaultWorkers is the default number of concurrent workers to use when
// scoring a catalog.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ClassWeightsRaw holds the custom score weights for a single goal class.
// Float pointers distinguish "not set" from an explicit zero.
type ClassWeightsRaw struct {
	Protein *float64 `mapstructure:"protein"`
	Carbs   *float64 `mapstructure:"carbs"`
	Fats    *float64 `mapstructure:"fats"`
}

// WeightsRawInput holds all custom score weight definitions from the YAML
// config file, keyed by goal class.
type WeightsRawInput struct {
	MuscleGain *ClassWeightsRaw `mapstructure:"muscle_gain"`
	WeightLoss *ClassWeightsRaw `mapstructure:"weight_loss"`
	Keto       *ClassWeightsRaw `mapstructure:"keto"`
	Balanced   *ClassWeightsRaw `mapstructure:"balanced"`
}

// Config holds the runtime configuration for a recommendation run.
// This struct is the "final, validated" config.
type Config struct {
	ProfilePath string
	CatalogPath string

	Slot          schema.MealSlot
	ResultLimit   int
	Workers       int
	ToleranceKcal int

	Output     schema.OutputMode
	OutputFile string
	Explain    bool // If true, print per-food macro score breakdown
	Detail     bool // If true, print per-food macro columns
	Precision  int  // Decimal precision for numeric columns (1 or 2)
	UseColors  bool // Enable colored labels in table output
	Width      int  // Terminal width override (0 = auto-detect)

	CatalogBackend   schema.DatabaseBackend
	CatalogDBConnect string // Please use env var as this is plaintext

	// CustomWeights is a mapping of [GoalClass][MacroKey] = Weight,
	// populated from the config file's weights section.
	CustomWeights map[schema.GoalClass]map[schema.MacroKey]float64

	// ComputedWeights is the final weights map for every goal class,
	// computed from defaults plus custom overrides.
	ComputedWeights map[schema.GoalClass]map[schema.MacroKey]float64
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Profile          string `mapstructure:"profile"`
	Catalog          string `mapstructure:"catalog"`
	Slot             string `mapstructure:"slot"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Tolerance        int    `mapstructure:"tolerance"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Explain          bool   `mapstructure:"explain"`
	Detail           bool   `mapstructure:"detail"`
	Precision        int    `mapstructure:"precision"`
	Colors           bool   `mapstructure:"colors"`
	Width            int    `mapstructure:"width"`
	CatalogBackend   string `mapstructure:"catalog-backend"`
	CatalogDBConnect string `mapstructure:"catalog-db-connect"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.GoalClass]map[schema.MacroKey]float64)
		for class, classMap := range c.CustomWeights {
			clone.CustomWeights[class] = make(map[schema.MacroKey]float64)
			maps.Copy(clone.CustomWeights[class], classMap)
		}
	}
	if c.ComputedWeights != nil {
		clone.ComputedWeights = make(map[schema.GoalClass]map[schema.MacroKey]float64)
		for class, classMap := range c.ComputedWeights {
			clone.ComputedWeights[class] = make(map[schema.MacroKey]float64)
			maps.Copy(clone.ComputedWeights[class], classMap)
		}
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs handles the scalar flag inputs.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ProfilePath = input.Profile
	cfg.CatalogPath = input.Catalog

	slot := schema.MealSlot(strings.ToLower(input.Slot))
	if slot == "" {
		slot = schema.Breakfast
	}
	if _, ok := schema.ValidMealSlots[slot]; !ok {
		return fmt.Errorf("invalid meal slot '%s'. must be breakfast, lunch, dinner, snacks", input.Slot)
	}
	cfg.Slot = slot

	if input.Limit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	} else if input.Limit > MaxResultLimit {
		return fmt.Errorf("limit cannot exceed %d foods", MaxResultLimit)
	} else {
		cfg.ResultLimit = input.Limit
	}

	cfg.Workers = input.Workers
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	cfg.ToleranceKcal = input.Tolerance

	output := schema.OutputMode(strings.ToLower(input.Output))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.Explain = input.Explain
	cfg.Detail = input.Detail
	cfg.UseColors = input.Colors
	cfg.Width = input.Width

	precision := input.Precision
	if precision < 1 {
		precision = 1
	}
	if precision > 2 {
		precision = 2
	}
	cfg.Precision = precision

	return nil
}

// validateBackendConfigs validates the catalog backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.CatalogBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid catalog backend '%s'. must be sqlite, mysql, postgresql, none", input.CatalogBackend)
	}
	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = input.CatalogDBConnect
	return ValidateDatabaseConnectionString(backend, cfg.CatalogDBConnect)
}

// weightSumEpsilon bounds the accepted drift of a weight sum from 1.0.
const weightSumEpsilon = 0.001

// processCustomWeights merges weight overrides from the config file on top
// of the per-class defaults and validates that each class still sums to 1.0.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	rawByClass := map[schema.GoalClass]*ClassWeightsRaw{
		schema.MuscleGainClass: input.Weights.MuscleGain,
		schema.WeightLossClass: input.Weights.WeightLoss,
		schema.KetoClass:       input.Weights.Keto,
		schema.BalancedClass:   input.Weights.Balanced,
	}

	cfg.CustomWeights = make(map[schema.GoalClass]map[schema.MacroKey]float64)
	cfg.ComputedWeights = make(map[schema.GoalClass]map[schema.MacroKey]float64)

	for _, class := range schema.AllGoalClasses {
		computed := make(map[schema.MacroKey]float64)
		maps.Copy(computed, schema.GetDefaultWeights(class))

		if raw := rawByClass[class]; raw != nil {
			custom := make(map[schema.MacroKey]float64)
			applyWeight(computed, custom, schema.ProteinKey, raw.Protein)
			applyWeight(computed, custom, schema.CarbsKey, raw.Carbs)
			applyWeight(computed, custom, schema.FatsKey, raw.Fats)
			if len(custom) > 0 {
				cfg.CustomWeights[class] = custom
			}
		}

		var sum float64
		for _, w := range computed {
			sum += w
		}
		if sum < 1.0-weightSumEpsilon || sum > 1.0+weightSumEpsilon {
			return fmt.Errorf("weights for goal class '%s' sum to %.3f, must sum to 1.0", class, sum)
		}

		cfg.ComputedWeights[class] = computed
	}

	return nil
}

// applyWeight overlays one optional override onto the computed map and
// records it in the custom map when present.
func applyWeight(computed, custom map[schema.MacroKey]float64, key schema.MacroKey, value *float64) {
	if value == nil {
		return
	}
	computed[key] = *value
	custom[key] = *value
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
