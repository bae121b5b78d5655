// Package constants provides shared constants for the aqi-planner application.
package constants

// AQI bounds accepted on input.
const (
	// MinAQI is the lowest valid air quality index reading
	MinAQI = 0

	// MaxAQI is the highest valid air quality index reading
	MaxAQI = 500
)

// Scoring constants
const (
	// FeasibilityScale is the upper bound of the feasibility score
	FeasibilityScale = 10.0

	// DefaultPriorityWeight is applied when no weight is supplied for an intervention
	DefaultPriorityWeight = 1.0

	// NonScalingPenalty discourages deploying more than one unit of a non-scaling intervention
	NonScalingPenalty = 0.7

	// HighPriorityRatio is the ratio above which a selected option is labelled High
	HighPriorityRatio = 0.0001

	// MediumPriorityRatio is the ratio above which a selected option is labelled Medium
	MediumPriorityRatio = 0.00005
)

// Display constants
const (
	// CurrencySymbol prefixes every rendered monetary amount
	CurrencySymbol = "₹"

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// PercentDecimals is the number of decimals kept for percentages
	PercentDecimals = 1

	// ConcentrationDecimals is the number of decimals kept for pollutant concentrations
	ConcentrationDecimals = 2
)

// Output format constants
const (
	// OutputFormatJSON is the default machine-readable output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the alternative YAML output format
	OutputFormatYAML = "yaml"

	// DefaultIndent is the indentation width of rendered documents
	DefaultIndent = 2
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "aqi-planner.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "AQI_PLANNER"
)
