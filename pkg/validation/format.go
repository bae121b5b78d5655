// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/aqi-planner/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatJSON && format != constants.OutputFormatYAML {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatJSON, constants.OutputFormatYAML, format)
	}
	return nil
}

// ValidateAQI checks that an AQI reading lies within the supported scale.
func ValidateAQI(aqi int) error {
	if aqi < constants.MinAQI || aqi > constants.MaxAQI {
		return fmt.Errorf("aqi %d must be between %d and %d", aqi, constants.MinAQI, constants.MaxAQI)
	}
	return nil
}

// ValidatePriorityFactors rejects negative weights, which would produce negative ratios.
func ValidatePriorityFactors(factors map[string]float64) error {
	for key, weight := range factors {
		if weight < 0 {
			return fmt.Errorf("priority factor for %q must not be negative, got %g", key, weight)
		}
	}
	return nil
}
