package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/aqi-planner/pkg/validation"
)

// OptimizerConfig holds defaults applied to every optimization request.
type OptimizerConfig struct {
	PriorityFactors map[string]float64 `yaml:"priorityFactors,omitempty" mapstructure:"priorityFactors"`
}

// CanonicalInterventionKey returns the canonical catalog key for a configured name.
func CanonicalInterventionKey(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("-", "_", " ", "_").Replace(trimmed)
}

// Normalize canonicalizes configured intervention keys.
func (o *OptimizerConfig) Normalize() {
	if o == nil || len(o.PriorityFactors) == 0 {
		return
	}
	normalized := make(map[string]float64, len(o.PriorityFactors))
	for key, weight := range o.PriorityFactors {
		normalized[CanonicalInterventionKey(key)] = weight
	}
	o.PriorityFactors = normalized
}

// Validate returns an error when the optimizer configuration is unsupported.
func (o *OptimizerConfig) Validate() error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}
	if err := validation.ValidatePriorityFactors(o.PriorityFactors); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	return nil
}

// MergePriorityFactors layers request factors over the configured defaults.
// The result is a new map; neither input is modified.
func (o *OptimizerConfig) MergePriorityFactors(request map[string]float64) map[string]float64 {
	if len(o.PriorityFactors) == 0 && len(request) == 0 {
		return nil
	}
	merged := make(map[string]float64, len(o.PriorityFactors)+len(request))
	for key, weight := range o.PriorityFactors {
		merged[key] = weight
	}
	for key, weight := range request {
		merged[key] = weight
	}
	return merged
}
