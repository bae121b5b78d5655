// Package catalog holds the static reference table of mitigation interventions.
//
// A Catalog is immutable once constructed, so a single instance may be shared by
// any number of scorers and optimizer runs without synchronization.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/aqi-planner/pkg/constants"
)

// ErrUnknownInterventionType is returned when a lookup names a type that is not
// present in the catalog.
var ErrUnknownInterventionType = errors.New("unknown intervention type")

// Intervention type keys of the default catalog.
const (
	GreenWall         = "green_wall"
	AirPurifier       = "air_purifier"
	TrafficManagement = "traffic_management"
	UrbanForest       = "urban_forest"
	DustSuppression   = "dust_suppression"
)

// Definition describes one intervention type.
type Definition struct {
	Key                 string  `json:"key" yaml:"key"`
	Name                string  `json:"name" yaml:"name"`
	Description         string  `json:"description" yaml:"description"`
	CostPerUnit         int64   `json:"cost_per_unit" yaml:"costPerUnit"`
	ImprovementPerUnit  float64 `json:"aqi_improvement_per_unit" yaml:"aqiImprovementPerUnit"`
	MinUnits            int     `json:"min_units" yaml:"minUnits"`
	MaxUnits            int     `json:"max_units" yaml:"maxUnits"`
	ImplementationWeeks int     `json:"implementation_weeks" yaml:"implementationWeeks"`
	Feasibility         float64 `json:"feasibility" yaml:"feasibility"`
	ScalesWell          bool    `json:"scales_well" yaml:"scalesWell"`
}

// Validate checks the invariants every catalog entry must satisfy.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Key) == "" {
		return fmt.Errorf("intervention key cannot be empty")
	}
	if d.CostPerUnit <= 0 {
		return fmt.Errorf("intervention %s: cost per unit must be positive, got %d", d.Key, d.CostPerUnit)
	}
	if d.ImprovementPerUnit <= 0 {
		return fmt.Errorf("intervention %s: improvement per unit must be positive, got %g", d.Key, d.ImprovementPerUnit)
	}
	if d.MinUnits < 1 {
		return fmt.Errorf("intervention %s: minimum units must be at least 1, got %d", d.Key, d.MinUnits)
	}
	if d.MaxUnits < d.MinUnits {
		return fmt.Errorf("intervention %s: maximum units %d must not be less than minimum %d", d.Key, d.MaxUnits, d.MinUnits)
	}
	if d.Feasibility < 0 || d.Feasibility > constants.FeasibilityScale {
		return fmt.Errorf("intervention %s: feasibility %g must be between 0 and %g", d.Key, d.Feasibility, constants.FeasibilityScale)
	}
	return nil
}

// Catalog is an ordered, read-only set of intervention definitions.
type Catalog struct {
	definitions []Definition
	index       map[string]int
}

// New builds a catalog from the given definitions, preserving their order.
func New(definitions []Definition) (*Catalog, error) {
	c := &Catalog{
		definitions: make([]Definition, 0, len(definitions)),
		index:       make(map[string]int, len(definitions)),
	}
	for _, def := range definitions {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.index[def.Key]; exists {
			return nil, fmt.Errorf("duplicate intervention key %q", def.Key)
		}
		c.index[def.Key] = len(c.definitions)
		c.definitions = append(c.definitions, def)
	}
	return c, nil
}

// Lookup returns the definition for key, or ErrUnknownInterventionType.
func (c *Catalog) Lookup(key string) (Definition, error) {
	i, ok := c.index[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownInterventionType, key)
	}
	return c.definitions[i], nil
}

// Contains reports whether key names a catalog entry.
func (c *Catalog) Contains(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Definitions returns a copy of all definitions in insertion order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Keys returns the intervention keys in insertion order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.definitions))
	for i, def := range c.definitions {
		keys[i] = def.Key
	}
	return keys
}

var defaultCatalog = mustNew(defaultDefinitions)

// Default returns the process-wide reference catalog.
func Default() *Catalog {
	return defaultCatalog
}

func mustNew(definitions []Definition) *Catalog {
	c, err := New(definitions)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

var defaultDefinitions = []Definition{
	{
		Key:                 GreenWall,
		Name:                "Smart Green Wall Installation",
		Description:         "Vertical gardens with IoT-monitored plants that absorb PM2.5, NOx, and CO2",
		CostPerUnit:         200000,
		ImprovementPerUnit:  25,
		MinUnits:            1,
		MaxUnits:            5,
		ImplementationWeeks: 6,
		Feasibility:         9.2,
		ScalesWell:          true,
	},
	{
		Key:                 AirPurifier,
		Name:                "AI-Powered Air Purification Towers",
		Description:         "HEPA and activated carbon filters with optimized operation scheduling",
		CostPerUnit:         400000,
		ImprovementPerUnit:  40,
		MinUnits:            1,
		MaxUnits:            3,
		ImplementationWeeks: 8,
		Feasibility:         8.8,
		ScalesWell:          true,
	},
	{
		Key:                 TrafficManagement,
		Name:                "Intelligent Traffic Management System",
		Description:         "Adaptive traffic flow optimization to reduce vehicular emissions",
		CostPerUnit:         800000,
		ImprovementPerUnit:  30,
		MinUnits:            1,
		MaxUnits:            2,
		ImplementationWeeks: 12,
		Feasibility:         7.5,
		ScalesWell:          false,
	},
	{
		Key:                 UrbanForest,
		Name:                "Urban Forest Micro-Parks",
		Description:         "Dense plantation of native trees selected for pollution absorption",
		CostPerUnit:         500000,
		ImprovementPerUnit:  35,
		MinUnits:            1,
		MaxUnits:            3,
		ImplementationWeeks: 10,
		Feasibility:         8.5,
		ScalesWell:          true,
	},
	{
		Key:                 DustSuppression,
		Name:                "Smart Dust Suppression Network",
		Description:         "IoT water misting systems with predictive activation",
		CostPerUnit:         250000,
		ImprovementPerUnit:  20,
		MinUnits:            1,
		MaxUnits:            4,
		ImplementationWeeks: 4,
		Feasibility:         9.0,
		ScalesWell:          true,
	},
}
