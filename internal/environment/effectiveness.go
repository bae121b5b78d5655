package environment

import (
	"fmt"

	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/pkg/mathutil"
)

// Intervention types understood by InterventionEffectiveness.
const (
	GreenWall       = "green_wall"
	AirPurifier     = "air_purifier"
	TrafficControl  = "traffic_control"
	DustSuppression = "dust_suppression"
)

type costBasis int

const (
	perSquareMetre costBasis = iota
	perUnit
	perBase
)

type effectivenessModel struct {
	basis             costBasis
	cost              float64
	coverageSqm       float64
	improvementFactor float64
}

var effectivenessModels = map[string]effectivenessModel{
	GreenWall:       {basis: perSquareMetre, cost: 1200, coverageSqm: 100, improvementFactor: 0.20},
	AirPurifier:     {basis: perUnit, cost: 250000, coverageSqm: 500, improvementFactor: 0.35},
	TrafficControl:  {basis: perBase, cost: 500000, coverageSqm: 5000, improvementFactor: 0.18},
	DustSuppression: {basis: perSquareMetre, cost: 150, coverageSqm: 1000, improvementFactor: 0.15},
}

// Effectiveness is the weather-adjusted estimate for spending a budget on one
// intervention type.
type Effectiveness struct {
	InterventionType   string  `json:"intervention_type" yaml:"interventionType"`
	EstimatedUnits     float64 `json:"estimated_units" yaml:"estimatedUnits"`
	CoverageAreaSqm    float64 `json:"coverage_area_sqm" yaml:"coverageAreaSqm"`
	BaseImprovement    float64 `json:"base_aqi_improvement" yaml:"baseAqiImprovement"`
	WeatherAdjusted    float64 `json:"weather_adjusted_improvement" yaml:"weatherAdjustedImprovement"`
	Feasibility        string  `json:"implementation_feasibility" yaml:"implementationFeasibility"`
	ConfidenceInterval string  `json:"effectiveness_confidence" yaml:"effectivenessConfidence"`
}

// InterventionEffectiveness estimates the AQI improvement of spending budget on
// interventionType under the weather in r.
func InterventionEffectiveness(r Reading, interventionType string, budget int64) (Effectiveness, error) {
	model, ok := effectivenessModels[interventionType]
	if !ok {
		return Effectiveness{}, fmt.Errorf("%w: %q", catalog.ErrUnknownInterventionType, interventionType)
	}

	units := float64(budget) / model.cost
	coverage := units
	if model.basis != perSquareMetre {
		coverage = units * model.coverageSqm
	}

	base := float64(r.AQI) * model.improvementFactor
	met := MeteorologicalImpact(r)
	adjusted := base * met.OverallDispersion

	feasibility := "Moderate"
	if met.Favorable {
		feasibility = "High"
	}
	confidence := "60-75%"
	if met.OverallDispersion > favorableThreshold {
		confidence = "80-90%"
	}

	return Effectiveness{
		InterventionType:   interventionType,
		EstimatedUnits:     mathutil.RoundTo(units, 1),
		CoverageAreaSqm:    mathutil.RoundTo(coverage, 0),
		BaseImprovement:    mathutil.RoundTo(base, 1),
		WeatherAdjusted:    mathutil.RoundTo(adjusted, 1),
		Feasibility:        feasibility,
		ConfidenceInterval: confidence,
	}, nil
}
