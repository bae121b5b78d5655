package optimizer

import (
	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/pkg/constants"
)

// Scorer computes effectiveness ratios for catalog interventions.
type Scorer struct {
	catalog *catalog.Catalog
	weights map[string]float64
}

// NewScorer returns a Scorer over cat. Weights are optional per-type multipliers;
// types without a weight use 1.0.
func NewScorer(cat *catalog.Catalog, weights map[string]float64) *Scorer {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Scorer{catalog: cat, weights: weights}
}

// Score returns the improvement-to-cost ratio of deploying units of key, adjusted
// for feasibility, priority weight and the non-scaling penalty.
func (s *Scorer) Score(key string, units int) (float64, error) {
	def, err := s.catalog.Lookup(key)
	if err != nil {
		return 0, err
	}
	return s.score(def, units), nil
}

func (s *Scorer) score(def catalog.Definition, units int) float64 {
	totalCost := float64(def.CostPerUnit) * float64(units)
	totalImprovement := def.ImprovementPerUnit * float64(units)
	if totalCost <= 0 || totalImprovement <= 0 {
		return 0
	}

	ratio := totalImprovement / totalCost
	ratio *= def.Feasibility / constants.FeasibilityScale
	ratio *= s.weight(def.Key)
	if !def.ScalesWell && units > 1 {
		ratio *= constants.NonScalingPenalty
	}
	return ratio
}

func (s *Scorer) weight(key string) float64 {
	if w, ok := s.weights[key]; ok {
		return w
	}
	return constants.DefaultPriorityWeight
}
