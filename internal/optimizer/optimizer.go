// Package optimizer selects a budget-respecting portfolio of air-quality
// interventions by greedy ranking of effectiveness ratios.
package optimizer

import (
	"fmt"
	"sort"

	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/pkg/optimization"
	"github.com/iwvelando/aqi-planner/pkg/validation"
	"go.uber.org/zap"
)

// Runner executes portfolio optimizations against a catalog. A Runner holds no
// per-run state and may be used from multiple goroutines.
type Runner struct {
	logger  *zap.Logger
	catalog *catalog.Catalog
}

// NewRunner constructs a Runner for the provided catalog.
func NewRunner(logger *zap.Logger, cat *catalog.Catalog) (*Runner, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, catalog: cat}, nil
}

// Optimize enumerates every affordable (type, units) option, ranks them by
// effectiveness ratio and greedily accepts at most one option per type while the
// remaining budget allows. Skipped options are never revisited.
func (r *Runner) Optimize(budget int64, currentAQI int, weights map[string]float64) (*optimization.Portfolio, error) {
	if budget < 0 {
		return nil, fmt.Errorf("budget must not be negative, got %d", budget)
	}
	if err := validation.ValidatePriorityFactors(weights); err != nil {
		return nil, err
	}
	for key := range weights {
		if !r.catalog.Contains(key) {
			r.logger.Warn("ignoring priority factor for unknown intervention",
				zap.String("op", "optimizer.Optimize"),
				zap.String("intervention", key),
				zap.Strings("known", r.catalog.Keys()),
			)
		}
	}

	scorer := NewScorer(r.catalog, weights)
	options := r.enumerate(budget, scorer)
	rank(options)
	portfolio := r.selectGreedy(options, budget)
	portfolio.CurrentAQI = currentAQI

	r.logger.Info("optimizer selected portfolio",
		zap.String("op", "optimizer.Optimize"),
		zap.Int64("budget", budget),
		zap.Int("considered", portfolio.Considered),
		zap.Int("selected", len(portfolio.Selected)),
		zap.Int64("allocated", portfolio.Allocated),
		zap.Float64("improvement", portfolio.TotalImprovement),
	)

	return portfolio, nil
}

// enumerate lists every (type, units) pair whose total cost fits the full budget.
func (r *Runner) enumerate(budget int64, scorer *Scorer) []optimization.Candidate {
	var options []optimization.Candidate
	for _, def := range r.catalog.Definitions() {
		for units := def.MinUnits; units <= def.MaxUnits; units++ {
			cost := def.CostPerUnit * int64(units)
			if cost > budget {
				continue
			}
			options = append(options, optimization.Candidate{
				Key:         def.Key,
				Units:       units,
				Cost:        cost,
				Improvement: def.ImprovementPerUnit * float64(units),
				Ratio:       scorer.score(def, units),
				Index:       len(options),
				Definition:  def,
			})
		}
	}
	return options
}

// rank orders options by ratio descending. Equal ratios keep enumeration order,
// which is catalog insertion order and then ascending unit count.
func rank(options []optimization.Candidate) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Ratio != options[j].Ratio {
			return options[i].Ratio > options[j].Ratio
		}
		return options[i].Index < options[j].Index
	})
}

func (r *Runner) selectGreedy(options []optimization.Candidate, budget int64) *optimization.Portfolio {
	portfolio := &optimization.Portfolio{
		Budget:     budget,
		Selected:   []optimization.Candidate{},
		Remaining:  budget,
		Considered: len(options),
	}
	used := make(map[string]bool)

	for _, option := range options {
		if used[option.Key] {
			continue
		}
		if option.Cost > portfolio.Remaining {
			r.logger.Debug("skipping unaffordable option",
				zap.String("intervention", option.Key),
				zap.Int("units", option.Units),
				zap.Int64("cost", option.Cost),
				zap.Int64("remaining", portfolio.Remaining),
			)
			continue
		}

		portfolio.Selected = append(portfolio.Selected, option)
		portfolio.Remaining -= option.Cost
		portfolio.Allocated += option.Cost
		portfolio.TotalImprovement += option.Improvement
		used[option.Key] = true

		r.logger.Debug("accepted option",
			zap.String("intervention", option.Key),
			zap.Int("units", option.Units),
			zap.Int64("cost", option.Cost),
			zap.Float64("ratio", option.Ratio),
			zap.Int64("remaining", portfolio.Remaining),
		)
	}

	return portfolio
}
