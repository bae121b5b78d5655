// Package planner dispatches a validated request to the environmental model or
// the portfolio optimizer and returns the display document for it.
package planner

import (
	"errors"
	"fmt"

	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/internal/config"
	"github.com/iwvelando/aqi-planner/internal/environment"
	"github.com/iwvelando/aqi-planner/internal/optimizer"
	"github.com/iwvelando/aqi-planner/internal/request"
	"github.com/iwvelando/aqi-planner/pkg/output"
	"go.uber.org/zap"
)

// UnknownInterventionMessage is the error payload text for an unrecognised
// intervention type in an effectiveness query.
const UnknownInterventionMessage = "Unknown intervention type"

// Planner executes requests. It is safe for concurrent use.
type Planner struct {
	logger  *zap.Logger
	conf    config.Configuration
	catalog *catalog.Catalog
	runner  *optimizer.Runner
}

// New creates a Planner over cat using conf for optimizer defaults.
func New(logger *zap.Logger, conf config.Configuration, cat *catalog.Catalog) (*Planner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	runner, err := optimizer.NewRunner(logger, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to create optimizer: %w", err)
	}
	return &Planner{logger: logger, conf: conf, catalog: cat, runner: runner}, nil
}

// Execute runs req and returns the value to be written as the result document.
func (p *Planner) Execute(req *request.Request) (interface{}, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", request.ErrMalformedInput)
	}

	p.logger.Debug("executing request",
		zap.String("op", "planner.Execute"),
		zap.String("action", req.Action),
	)

	switch req.Action {
	case request.ActionFullAnalysis:
		return environment.FullAnalysis(req.Reading), nil
	case request.ActionInterventionEffectiveness:
		return p.effectiveness(req)
	case request.ActionOptimize:
		return p.Optimize(req.Budget, req.Reading.AQI, req.PriorityFactors)
	default:
		return nil, fmt.Errorf("%w: action %q is not supported", request.ErrMalformedInput, req.Action)
	}
}

func (p *Planner) effectiveness(req *request.Request) (interface{}, error) {
	result, err := environment.InterventionEffectiveness(req.Reading, req.InterventionType, req.Budget)
	if errors.Is(err, catalog.ErrUnknownInterventionType) {
		p.logger.Warn("unknown intervention type",
			zap.String("op", "planner.effectiveness"),
			zap.String("intervention", req.InterventionType),
		)
		return output.ErrorPayload{Error: UnknownInterventionMessage}, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Optimize layers priority factors over the configured defaults, runs the
// optimizer and formats the resulting portfolio.
func (p *Planner) Optimize(budget int64, currentAQI int, factors map[string]float64) (output.Report, error) {
	weights := p.conf.Optimizer.MergePriorityFactors(factors)
	portfolio, err := p.runner.Optimize(budget, currentAQI, weights)
	if err != nil {
		return output.Report{}, fmt.Errorf("%w: %v", request.ErrMalformedInput, err)
	}
	return output.BuildReport(*portfolio), nil
}

// Catalog returns the definitions the planner optimizes over.
func (p *Planner) Catalog() []catalog.Definition {
	return p.catalog.Definitions()
}
