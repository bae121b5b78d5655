// Package request parses and validates the JSON input document that selects an
// action and carries its parameters.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwvelando/aqi-planner/internal/environment"
	"github.com/iwvelando/aqi-planner/pkg/validation"
)

// ErrMalformedInput is returned when the document is unparseable or misses
// required fields.
var ErrMalformedInput = errors.New("malformed input")

// Supported actions.
const (
	ActionFullAnalysis              = "full_analysis"
	ActionInterventionEffectiveness = "intervention_effectiveness"
	ActionOptimize                  = "optimize"
)

// CanonicalAction returns the canonical identifier for an action selector.
// An empty selector means a full analysis.
func CanonicalAction(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ActionFullAnalysis
	}
	switch strings.ToLower(strings.ReplaceAll(trimmed, "-", "_")) {
	case "full_analysis", "analysis", "analyze", "analyse":
		return ActionFullAnalysis
	case "intervention_effectiveness", "effectiveness":
		return ActionInterventionEffectiveness
	case "optimize", "optimise", "portfolio", "optimize_portfolio", "optimise_portfolio":
		return ActionOptimize
	default:
		return strings.ToLower(trimmed)
	}
}

// Request is a validated input document.
type Request struct {
	Action           string
	Reading          environment.Reading
	InterventionType string
	Budget           int64
	PriorityFactors  map[string]float64
}

type document struct {
	Action             *string            `json:"action"`
	AQI                *int               `json:"aqi"`
	CurrentAQI         *int               `json:"current_aqi"`
	Temperature        *float64           `json:"temperature"`
	Humidity           *float64           `json:"humidity"`
	WindSpeed          *float64           `json:"wind_speed"`
	Pressure           *float64           `json:"pressure"`
	AreaType           *string            `json:"area_type"`
	TrafficDensity     *string            `json:"traffic_density"`
	IndustrialActivity *string            `json:"industrial_activity"`
	InterventionType   *string            `json:"intervention_type"`
	Budget             *int64             `json:"budget"`
	PriorityFactors    map[string]float64 `json:"priority_factors"`
	PriorityWeights    map[string]float64 `json:"priority_weights"`
}

// Read loads the raw document from the first argument when present, otherwise from in.
func Read(args []string, in io.Reader) ([]byte, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" && args[0] != "-" {
		return []byte(args[0]), nil
	}
	if in == nil {
		return nil, fmt.Errorf("%w: no input document supplied", ErrMalformedInput)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// Parse decodes and validates data. A non-empty forcedAction overrides the
// document's own action selector.
func Parse(data []byte, forcedAction string) (*Request, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input document", ErrMalformedInput)
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	action := forcedAction
	if action == "" && doc.Action != nil {
		action = *doc.Action
	}
	req := &Request{Action: CanonicalAction(action)}

	var err error
	switch req.Action {
	case ActionFullAnalysis:
		err = req.fillReading(doc, nil)
	case ActionInterventionEffectiveness:
		err = req.fillReading(doc, func(missing map[string]bool) {
			if doc.InterventionType == nil {
				missing["intervention_type"] = true
			}
			if doc.Budget == nil {
				missing["budget"] = true
			}
		})
		if err == nil {
			req.InterventionType = strings.TrimSpace(*doc.InterventionType)
			req.Budget = *doc.Budget
		}
	case ActionOptimize:
		err = req.fillOptimize(doc)
	default:
		return nil, fmt.Errorf("%w: action %q is not supported", ErrMalformedInput, req.Action)
	}
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (req *Request) fillReading(doc document, extra func(map[string]bool)) error {
	missing := make(map[string]bool)
	aqi := doc.AQI
	if aqi == nil {
		aqi = doc.CurrentAQI
	}
	if aqi == nil {
		missing["aqi"] = true
	}
	if doc.Temperature == nil {
		missing["temperature"] = true
	}
	if doc.Humidity == nil {
		missing["humidity"] = true
	}
	if doc.WindSpeed == nil {
		missing["wind_speed"] = true
	}
	if doc.Pressure == nil {
		missing["pressure"] = true
	}
	if doc.AreaType == nil {
		missing["area_type"] = true
	}
	if doc.TrafficDensity == nil {
		missing["traffic_density"] = true
	}
	if doc.IndustrialActivity == nil {
		missing["industrial_activity"] = true
	}
	if extra != nil {
		extra(missing)
	}
	if err := missingFields(missing); err != nil {
		return err
	}

	req.Reading = environment.Reading{
		AQI:                *aqi,
		Temperature:        *doc.Temperature,
		Humidity:           *doc.Humidity,
		WindSpeed:          *doc.WindSpeed,
		Pressure:           *doc.Pressure,
		AreaType:           *doc.AreaType,
		TrafficDensity:     *doc.TrafficDensity,
		IndustrialActivity: *doc.IndustrialActivity,
	}
	return nil
}

func (req *Request) fillOptimize(doc document) error {
	missing := make(map[string]bool)
	aqi := doc.AQI
	if aqi == nil {
		aqi = doc.CurrentAQI
	}
	if aqi == nil {
		missing["aqi"] = true
	}
	if doc.Budget == nil {
		missing["budget"] = true
	}
	if err := missingFields(missing); err != nil {
		return err
	}

	req.Reading.AQI = *aqi
	req.Budget = *doc.Budget

	factors := doc.PriorityFactors
	if factors == nil {
		factors = doc.PriorityWeights
	}
	if len(factors) > 0 {
		req.PriorityFactors = make(map[string]float64, len(factors))
		for key, weight := range factors {
			req.PriorityFactors[strings.TrimSpace(key)] = weight
		}
	}
	return nil
}

// Validate checks value ranges once required fields are present.
func (req *Request) Validate() error {
	if err := validation.ValidateAQI(req.Reading.AQI); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if req.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative, got %d", ErrMalformedInput, req.Budget)
	}
	if req.Action == ActionInterventionEffectiveness && req.InterventionType == "" {
		return fmt.Errorf("%w: intervention_type cannot be empty", ErrMalformedInput)
	}
	if err := validation.ValidatePriorityFactors(req.PriorityFactors); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return nil
}

func missingFields(missing map[string]bool) error {
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("%w: missing required field(s): %s", ErrMalformedInput, strings.Join(names, ", "))
}
