// Package output turns optimizer and analysis results into display-ready documents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/iwvelando/aqi-planner/pkg/constants"
	"github.com/iwvelando/aqi-planner/pkg/format"
	"github.com/iwvelando/aqi-planner/pkg/mathutil"
	"github.com/iwvelando/aqi-planner/pkg/optimization"
	"gopkg.in/yaml.v3"
)

// Report is the display form of an optimized intervention portfolio.
type Report struct {
	Interventions []Intervention `json:"interventions" yaml:"interventions"`
	Summary       Summary        `json:"optimization_summary" yaml:"optimization_summary"`
}

// Intervention is one selected portfolio entry.
type Intervention struct {
	Type                string  `json:"type" yaml:"type"`
	Title               string  `json:"title" yaml:"title"`
	Description         string  `json:"description" yaml:"description"`
	Priority            string  `json:"priority" yaml:"priority"`
	EstimatedCost       string  `json:"estimated_cost" yaml:"estimated_cost"`
	ExpectedImprovement string  `json:"expected_aqi_improvement" yaml:"expected_aqi_improvement"`
	ImplementationTime  string  `json:"implementation_time" yaml:"implementation_time"`
	FeasibilityScore    string  `json:"feasibility_score" yaml:"feasibility_score"`
	BudgetScaling       *string `json:"budget_scaling" yaml:"budget_scaling"`
	UnitsDeployed       int     `json:"units_deployed" yaml:"units_deployed"`
}

// Summary aggregates the whole portfolio.
type Summary struct {
	TotalBudget              int64   `json:"total_budget" yaml:"total_budget"`
	AllocatedBudget          int64   `json:"allocated_budget" yaml:"allocated_budget"`
	RemainingBudget          int64   `json:"remaining_budget" yaml:"remaining_budget"`
	BudgetUtilizationPercent float64 `json:"budget_utilization_percent" yaml:"budget_utilization_percent"`
	CurrentAQI               int     `json:"current_aqi" yaml:"current_aqi"`
	ProjectedAQI             int     `json:"projected_aqi" yaml:"projected_aqi"`
	TotalImprovement         int     `json:"total_improvement" yaml:"total_improvement"`
	ImprovementPercent       float64 `json:"improvement_percent" yaml:"improvement_percent"`
	ROIAnalysis              string  `json:"roi_analysis" yaml:"roi_analysis"`
}

// ErrorPayload is written in place of a result for recoverable single-query failures.
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}

// BuildReport formats a portfolio. All rounding and currency rendering happens here.
func BuildReport(p optimization.Portfolio) Report {
	interventions := make([]Intervention, 0, len(p.Selected))
	for _, c := range p.Selected {
		interventions = append(interventions, formatCandidate(c))
	}

	var allocated int64
	var improvement float64
	for _, c := range p.Selected {
		allocated += c.Cost
		improvement += c.Improvement
	}
	projected := mathutil.Max(0, float64(p.CurrentAQI)-improvement)

	roi := int64(math.Floor(mathutil.SafeDivide(float64(allocated), improvement)))

	return Report{
		Interventions: interventions,
		Summary: Summary{
			TotalBudget:              p.Budget,
			AllocatedBudget:          allocated,
			RemainingBudget:          p.Budget - allocated,
			BudgetUtilizationPercent: mathutil.RoundPercent(mathutil.CalculatePercentage(float64(allocated), float64(p.Budget))),
			CurrentAQI:               p.CurrentAQI,
			ProjectedAQI:             int(math.Round(projected)),
			TotalImprovement:         points(improvement),
			ImprovementPercent:       mathutil.RoundPercent(mathutil.CalculatePercentage(improvement, float64(p.CurrentAQI))),
			ROIAnalysis:              fmt.Sprintf("%s per AQI point", format.Currency(roi)),
		},
	}
}

func formatCandidate(c optimization.Candidate) Intervention {
	def := c.Definition

	cost := format.Currency(c.Cost)
	if c.Units > 1 {
		cost = format.CurrencyRange(c.Cost/int64(c.Units), c.Cost)
	}

	var scaling *string
	if def.ScalesWell && c.Units < def.MaxUnits {
		additional := def.MaxUnits - c.Units
		note := fmt.Sprintf("With %s more, deploy %d additional unit(s) for %d more AQI points reduction",
			format.Currency(int64(additional)*def.CostPerUnit),
			additional,
			points(float64(additional)*def.ImprovementPerUnit),
		)
		scaling = &note
	}

	return Intervention{
		Type:                c.Key,
		Title:               def.Name,
		Description:         def.Description,
		Priority:            PriorityLabel(c.Ratio),
		EstimatedCost:       cost,
		ExpectedImprovement: fmt.Sprintf("%d points", points(c.Improvement)),
		ImplementationTime:  fmt.Sprintf("%d weeks", def.ImplementationWeeks),
		FeasibilityScore:    fmt.Sprintf("%.1f/%g", def.Feasibility, constants.FeasibilityScale),
		BudgetScaling:       scaling,
		UnitsDeployed:       c.Units,
	}
}

// PriorityLabel maps an effectiveness ratio onto High, Medium or Low.
func PriorityLabel(ratio float64) string {
	switch {
	case ratio > constants.HighPriorityRatio:
		return "High"
	case ratio > constants.MediumPriorityRatio:
		return "Medium"
	default:
		return "Low"
	}
}

func points(v float64) int {
	return int(math.Round(v))
}

// Write renders v to w in the requested format with the given indent width.
func Write(w io.Writer, v interface{}, outputFormat string, indent int) error {
	if indent <= 0 {
		indent = constants.DefaultIndent
	}

	switch outputFormat {
	case constants.OutputFormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		return enc.Encode(v)
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}
