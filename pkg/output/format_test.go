package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iwvelando/aqi-planner/internal/catalog"
	"github.com/iwvelando/aqi-planner/pkg/optimization"
	"gopkg.in/yaml.v3"
)

func candidate(t *testing.T, key string, units int, ratio float64) optimization.Candidate {
	t.Helper()
	def, err := catalog.Default().Lookup(key)
	if err != nil {
		t.Fatalf("lookup %s: %v", key, err)
	}
	return optimization.Candidate{
		Key:         key,
		Units:       units,
		Cost:        def.CostPerUnit * int64(units),
		Improvement: def.ImprovementPerUnit * float64(units),
		Ratio:       ratio,
		Definition:  def,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestBuildReportMillionBudget(t *testing.T) {
	portfolio := optimization.Portfolio{
		Budget:     1000000,
		CurrentAQI: 150,
		Selected: []optimization.Candidate{
			candidate(t, catalog.GreenWall, 1, 0.000115),
			candidate(t, catalog.AirPurifier, 1, 0.000088),
			candidate(t, catalog.DustSuppression, 1, 0.000072),
		},
	}

	report := BuildReport(portfolio)

	wantSummary := Summary{
		TotalBudget:              1000000,
		AllocatedBudget:          850000,
		RemainingBudget:          150000,
		BudgetUtilizationPercent: 85,
		CurrentAQI:               150,
		ProjectedAQI:             65,
		TotalImprovement:         85,
		ImprovementPercent:       56.7,
		ROIAnalysis:              "₹10,000 per AQI point",
	}
	if diff := cmp.Diff(wantSummary, report.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	wantFirst := Intervention{
		Type:                catalog.GreenWall,
		Title:               "Smart Green Wall Installation",
		Description:         "Vertical gardens with IoT-monitored plants that absorb PM2.5, NOx, and CO2",
		Priority:            "High",
		EstimatedCost:       "₹200,000",
		ExpectedImprovement: "25 points",
		ImplementationTime:  "6 weeks",
		FeasibilityScore:    "9.2/10",
		BudgetScaling:       strPtr("With ₹800,000 more, deploy 4 additional unit(s) for 100 more AQI points reduction"),
		UnitsDeployed:       1,
	}
	if diff := cmp.Diff(wantFirst, report.Interventions[0]); diff != "" {
		t.Fatalf("first intervention mismatch (-want +got):\n%s", diff)
	}
	if report.Interventions[1].Priority != "Medium" || report.Interventions[2].Priority != "Medium" {
		t.Fatalf("expected Medium priorities, got %q and %q", report.Interventions[1].Priority, report.Interventions[2].Priority)
	}
	if report.Interventions[2].FeasibilityScore != "9.0/10" {
		t.Fatalf("expected feasibility 9.0/10, got %q", report.Interventions[2].FeasibilityScore)
	}
}

func TestBuildReportMultiUnitCostRange(t *testing.T) {
	portfolio := optimization.Portfolio{
		Budget:     2000000,
		CurrentAQI: 90,
		Selected:   []optimization.Candidate{candidate(t, catalog.UrbanForest, 3, 0.00006)},
	}

	got := BuildReport(portfolio).Interventions[0]
	if got.EstimatedCost != "₹500,000 - ₹1,500,000" {
		t.Errorf("unexpected cost display %q", got.EstimatedCost)
	}
	if got.BudgetScaling != nil {
		t.Errorf("expected no scaling suggestion at max units, got %q", *got.BudgetScaling)
	}
	if got.ExpectedImprovement != "105 points" {
		t.Errorf("unexpected improvement display %q", got.ExpectedImprovement)
	}
}

func TestBuildReportProjectedAQIFloorsAtZero(t *testing.T) {
	portfolio := optimization.Portfolio{
		Budget:     1000000,
		CurrentAQI: 30,
		Selected:   []optimization.Candidate{candidate(t, catalog.AirPurifier, 1, 0.000088)},
	}

	summary := BuildReport(portfolio).Summary
	if summary.ProjectedAQI != 0 {
		t.Fatalf("expected projected AQI 0, got %d", summary.ProjectedAQI)
	}
	if summary.ImprovementPercent != 133.3 {
		t.Fatalf("expected improvement percent 133.3, got %v", summary.ImprovementPercent)
	}
}

func TestBuildReportNonScalingHasNoSuggestion(t *testing.T) {
	portfolio := optimization.Portfolio{
		Budget:     1000000,
		CurrentAQI: 120,
		Selected:   []optimization.Candidate{candidate(t, catalog.TrafficManagement, 1, 0.000028)},
	}

	got := BuildReport(portfolio).Interventions[0]
	if got.BudgetScaling != nil {
		t.Fatalf("expected no scaling suggestion, got %q", *got.BudgetScaling)
	}
	if got.Priority != "Low" {
		t.Fatalf("expected Low priority, got %q", got.Priority)
	}
}

func TestBuildReportEmptyPortfolio(t *testing.T) {
	report := BuildReport(optimization.Portfolio{Budget: 100000, CurrentAQI: 150})

	if report.Interventions == nil || len(report.Interventions) != 0 {
		t.Fatalf("expected empty non-nil interventions, got %v", report.Interventions)
	}
	want := Summary{
		TotalBudget:     100000,
		RemainingBudget: 100000,
		CurrentAQI:      150,
		ProjectedAQI:    150,
		ROIAnalysis:     "₹0 per AQI point",
	}
	if diff := cmp.Diff(want, report.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReportZeroDenominators(t *testing.T) {
	summary := BuildReport(optimization.Portfolio{Budget: 0, CurrentAQI: 0}).Summary
	if summary.BudgetUtilizationPercent != 0 || summary.ImprovementPercent != 0 {
		t.Fatalf("expected zero percentages, got %+v", summary)
	}
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0.0002, "High"},
		{0.0001, "Medium"},
		{0.00007, "Medium"},
		{0.00005, "Low"},
		{0, "Low"},
	}

	for _, tt := range tests {
		if got := PriorityLabel(tt.ratio); got != tt.expected {
			t.Errorf("PriorityLabel(%v) = %q, expected %q", tt.ratio, got, tt.expected)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	report := BuildReport(optimization.Portfolio{Budget: 100000, CurrentAQI: 150})
	if err := Write(&buf, report, "json", 2); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n  \"interventions\": []") {
		t.Fatalf("expected two-space indented empty interventions, got:\n%s", out)
	}
	if !strings.Contains(out, "₹0 per AQI point") {
		t.Fatalf("expected unescaped rupee sign, got:\n%s", out)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestWriteJSONKeepsAmpersand(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]string{"source": "Construction & Dust"}, "json", 2); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Construction & Dust") {
		t.Fatalf("expected literal ampersand, got %s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, ErrorPayload{Error: "Unknown intervention type"}, "yaml", 2); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["error"] != "Unknown intervention type" {
		t.Fatalf("unexpected YAML content: %v", decoded)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil, "csv", 2); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
