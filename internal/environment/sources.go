package environment

import (
	"sort"

	"github.com/iwvelando/aqi-planner/pkg/constants"
)

// Source names reported by PrimarySources.
const (
	SourceTraffic      = "Vehicular Traffic"
	SourceIndustrial   = "Industrial Emissions"
	SourceConstruction = "Construction & Dust"
	SourceBiomass      = "Biomass Burning"
)

// Fractions are independent estimates and need not sum to 1.
var (
	trafficContribution = map[string]float64{
		"Very High": 0.45,
		"High":      0.35,
		"Moderate":  0.20,
		"Low":       0.10,
	}
	industrialContribution = map[string]float64{
		"High":     0.40,
		"Moderate": 0.25,
		"Low":      0.10,
	}
)

const (
	defaultTrafficFraction    = 0.20
	defaultIndustrialFraction = 0.10
	constructionFraction      = 0.15
	biomassFraction           = 0.10
	highPriorityFraction      = 0.30
)

// Source is one attributed pollution source.
type Source struct {
	Source              string   `json:"source" yaml:"source"`
	ContributionPercent float64  `json:"contribution_percent" yaml:"contributionPercent"`
	MainPollutants      []string `json:"main_pollutants" yaml:"mainPollutants"`
	Priority            string   `json:"intervention_priority" yaml:"interventionPriority"`
}

// PrimarySources attributes pollution to traffic, industry, construction dust and
// biomass burning. Unrecognized categories fall back to fixed defaults.
func PrimarySources(trafficDensity, industrialActivity string) []Source {
	traffic, ok := trafficContribution[trafficDensity]
	if !ok {
		traffic = defaultTrafficFraction
	}
	industrial, ok := industrialContribution[industrialActivity]
	if !ok {
		industrial = defaultIndustrialFraction
	}

	return []Source{
		{
			Source:              SourceTraffic,
			ContributionPercent: percent(traffic),
			MainPollutants:      []string{"NO2", "PM2.5", "CO"},
			Priority:            variablePriority(traffic),
		},
		{
			Source:              SourceIndustrial,
			ContributionPercent: percent(industrial),
			MainPollutants:      []string{"SO2", "PM10", "NO2"},
			Priority:            variablePriority(industrial),
		},
		{
			Source:              SourceConstruction,
			ContributionPercent: percent(constructionFraction),
			MainPollutants:      []string{"PM10", "PM2.5"},
			Priority:            "Medium",
		},
		{
			Source:              SourceBiomass,
			ContributionPercent: percent(biomassFraction),
			MainPollutants:      []string{"PM2.5", "CO", "VOCs"},
			Priority:            "Low",
		},
	}
}

// Recommendations maps the three largest sources to intervention types and adds
// green walls for AQI above 100.
func Recommendations(r Reading) []string {
	sources := PrimarySources(r.TrafficDensity, r.IndustrialActivity)
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].ContributionPercent > sources[j].ContributionPercent
	})
	if len(sources) > 3 {
		sources = sources[:3]
	}

	recommendations := []string{}
	for _, source := range sources {
		switch source.Source {
		case SourceTraffic:
			recommendations = append(recommendations, TrafficControl)
		case SourceIndustrial:
			recommendations = append(recommendations, AirPurifier)
		case SourceConstruction:
			recommendations = append(recommendations, DustSuppression)
		}
	}
	if r.AQI > 100 {
		recommendations = append(recommendations, GreenWall)
	}
	return recommendations
}

func variablePriority(fraction float64) string {
	if fraction > highPriorityFraction {
		return "High"
	}
	return "Medium"
}

func percent(fraction float64) float64 {
	// Round away the float noise of 0.35*100 and friends.
	return round2(fraction * constants.PercentageMultiplier)
}
