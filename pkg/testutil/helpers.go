// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/aqi-planner/internal/environment"
	"github.com/iwvelando/aqi-planner/pkg/output"
)

// FindIntervention finds an intervention by type in a report.
// Returns a pointer to the entry if found, nil otherwise.
func FindIntervention(report output.Report, interventionType string) *output.Intervention {
	for i := range report.Interventions {
		if report.Interventions[i].Type == interventionType {
			return &report.Interventions[i]
		}
	}
	return nil
}

// InterventionTypes returns the selected types of a report in output order.
func InterventionTypes(report output.Report) []string {
	types := make([]string, 0, len(report.Interventions))
	for _, entry := range report.Interventions {
		types = append(types, entry.Type)
	}
	return types
}

// Reading returns a fully populated reading with neutral weather for aqi.
func Reading(aqi int) environment.Reading {
	return environment.Reading{
		AQI:                aqi,
		Temperature:        25,
		Humidity:           50,
		WindSpeed:          20,
		Pressure:           1013,
		AreaType:           "Urban",
		TrafficDensity:     "High",
		IndustrialActivity: "Moderate",
	}
}
