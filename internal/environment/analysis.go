package environment

// AQIAnalysis is the AQI section of a full analysis.
type AQIAnalysis struct {
	CurrentAQI     int            `json:"current_aqi" yaml:"currentAqi"`
	HealthCategory string         `json:"health_category" yaml:"healthCategory"`
	Concentrations Concentrations `json:"pollutant_concentrations" yaml:"pollutantConcentrations"`
}

// Analysis is the full environmental report for one reading.
type Analysis struct {
	AQI             AQIAnalysis `json:"aqi_analysis" yaml:"aqiAnalysis"`
	Meteorology     Meteorology `json:"meteorological_analysis" yaml:"meteorologicalAnalysis"`
	Sources         []Source    `json:"pollution_sources" yaml:"pollutionSources"`
	Recommendations []string    `json:"recommendations" yaml:"recommendations"`
}

// FullAnalysis combines concentrations, dispersion, source attribution and
// recommendations for r.
func FullAnalysis(r Reading) Analysis {
	return Analysis{
		AQI: AQIAnalysis{
			CurrentAQI:     r.AQI,
			HealthCategory: HealthCategory(r.AQI),
			Concentrations: PollutantConcentrations(r.AQI),
		},
		Meteorology:     MeteorologicalImpact(r),
		Sources:         PrimarySources(r.TrafficDensity, r.IndustrialActivity),
		Recommendations: Recommendations(r),
	}
}
