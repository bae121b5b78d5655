package environment

import (
	"github.com/iwvelando/aqi-planner/pkg/mathutil"
)

const (
	windSaturationSpeed = 20.0
	minFactor           = 0.7
	maxFactor           = 1.0
	favorableThreshold  = 0.7
)

// Meteorology summarizes how favorably the weather disperses pollutants.
type Meteorology struct {
	WindFactor        float64 `json:"wind_factor" yaml:"windFactor"`
	HumidityFactor    float64 `json:"humidity_factor" yaml:"humidityFactor"`
	TempFactor        float64 `json:"temp_factor" yaml:"tempFactor"`
	PressureFactor    float64 `json:"pressure_factor" yaml:"pressureFactor"`
	OverallDispersion float64 `json:"overall_dispersion" yaml:"overallDispersion"`
	Favorable         bool    `json:"favorable_for_interventions" yaml:"favorableForInterventions"`
}

// MeteorologicalImpact computes the four bounded dispersion factors and their mean.
// Every factor lies in [0.7, 1.0], so the mean does too.
func MeteorologicalImpact(r Reading) Meteorology {
	wind := windFactor(r.WindSpeed)
	humidity := humidityFactor(r.Humidity)
	temp := temperatureFactor(r.Temperature)
	pressure := pressureFactor(r.Pressure)
	overall := mathutil.Mean(wind, humidity, temp, pressure)

	return Meteorology{
		WindFactor:        round2(wind),
		HumidityFactor:    round2(humidity),
		TempFactor:        round2(temp),
		PressureFactor:    round2(pressure),
		OverallDispersion: round2(overall),
		Favorable:         overall > favorableThreshold,
	}
}

func windFactor(speed float64) float64 {
	return mathutil.Clamp(speed/windSaturationSpeed, minFactor, maxFactor)
}

func humidityFactor(humidity float64) float64 {
	switch {
	case humidity < 40:
		return 0.7
	case humidity < 70:
		return 1.0
	default:
		return 0.8
	}
}

func temperatureFactor(temp float64) float64 {
	switch {
	case temp < 15:
		return 0.7
	case temp > 35:
		return 0.8
	default:
		return 1.0
	}
}

func pressureFactor(pressure float64) float64 {
	switch {
	case pressure > 1020:
		return 0.7
	case pressure < 1000:
		return 0.9
	default:
		return 1.0
	}
}
