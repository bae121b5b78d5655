// Package environment derives pollutant concentrations, weather dispersion and
// source attribution from a single AQI reading and weather observations.
package environment

import (
	"github.com/iwvelando/aqi-planner/pkg/constants"
	"github.com/iwvelando/aqi-planner/pkg/mathutil"
)

// Reading is one set of environmental observations.
type Reading struct {
	AQI                int     `json:"aqi"`
	Temperature        float64 `json:"temperature"`
	Humidity           float64 `json:"humidity"`
	WindSpeed          float64 `json:"wind_speed"`
	Pressure           float64 `json:"pressure"`
	AreaType           string  `json:"area_type"`
	TrafficDensity     string  `json:"traffic_density"`
	IndustrialActivity string  `json:"industrial_activity"`
}

// Breakpoint maps an AQI band onto a PM2.5 concentration band.
type Breakpoint struct {
	AQILow  int
	AQIHigh int
	ConcLow float64
	ConcHi  float64
}

// Breakpoints covers AQI 0-500 in ascending, non-overlapping bands.
var Breakpoints = []Breakpoint{
	{AQILow: 0, AQIHigh: 50, ConcLow: 0, ConcHi: 12.0},
	{AQILow: 51, AQIHigh: 100, ConcLow: 12.1, ConcHi: 35.4},
	{AQILow: 101, AQIHigh: 150, ConcLow: 35.5, ConcHi: 55.4},
	{AQILow: 151, AQIHigh: 200, ConcLow: 55.5, ConcHi: 150.4},
	{AQILow: 201, AQIHigh: 300, ConcLow: 150.5, ConcHi: 250.4},
	{AQILow: 301, AQIHigh: 500, ConcLow: 250.5, ConcHi: 500.4},
}

// Ratios of each secondary pollutant to PM2.5.
const (
	pm10Ratio = 1.5
	no2Ratio  = 0.8
	so2Ratio  = 0.5
	coRatio   = 2.0
	o3Ratio   = 0.6
)

// Concentrations holds estimated pollutant concentrations.
type Concentrations struct {
	PM25 float64 `json:"PM2.5" yaml:"PM2.5"`
	PM10 float64 `json:"PM10" yaml:"PM10"`
	NO2  float64 `json:"NO2" yaml:"NO2"`
	SO2  float64 `json:"SO2" yaml:"SO2"`
	CO   float64 `json:"CO" yaml:"CO"`
	O3   float64 `json:"O3" yaml:"O3"`
}

// PollutantConcentrations interpolates PM2.5 from the breakpoint table and derives
// the other pollutants from it. An AQI outside every band yields all zeros.
func PollutantConcentrations(aqi int) Concentrations {
	for _, bp := range Breakpoints {
		if aqi < bp.AQILow || aqi > bp.AQIHigh {
			continue
		}
		pm25 := bp.ConcLow + float64(aqi-bp.AQILow)*(bp.ConcHi-bp.ConcLow)/float64(bp.AQIHigh-bp.AQILow)
		return Concentrations{
			PM25: round2(pm25),
			PM10: round2(pm25 * pm10Ratio),
			NO2:  round2(pm25 * no2Ratio),
			SO2:  round2(pm25 * so2Ratio),
			CO:   round2(pm25 * coRatio),
			O3:   round2(pm25 * o3Ratio),
		}
	}
	return Concentrations{}
}

// HealthCategory returns the health label for an AQI value.
func HealthCategory(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups"
	case aqi <= 200:
		return "Unhealthy"
	case aqi <= 300:
		return "Very Unhealthy"
	default:
		return "Hazardous"
	}
}

func round2(v float64) float64 {
	return mathutil.RoundTo(v, constants.ConcentrationDecimals)
}
