// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/aqi-planner/pkg/constants"
	"gonum.org/v1/gonum/floats"
)

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(val*scale) / scale
}

// RoundPercent rounds a percentage to one decimal place for display.
func RoundPercent(val float64) float64 {
	return RoundTo(val, constants.PercentDecimals)
}

// SafeDivide returns numerator/denominator, or 0 when the denominator is zero.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// Clamp bounds value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Mean returns the arithmetic mean of values, or 0 for an empty input.
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}
