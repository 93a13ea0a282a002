// Package bmi implements the body-mass-index calculation exposed by the
// legacy calculator endpoint: weight in kilograms, height in centimeters.
package bmi

import (
	"worldinfo/pkg/domain"
)

// Category names for the half-open BMI ranges.
const (
	Underweight = "Underweight"
	Normal      = "Normal"
	Overweight  = "Overweight"
	Obese       = "Obese"
)

// Calculate returns bmi = weight / (height/100)^2. Inputs must be positive;
// the handler validates them before calling.
func Calculate(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// Categorize maps a BMI value onto its category. Boundaries are half-open
// and exclusive of the upper value.
func Categorize(bmi float64) string {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 24.9:
		return Normal
	case bmi < 29.9:
		return Overweight
	default:
		return Obese
	}
}

// Validate reports a ValidationError for non-positive inputs.
func Validate(weightKg, heightCm float64) error {
	if weightKg <= 0 {
		return domain.NewValidationError("weight", "must be a positive number of kilograms")
	}
	if heightCm <= 0 {
		return domain.NewValidationError("height", "must be a positive number of centimeters")
	}
	return nil
}
