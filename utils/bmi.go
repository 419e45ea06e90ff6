package utils

import "errors"

// ErrImplausibleBody rejects profile measurements no person has.
var ErrImplausibleBody = errors.New("height/weight outside plausible range")

// CalculateBMI computes body mass index from the profile's height (cm)
// and weight (kg). Bounds match what the onboarding form accepts.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrImplausibleBody
	}
	meters := heightCm / 100
	return weightKg / (meters * meters), nil
}

// BMICategory maps a BMI onto the WHO band shown next to it on the
// profile screen.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
