package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, bmi, 0.01)

	_, err = CalculateBMI(0, 80)
	assert.ErrorIs(t, err, ErrImplausibleBody)

	_, err = CalculateBMI(180, 500)
	assert.ErrorIs(t, err, ErrImplausibleBody)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
}

func TestLocalISODateRoundTrip(t *testing.T) {
	d, err := ParseISODate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", LocalISODate(d))

	_, err = ParseISODate("30/08/2026")
	assert.Error(t, err)
}
