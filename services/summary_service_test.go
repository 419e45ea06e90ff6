package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPct(t *testing.T) {
	assert.Equal(t, 50.0, pct(1175, 2350))
	assert.Equal(t, 100.0, pct(2350, 2350))
	assert.Equal(t, 104.26, pct(2450, 2350))

	// zero goal never divides
	assert.Equal(t, 0.0, pct(0, 0))
	assert.Equal(t, 100.0, pct(500, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.351))
	assert.Equal(t, 12.34, round2(12.342))
	assert.Equal(t, 0.0, round2(0))
}
