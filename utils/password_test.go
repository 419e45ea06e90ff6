package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestGenerateRandomToken(t *testing.T) {
	a := GenerateRandomToken(6)
	assert.Len(t, a, 6)

	b := GenerateRandomToken(6)
	assert.Len(t, b, 6)
	// collisions are possible but vanishingly unlikely
	assert.NotEqual(t, a, b)
}
