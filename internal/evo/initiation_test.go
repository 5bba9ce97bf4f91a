package evo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numevo/internal/numeral"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestLinSpaceInitiationSpansMinToMax(t *testing.T) {
	p := LinSpaceInitiation[float64, float64]{Shape: numeral.Scalar[float64]{}, Min: 0, Max: 2137}
	population, err := p.Init(nil, 36)
	require.NoError(t, err)
	require.Len(t, population, 36)

	assert.Equal(t, 0.0, population[0])
	assert.Equal(t, 2137.0, population[35])
	assert.InDelta(t, 2137.0/35.0, population[1], 1e-9)
	for i := 1; i < len(population); i++ {
		assert.Greater(t, population[i], population[i-1])
	}
}

func TestLinSpaceInitiationFillsEveryComponent(t *testing.T) {
	shape := numeral.Vector[float64]{Size: 4}
	p := LinSpaceInitiation[[]float64, float64]{Shape: shape, Min: -10, Max: 10}
	population, err := p.Init(nil, 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{-10, -10, -10, -10}, population[0])
	assert.Equal(t, []float64{0, 0, 0, 0}, population[2])
	assert.Equal(t, []float64{10, 10, 10, 10}, population[4])
}

func TestLinSpaceInitiationIntegerEndpoints(t *testing.T) {
	p := LinSpaceInitiation[int, int]{Shape: numeral.Scalar[int]{}, Min: 0, Max: 2137}
	population, err := p.Init(nil, 36)
	require.NoError(t, err)
	assert.Equal(t, 0, population[0])
	assert.Equal(t, 61, population[1])
	assert.Equal(t, 2137, population[35])
}

func TestLinSpaceInitiationRejectsSingleIndividual(t *testing.T) {
	p := LinSpaceInitiation[float64, float64]{Shape: numeral.Scalar[float64]{}, Min: 0, Max: 1}
	_, err := p.Init(nil, 1)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRandomInitiationDrawsWithinBounds(t *testing.T) {
	shape := numeral.Vector[int]{Size: 3}
	p := RandomInitiation[[]int, int]{Shape: shape, Min: 5, Max: 9}
	population, err := p.Init(newTestRand(1), 50)
	require.NoError(t, err)
	require.Len(t, population, 50)
	for _, individual := range population {
		require.Len(t, individual, 3)
		for _, v := range individual {
			require.GreaterOrEqual(t, v, 5)
			require.Less(t, v, 9)
		}
	}
}

func TestRandomInitiationValidation(t *testing.T) {
	p := RandomInitiation[float64, float64]{Shape: numeral.Scalar[float64]{}, Min: 0, Max: 1}
	_, err := p.Init(newTestRand(1), 1)
	require.ErrorIs(t, err, ErrConfig)

	_, err = p.Init(nil, 4)
	require.Error(t, err)

	inverted := RandomInitiation[float64, float64]{Shape: numeral.Scalar[float64]{}, Min: 2, Max: 1}
	require.ErrorIs(t, inverted.ValidatePopulation(4), ErrConfig)
}
