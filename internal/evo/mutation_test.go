package evo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numevo/internal/numeral"
)

func TestMutationChanceOneNeverMutates(t *testing.T) {
	// The trigger is draw >= chance and draws are < 1.
	population := []float64{1, 2, 3, 4}
	PercentageMutation[float64, float64]{Shape: numeral.Scalar[float64]{}, Chance: 1, Intensity: 50}.Mutate(newTestRand(3), population)
	AbsoluteMutation[float64, float64]{Shape: numeral.Scalar[float64]{}, Chance: 1, Intensity: 50}.Mutate(newTestRand(3), population)
	assert.Equal(t, []float64{1, 2, 3, 4}, population)
}

func TestPercentageMutationScalesWithinIntensity(t *testing.T) {
	shape := numeral.Vector[float64]{Size: 2}
	population := make([][]float64, 100)
	for i := range population {
		population[i] = []float64{100, 200}
	}
	PercentageMutation[[]float64, float64]{Shape: shape, Chance: 0, Intensity: 10}.Mutate(newTestRand(5), population)

	changed := 0
	for _, individual := range population {
		require.GreaterOrEqual(t, individual[0], 90.0)
		require.LessOrEqual(t, individual[0], 110.0)
		require.GreaterOrEqual(t, individual[1], 180.0)
		require.LessOrEqual(t, individual[1], 220.0)
		if individual[0] != 100 {
			changed++
		}
	}
	assert.Greater(t, changed, 90)
}

func TestPercentageMutationZeroIntensityKeepsValues(t *testing.T) {
	population := []float64{7, 8}
	PercentageMutation[float64, float64]{Shape: numeral.Scalar[float64]{}, Chance: 0, Intensity: 0}.Mutate(newTestRand(5), population)
	assert.Equal(t, []float64{7, 8}, population)
}

func TestAbsoluteMutationOffsetsWithinIntensity(t *testing.T) {
	population := make([]int, 200)
	for i := range population {
		population[i] = 1000
	}
	AbsoluteMutation[int, int]{Shape: numeral.Scalar[int]{}, Chance: 0, Intensity: 10}.Mutate(newTestRand(9), population)
	for _, v := range population {
		require.GreaterOrEqual(t, v, 990)
		require.LessOrEqual(t, v, 1010)
	}
}

func TestMutationChanceControlsShareOfMutatedIndividuals(t *testing.T) {
	population := make([]float64, 2000)
	for i := range population {
		population[i] = 50
	}
	AbsoluteMutation[float64, float64]{Shape: numeral.Scalar[float64]{}, Chance: 0.9, Intensity: 5}.Mutate(newTestRand(11), population)

	mutated := 0
	for _, v := range population {
		if v != 50 {
			mutated++
		}
	}
	// Probability of mutation is 1 - chance.
	assert.InDelta(t, 200, mutated, 60)
}

func TestMutationValidation(t *testing.T) {
	shape := numeral.Scalar[float64]{}
	assert.ErrorIs(t, PercentageMutation[float64, float64]{Shape: shape, Chance: 1.5}.ValidatePopulation(4), ErrConfig)
	assert.ErrorIs(t, AbsoluteMutation[float64, float64]{Shape: shape, Chance: 0.1, Intensity: -1}.ValidatePopulation(4), ErrConfig)
	assert.ErrorIs(t, AbsoluteMutation[float64, float64]{Chance: 0.1}.ValidatePopulation(4), ErrConfig)
	assert.NoError(t, PercentageMutation[float64, float64]{Shape: shape, Chance: 0.1, Intensity: 10}.ValidatePopulation(4))
}
