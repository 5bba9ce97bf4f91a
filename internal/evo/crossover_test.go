package evo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numevo/internal/numeral"
)

func TestAverageCrossoverWeightsParents(t *testing.T) {
	p := AverageCrossover[float64, float64]{Shape: numeral.Scalar[float64]{}, Weight: 0.3}
	assert.InDelta(t, 0.3*10+0.7*20, p.Crossover(nil, 10, 20), 1e-12)

	shape := numeral.Vector[float64]{Size: 3}
	vp := AverageCrossover[[]float64, float64]{Shape: shape, Weight: 0.25}
	parent1 := []float64{0, 4, -8}
	parent2 := []float64{4, 0, 8}
	child := vp.Crossover(nil, parent1, parent2)
	assert.InDeltaSlice(t, []float64{3, 1, 4}, child, 1e-12)
	assert.Equal(t, []float64{0, 4, -8}, parent1, "parents must not change")
	assert.Equal(t, []float64{4, 0, 8}, parent2, "parents must not change")
}

func TestCrossoverOffspringLiesBetweenParents(t *testing.T) {
	shape := numeral.Vector[int]{Size: 4}
	rng := newTestRand(21)
	policies := []Crossover[[]int]{
		AverageCrossover[[]int, int]{Shape: shape, Weight: 0},
		AverageCrossover[[]int, int]{Shape: shape, Weight: 0.5},
		AverageCrossover[[]int, int]{Shape: shape, Weight: 1},
		RandomCrossover[[]int, int]{Shape: shape},
	}
	for _, policy := range policies {
		for i := 0; i < 200; i++ {
			parent1 := []int{rng.Intn(200) - 100, rng.Intn(200) - 100, rng.Intn(200) - 100, rng.Intn(200) - 100}
			parent2 := []int{rng.Intn(200) - 100, rng.Intn(200) - 100, rng.Intn(200) - 100, rng.Intn(200) - 100}
			child := policy.Crossover(rng, parent1, parent2)
			require.Len(t, child, 4)
			for c := range child {
				lo := int(math.Min(float64(parent1[c]), float64(parent2[c])))
				hi := int(math.Max(float64(parent1[c]), float64(parent2[c])))
				require.GreaterOrEqual(t, child[c], lo, "%s component %d", policy.Name(), c)
				require.LessOrEqual(t, child[c], hi, "%s component %d", policy.Name(), c)
			}
		}
	}
}

func TestRandomCrossoverDrawsFreshWeights(t *testing.T) {
	p := RandomCrossover[float64, float64]{Shape: numeral.Scalar[float64]{}}
	rng := newTestRand(4)
	seen := map[float64]struct{}{}
	for i := 0; i < 20; i++ {
		seen[p.Crossover(rng, 0, 1)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestAverageCrossoverValidation(t *testing.T) {
	shape := numeral.Scalar[float64]{}
	assert.ErrorIs(t, AverageCrossover[float64, float64]{Shape: shape, Weight: -0.1}.ValidatePopulation(4), ErrConfig)
	assert.ErrorIs(t, AverageCrossover[float64, float64]{Shape: shape, Weight: 1.1}.ValidatePopulation(4), ErrConfig)
	assert.NoError(t, AverageCrossover[float64, float64]{Shape: shape, Weight: 1}.ValidatePopulation(4))
}

type constSource int64

func (s constSource) Int63() int64 { return int64(s) }

func (constSource) Seed(int64) {}

func TestRandomCrossoverWeightCoversClosedUnitRange(t *testing.T) {
	p := RandomCrossover[int, int]{Shape: numeral.Scalar[int]{}}
	// Weight 1 keeps parent1, weight 0 keeps parent2.
	assert.Equal(t, 3, p.Crossover(rand.New(constSource(1<<53)), 3, 9))
	assert.Equal(t, 9, p.Crossover(rand.New(constSource(0)), 3, 9))
}
