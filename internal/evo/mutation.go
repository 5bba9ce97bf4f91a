package evo

import (
	"fmt"
	"math/rand"

	"numevo/internal/numeral"
)

// PercentageMutation scales every component of a mutated individual by a
// factor drawn from [1 - Intensity/100, 1 + Intensity/100].
//
// An individual mutates when its chance draw is >= Chance, so the effective
// mutation probability is 1 - Chance.
type PercentageMutation[E any, N numeral.Numeral] struct {
	Shape     numeral.Shape[E, N]
	Chance    float64
	Intensity float64
}

func (PercentageMutation[E, N]) Name() string {
	return "percentage"
}

func (p PercentageMutation[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p PercentageMutation[E, N]) ValidatePopulation(int) error {
	return validateMutation("percentage", p.Shape == nil, p.Chance, p.Intensity)
}

func (p PercentageMutation[E, N]) Mutate(rng *rand.Rand, population []E) {
	lo, hi := 1-p.Intensity/100, 1+p.Intensity/100
	mutateEach(rng, p.Shape, population, p.Chance, func(v float64) float64 {
		return v * numeral.Closed(rng, lo, hi)
	})
}

// AbsoluteMutation shifts every component of a mutated individual by an offset
// drawn from [-Intensity, Intensity]. Triggering follows PercentageMutation.
type AbsoluteMutation[E any, N numeral.Numeral] struct {
	Shape     numeral.Shape[E, N]
	Chance    float64
	Intensity float64
}

func (AbsoluteMutation[E, N]) Name() string {
	return "absolute"
}

func (p AbsoluteMutation[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p AbsoluteMutation[E, N]) ValidatePopulation(int) error {
	return validateMutation("absolute", p.Shape == nil, p.Chance, p.Intensity)
}

func (p AbsoluteMutation[E, N]) Mutate(rng *rand.Rand, population []E) {
	mutateEach(rng, p.Shape, population, p.Chance, func(v float64) float64 {
		return v + numeral.Closed(rng, -p.Intensity, p.Intensity)
	})
}

func mutateEach[E any, N numeral.Numeral](rng *rand.Rand, shape numeral.Shape[E, N], population []E, chance float64, perturb func(float64) float64) {
	for i := range population {
		if rng.Float64() < chance {
			continue
		}
		for c := 0; c < shape.Arity(); c++ {
			v := perturb(float64(shape.At(population[i], c)))
			shape.Set(&population[i], c, numeral.Convert[N](v))
		}
	}
}

func validateMutation(name string, missingShape bool, chance, intensity float64) error {
	if missingShape {
		return fmt.Errorf("%w: %s mutation requires a shape", ErrConfig, name)
	}
	if chance < 0 || chance > 1 {
		return fmt.Errorf("%w: %s mutation chance must be in [0, 1], got %v", ErrConfig, name, chance)
	}
	if intensity < 0 {
		return fmt.Errorf("%w: %s mutation intensity must be >= 0, got %v", ErrConfig, name, intensity)
	}
	return nil
}
