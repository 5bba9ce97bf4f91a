package evo

import (
	"fmt"
	"math/rand"

	"numevo/internal/numeral"
)

// AverageCrossover blends parents as Weight*parent1 + (1-Weight)*parent2.
type AverageCrossover[E any, N numeral.Numeral] struct {
	Shape  numeral.Shape[E, N]
	Weight float64
}

func (AverageCrossover[E, N]) Name() string {
	return "average"
}

func (p AverageCrossover[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p AverageCrossover[E, N]) ValidatePopulation(int) error {
	if p.Shape == nil {
		return fmt.Errorf("%w: average crossover requires a shape", ErrConfig)
	}
	if p.Weight < 0 || p.Weight > 1 {
		return fmt.Errorf("%w: average crossover weight must be in [0, 1], got %v", ErrConfig, p.Weight)
	}
	return nil
}

func (p AverageCrossover[E, N]) Crossover(_ *rand.Rand, parent1, parent2 E) E {
	return blend(p.Shape, parent1, parent2, p.Weight)
}

// RandomCrossover blends parents with a weight drawn from [0, 1) on every call.
type RandomCrossover[E any, N numeral.Numeral] struct {
	Shape numeral.Shape[E, N]
}

func (RandomCrossover[E, N]) Name() string {
	return "random"
}

func (p RandomCrossover[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p RandomCrossover[E, N]) ValidatePopulation(int) error {
	if p.Shape == nil {
		return fmt.Errorf("%w: random crossover requires a shape", ErrConfig)
	}
	return nil
}

func (p RandomCrossover[E, N]) Crossover(rng *rand.Rand, parent1, parent2 E) E {
	return blend(p.Shape, parent1, parent2, numeral.Closed(rng, 0, 1))
}

func blend[E any, N numeral.Numeral](shape numeral.Shape[E, N], parent1, parent2 E, weight float64) E {
	offspring := shape.New()
	for c := 0; c < shape.Arity(); c++ {
		// weight*a + (1-weight)*b, arranged so the result never leaves [a, b] through rounding.
		a, b := float64(shape.At(parent1, c)), float64(shape.At(parent2, c))
		v := b + weight*(a-b)
		shape.Set(&offspring, c, numeral.Convert[N](v))
	}
	return offspring
}
