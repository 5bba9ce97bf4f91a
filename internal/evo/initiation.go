package evo

import (
	"fmt"
	"math/rand"

	"numevo/internal/numeral"
)

// RandomInitiation fills every component of every individual with an
// independent draw from [Min, Max).
type RandomInitiation[E any, N numeral.Numeral] struct {
	Shape numeral.Shape[E, N]
	Min   N
	Max   N
}

func (RandomInitiation[E, N]) Name() string {
	return "random"
}

func (p RandomInitiation[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p RandomInitiation[E, N]) ValidatePopulation(populationSize int) error {
	if p.Shape == nil {
		return fmt.Errorf("%w: random initiation requires a shape", ErrConfig)
	}
	if populationSize <= 1 {
		return fmt.Errorf("%w: random initiation requires population size > 1, got %d", ErrConfig, populationSize)
	}
	if p.Max < p.Min {
		return fmt.Errorf("%w: random initiation max %v below min %v", ErrConfig, p.Max, p.Min)
	}
	return nil
}

func (p RandomInitiation[E, N]) Init(rng *rand.Rand, populationSize int) ([]E, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if err := p.ValidatePopulation(populationSize); err != nil {
		return nil, err
	}
	population := make([]E, populationSize)
	for i := range population {
		individual := p.Shape.New()
		for c := 0; c < p.Shape.Arity(); c++ {
			p.Shape.Set(&individual, c, numeral.Uniform(rng, p.Min, p.Max))
		}
		population[i] = individual
	}
	return population, nil
}

// LinSpaceInitiation spreads individuals evenly from Min to Max. Every
// component of an individual receives the same value.
type LinSpaceInitiation[E any, N numeral.Numeral] struct {
	Shape numeral.Shape[E, N]
	Min   N
	Max   N
}

func (LinSpaceInitiation[E, N]) Name() string {
	return "linspace"
}

func (p LinSpaceInitiation[E, N]) EntityArity() int {
	return shapeArity(p.Shape)
}

func (p LinSpaceInitiation[E, N]) ValidatePopulation(populationSize int) error {
	if p.Shape == nil {
		return fmt.Errorf("%w: linspace initiation requires a shape", ErrConfig)
	}
	// A single individual would divide the span by zero.
	if populationSize <= 1 {
		return fmt.Errorf("%w: linspace initiation requires population size > 1, got %d", ErrConfig, populationSize)
	}
	return nil
}

func (p LinSpaceInitiation[E, N]) Init(_ *rand.Rand, populationSize int) ([]E, error) {
	if err := p.ValidatePopulation(populationSize); err != nil {
		return nil, err
	}
	lo, hi := float64(p.Min), float64(p.Max)
	step := (hi - lo) / float64(populationSize-1)
	population := make([]E, populationSize)
	for i := range population {
		value := lo + float64(i)*step
		if i == populationSize-1 {
			value = hi
		}
		individual := p.Shape.New()
		numeral.Fill(p.Shape, &individual, numeral.Convert[N](value))
		population[i] = individual
	}
	return population, nil
}
