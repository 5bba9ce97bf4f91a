package evo

import (
	"errors"
	"math/rand"

	"numevo/internal/numeral"
)

var (
	// ErrConfig marks every error raised while validating a run configuration.
	ErrConfig = errors.New("invalid configuration")
	// ErrUnknownPolicy is returned by the catalog for names it does not know.
	ErrUnknownPolicy = errors.New("unknown policy")
	// ErrEngineSpent is returned when Run is called on an engine that already reported.
	ErrEngineSpent = errors.New("engine already reported; create a new engine to run again")
)

// Initiation produces the starting population.
type Initiation[E any] interface {
	Name() string
	Init(rng *rand.Rand, populationSize int) ([]E, error)
}

// Mutation perturbs a freshly bred population in place.
type Mutation[E any] interface {
	Name() string
	Mutate(rng *rand.Rand, population []E)
}

// Crossover combines two parents into one offspring without touching either parent.
type Crossover[E any] interface {
	Name() string
	Crossover(rng *rand.Rand, parent1, parent2 E) E
}

// Selection picks a parent pair from a population it must not modify.
type Selection[E any] interface {
	Name() string
	Select(rng *rand.Rand, population []E) (E, E)
}

// StopCondition decides whether the run is over. Any state it needs across
// calls lives in the memo, which the engine owns.
type StopCondition[E any] interface {
	Name() string
	ShouldStop(population []E, generation int, memo *StopMemo) bool
}

// PopulationValidator is an optional policy capability checked when an engine
// is constructed.
type PopulationValidator interface {
	ValidatePopulation(populationSize int) error
}

// GenerationSelection is an optional Selection capability for policies that
// prepare once per generation. The engine draws every pair of a generation
// from the returned Selection.
type GenerationSelection[E any] interface {
	ForGeneration(population []E) Selection[E]
}

// ShapedPolicy is implemented by policies that read entity components through
// their own shape. The engine rejects a policy whose arity differs from the
// entity shape.
type ShapedPolicy interface {
	EntityArity() int
}

func shapeArity[E any, N numeral.Numeral](shape numeral.Shape[E, N]) int {
	if shape == nil {
		return 0
	}
	return shape.Arity()
}

func validatePolicy(policy any, populationSize int) error {
	v, ok := policy.(PopulationValidator)
	if !ok {
		return nil
	}
	return v.ValidatePopulation(populationSize)
}
