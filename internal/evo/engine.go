package evo

import (
	"fmt"
	"io"
	"math/rand"

	"numevo/internal/numeral"
)

type Config[E any, N numeral.Numeral] struct {
	Shape          numeral.Shape[E, N]
	PopulationSize int
	Initiation     Initiation[E]
	Mutation       Mutation[E]
	Crossover      Crossover[E]
	Selection      Selection[E]
	Stop           StopCondition[E]
	// Seed is used when Rand is nil. Zero picks a non-deterministic seed.
	Seed     int64
	Rand     *rand.Rand
	Observer Observer
}

type Result[E any] struct {
	Generations int
	Population  []E
	Diagnostics []GenerationDiagnostics
}

// Engine runs the generational loop for one configuration. It is single use:
// once Run has reported, the engine is inert.
type Engine[E any, N numeral.Numeral] struct {
	cfg        Config[E, N]
	rng        *rand.Rand
	population []E
	generation int
	memo       StopMemo
	spent      bool
}

// NewEngine validates the configuration and builds the initial population.
func NewEngine[E any, N numeral.Numeral](cfg Config[E, N]) (*Engine[E, N], error) {
	if cfg.Shape == nil {
		return nil, fmt.Errorf("%w: entity shape is required", ErrConfig)
	}
	if cfg.Shape.Arity() <= 0 {
		return nil, fmt.Errorf("%w: entity arity must be > 0", ErrConfig)
	}
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("%w: population size must be > 0, got %d", ErrConfig, cfg.PopulationSize)
	}
	policies := []struct {
		family  string
		policy  any
		missing bool
	}{
		{"initiation", cfg.Initiation, cfg.Initiation == nil},
		{"mutation", cfg.Mutation, cfg.Mutation == nil},
		{"crossover", cfg.Crossover, cfg.Crossover == nil},
		{"selection", cfg.Selection, cfg.Selection == nil},
		{"stop", cfg.Stop, cfg.Stop == nil},
	}
	for _, p := range policies {
		if p.missing {
			return nil, fmt.Errorf("%w: %s policy is required", ErrConfig, p.family)
		}
		if err := validatePolicy(p.policy, cfg.PopulationSize); err != nil {
			return nil, fmt.Errorf("%s policy: %w", p.family, err)
		}
		if shaped, ok := p.policy.(ShapedPolicy); ok && shaped.EntityArity() != cfg.Shape.Arity() {
			return nil, fmt.Errorf("%w: %s policy reads %d components per entity, shape %s has %d",
				ErrConfig, p.family, shaped.EntityArity(), cfg.Shape.Name(), cfg.Shape.Arity())
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = numeral.NewRand(cfg.Seed)
	}
	population, err := cfg.Initiation.Init(rng, cfg.PopulationSize)
	if err != nil {
		return nil, fmt.Errorf("initiation %s: %w", cfg.Initiation.Name(), err)
	}
	if err := checkPopulation(cfg.Shape, population, cfg.PopulationSize); err != nil {
		return nil, fmt.Errorf("%w: initiation %s: %v", ErrConfig, cfg.Initiation.Name(), err)
	}

	return &Engine[E, N]{
		cfg:        cfg,
		rng:        rng,
		population: population,
	}, nil
}

// Population returns a copy of the current population.
func (e *Engine[E, N]) Population() []E {
	return clonePopulation(e.cfg.Shape, e.population)
}

func (e *Engine[E, N]) Generation() int {
	return e.generation
}

// Run breeds generations until the stop condition holds, then writes the report
// to w. A nil writer skips the report.
func (e *Engine[E, N]) Run(w io.Writer) (Result[E], error) {
	if e.spent {
		return Result[E]{}, ErrEngineSpent
	}
	e.spent = true

	diagnostics := make([]GenerationDiagnostics, 0, 16)
	for {
		d := diagnose(e.cfg.Shape, e.population, e.generation)
		diagnostics = append(diagnostics, d)
		if e.cfg.Observer != nil {
			e.cfg.Observer.ObserveGeneration(d)
		}
		if e.cfg.Stop.ShouldStop(e.population, e.generation, &e.memo) {
			break
		}

		selection := e.cfg.Selection
		if g, ok := selection.(GenerationSelection[E]); ok {
			selection = g.ForGeneration(e.population)
		}
		next := make([]E, 0, e.cfg.PopulationSize)
		for len(next) < e.cfg.PopulationSize {
			parent1, parent2 := selection.Select(e.rng, e.population)
			next = append(next, e.cfg.Crossover.Crossover(e.rng, parent1, parent2))
		}
		e.cfg.Mutation.Mutate(e.rng, next)
		if err := checkPopulation(e.cfg.Shape, next, e.cfg.PopulationSize); err != nil {
			return Result[E]{}, fmt.Errorf("generation %d: %w", e.generation+1, err)
		}
		e.population = next
		e.generation++
	}

	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveStop(e.generation, e.cfg.Stop.Name())
	}
	if w != nil {
		if err := WriteReport(w, e.cfg.Shape, e.generation, e.population); err != nil {
			return Result[E]{}, fmt.Errorf("write report: %w", err)
		}
	}
	return Result[E]{
		Generations: e.generation,
		Population:  clonePopulation(e.cfg.Shape, e.population),
		Diagnostics: diagnostics,
	}, nil
}

func checkPopulation[E any, N numeral.Numeral](shape numeral.Shape[E, N], population []E, size int) error {
	if len(population) != size {
		return fmt.Errorf("population size mismatch: got=%d want=%d", len(population), size)
	}
	for i, individual := range population {
		if err := shape.Validate(individual); err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
	}
	return nil
}

func clonePopulation[E any, N numeral.Numeral](shape numeral.Shape[E, N], population []E) []E {
	out := make([]E, len(population))
	for i, individual := range population {
		out[i] = numeral.Clone(shape, individual)
	}
	return out
}
