package evo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"numevo/internal/numeral"
)

// StopMemo carries stop-condition state between calls. The engine owns one memo
// per run, so independent runs never share it.
type StopMemo struct {
	observed    bool
	lastAverage float64
}

// LastAverage returns the most recently stored population average.
func (m *StopMemo) LastAverage() (float64, bool) {
	return m.lastAverage, m.observed
}

func (m *StopMemo) store(average float64) {
	m.observed = true
	m.lastAverage = average
}

// Reset forgets every stored observation.
func (m *StopMemo) Reset() {
	*m = StopMemo{}
}

// MaxGenerationStop ends the run once Limit generations have been bred.
type MaxGenerationStop[E any] struct {
	Limit int
}

func (MaxGenerationStop[E]) Name() string {
	return "max_generation"
}

func (s MaxGenerationStop[E]) ValidatePopulation(int) error {
	if s.Limit < 0 {
		return fmt.Errorf("%w: max generation limit must be >= 0, got %d", ErrConfig, s.Limit)
	}
	return nil
}

func (s MaxGenerationStop[E]) ShouldStop(_ []E, generation int, _ *StopMemo) bool {
	return generation >= s.Limit
}

// StableAverageStop ends the run once the population average moves by no more
// than Threshold between two consecutive checks. The first check only records
// a baseline.
type StableAverageStop[E any, N numeral.Numeral] struct {
	Shape     numeral.Shape[E, N]
	Threshold float64
}

func (StableAverageStop[E, N]) Name() string {
	return "stable_average"
}

func (s StableAverageStop[E, N]) EntityArity() int {
	return shapeArity(s.Shape)
}

func (s StableAverageStop[E, N]) ValidatePopulation(int) error {
	if s.Shape == nil {
		return fmt.Errorf("%w: stable average stop requires a shape", ErrConfig)
	}
	if s.Threshold < 0 || math.IsNaN(s.Threshold) {
		return fmt.Errorf("%w: stable average threshold must be >= 0, got %v", ErrConfig, s.Threshold)
	}
	return nil
}

func (s StableAverageStop[E, N]) ShouldStop(population []E, _ int, memo *StopMemo) bool {
	average := PopulationAverage(s.Shape, population)
	last, observed := memo.LastAverage()
	if observed && math.Abs(average-last) <= s.Threshold {
		return true
	}
	memo.store(average)
	return false
}

// PopulationAverage sums every component of every individual and divides by
// the number of individuals.
func PopulationAverage[E any, N numeral.Numeral](shape numeral.Shape[E, N], population []E) float64 {
	if len(population) == 0 {
		return 0
	}
	return floats.Sum(individualSums(shape, population)) / float64(len(population))
}

func individualSums[E any, N numeral.Numeral](shape numeral.Shape[E, N], population []E) []float64 {
	sums := make([]float64, len(population))
	for i, individual := range population {
		sums[i] = numeral.Sum(shape, individual)
	}
	return sums
}
