package evo

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"numevo/internal/numeral"
)

// RandomSelection draws both parents uniformly and independently. The same
// individual may be picked twice.
type RandomSelection[E any] struct{}

func (RandomSelection[E]) Name() string {
	return "random"
}

func (RandomSelection[E]) ValidatePopulation(populationSize int) error {
	if populationSize <= 0 {
		return fmt.Errorf("%w: random selection requires a non-empty population", ErrConfig)
	}
	return nil
}

func (RandomSelection[E]) Select(rng *rand.Rand, population []E) (E, E) {
	return population[rng.Intn(len(population))], population[rng.Intn(len(population))]
}

// UniqueRandomSelection draws two distinct positions. Distinct positions may
// still hold equal values.
type UniqueRandomSelection[E any] struct{}

func (UniqueRandomSelection[E]) Name() string {
	return "unique_random"
}

func (UniqueRandomSelection[E]) ValidatePopulation(populationSize int) error {
	if populationSize <= 1 {
		return fmt.Errorf("%w: unique random selection requires population size > 1, got %d", ErrConfig, populationSize)
	}
	return nil
}

func (UniqueRandomSelection[E]) Select(rng *rand.Rand, population []E) (E, E) {
	first, second := uniquePair(rng, len(population))
	return population[first], population[second]
}

func uniquePair(rng *rand.Rand, n int) (int, int) {
	first := rng.Intn(n)
	second := rng.Intn(n)
	for second == first {
		second = rng.Intn(n)
	}
	return first, second
}

// RankFunc reports whether a ranks ahead of b.
type RankFunc[E any] func(a, b E) bool

// ByMagnitude ranks entities by the absolute value of their summed components,
// largest first.
func ByMagnitude[E any, N numeral.Numeral](shape numeral.Shape[E, N]) RankFunc[E] {
	return func(a, b E) bool {
		return math.Abs(numeral.Sum(shape, a)) > math.Abs(numeral.Sum(shape, b))
	}
}

// RankWeighting selects how TargetSelection turns ranks into selection weights.
type RankWeighting string

const (
	// LinearWeighting interpolates linearly from First at the best rank to Last at the worst.
	LinearWeighting RankWeighting = "linear"
	// CompoundingWeighting grows each cumulative step by the running rank index.
	CompoundingWeighting RankWeighting = "compounding"
)

// TargetSelection ranks the population and favours better ranks. The best
// individual has weight First, the worst Last. Each parent is an independent
// draw over the cumulative weights.
type TargetSelection[E any] struct {
	First     float64
	Last      float64
	Rank      RankFunc[E]
	Weighting RankWeighting
}

func (TargetSelection[E]) Name() string {
	return "target"
}

func (s TargetSelection[E]) ValidatePopulation(populationSize int) error {
	if s.Rank == nil {
		return fmt.Errorf("%w: target selection requires a rank function", ErrConfig)
	}
	if s.Last < 0 || s.First < s.Last {
		return fmt.Errorf("%w: target selection requires first >= last >= 0, got first=%v last=%v", ErrConfig, s.First, s.Last)
	}
	switch s.Weighting {
	case "", LinearWeighting, CompoundingWeighting:
	default:
		return fmt.Errorf("%w: unsupported target weighting: %s", ErrConfig, s.Weighting)
	}
	if populationSize <= 1 {
		return fmt.Errorf("%w: target selection requires population size > 1, got %d", ErrConfig, populationSize)
	}
	return nil
}

func (s TargetSelection[E]) Select(rng *rand.Rand, population []E) (E, E) {
	return s.ForGeneration(population).Select(rng, population)
}

// ForGeneration ranks population once and returns a selection that reuses the
// ranking for every pair drawn from the same population.
func (s TargetSelection[E]) ForGeneration(population []E) Selection[E] {
	r := rankedTarget[E]{TargetSelection: s, order: s.ranked(population)}
	if s.Weighting != CompoundingWeighting {
		r.cumulative = s.linearWeights(len(population))
	}
	return r
}

// ranked returns population positions ordered best first. The population
// itself is left untouched.
func (s TargetSelection[E]) ranked(population []E) []int {
	order := make([]int, len(population))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return s.Rank(population[order[i]], population[order[j]])
	})
	return order
}

func (s TargetSelection[E]) step(n int) float64 {
	return (s.First - s.Last) / float64(n-1)
}

// linearWeights returns the cumulative rank weights, or nil when they sum to
// nothing and ranks should be drawn uniformly.
func (s TargetSelection[E]) linearWeights(n int) []float64 {
	step := s.step(n)
	cumulative := make([]float64, n)
	total := 0.0
	for i := range cumulative {
		total += s.First - float64(i)*step
		cumulative[i] = total
	}
	if total <= 0 {
		return nil
	}
	return cumulative
}

func linearPick(rng *rand.Rand, cumulative []float64, n int) int {
	if cumulative == nil {
		return rng.Intn(n)
	}
	draw := rng.Float64() * cumulative[n-1]
	i := sort.Search(n, func(i int) bool { return draw < cumulative[i] })
	if i == n {
		return n - 1
	}
	return i
}

// rankedTarget is a TargetSelection bound to one population's ranking. It must
// only be used with the population it was built from.
type rankedTarget[E any] struct {
	TargetSelection[E]
	order      []int
	cumulative []float64
}

func (r rankedTarget[E]) Select(rng *rand.Rand, population []E) (E, E) {
	return population[r.order[r.pick(rng)]], population[r.order[r.pick(rng)]]
}

func (r rankedTarget[E]) pick(rng *rand.Rand) int {
	if r.Weighting == CompoundingWeighting {
		return r.compoundingPick(rng, len(r.order))
	}
	return linearPick(rng, r.cumulative, len(r.order))
}

// compoundingPick starts from Last over the weight sum and adds step*rank at
// each rank, so later ranks gain super-linearly.
func (s TargetSelection[E]) compoundingPick(rng *rand.Rand, n int) int {
	sum := (s.First + s.Last) * float64(n) / 2
	if sum <= 0 {
		return rng.Intn(n)
	}
	step := s.step(n)
	draw := rng.Float64()
	chance := s.Last / sum
	rank := 0
	for draw > chance && rank < n-1 {
		rank++
		chance += step * float64(rank)
	}
	return rank
}
